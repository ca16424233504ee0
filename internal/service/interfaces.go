package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,ProductServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

// AuthService registers users, verifies credentials and issues and checks
// bearer tokens.
type AuthService interface {
	// RegisterUser stores a new user with a hashed password and returns its id.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (int64, error)

	// Login returns the user whose credentials match, or ErrInvalidCredentials.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Profile returns the stored record of the given user.
	Profile(ctx context.Context, userID int64) (models.User, error)
}

// ProductService implements the product catalogue operations.
type ProductService interface {
	// CreateProduct stores a product owned by userID and returns its id.
	CreateProduct(ctx context.Context, userID int64, request models.ProductRequest) (int64, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, productID int64) (models.Product, error)

	// UpdateProduct applies the fields present in request to the product and
	// refreshes its update time.
	UpdateProduct(ctx context.Context, productID int64, request models.ProductRequest) error
	DeleteProduct(ctx context.Context, productID int64) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ProductServiceWrapper defines middleware composition for ProductService.
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService
}
