package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns its server-assigned id.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ProductRepository persists the product catalogue.
type ProductRepository interface {
	// CreateProduct inserts product and returns its server-assigned id.
	CreateProduct(ctx context.Context, product models.Product) (int64, error)

	// ListProducts returns every product ordered by id.
	ListProducts(ctx context.Context) ([]models.Product, error)
	FindProductByID(ctx context.Context, productID int64) (models.Product, error)

	// UpdateProduct overwrites every mutable column of the stored product
	// with the values of product. The owner and creation time are left as
	// they are.
	UpdateProduct(ctx context.Context, product models.Product) error
	DeleteProduct(ctx context.Context, productID int64) error
}

// ErrorClassificator maps a driver-specific error onto an
// [ErrorClassification] so repositories can translate constraint failures
// into domain errors without knowing which database they run on.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
