package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

// invalidData wraps validation failures in ErrInvalidDataProvided and
// passes any other error through.
func invalidData(err error) error {
	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, fieldErrors)
	}

	return err
}

// AuthValidationService validates register and login requests before they
// reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

// NewAuthValidationService returns a wrapper that validates with validator.
func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, request models.RegisterRequest) (int64, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return 0, invalidData(err)
	}

	return v.inner.RegisterUser(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, invalidData(err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Profile(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.Profile(ctx, userID)
}

// ProductValidationService validates product requests before they reach the
// wrapped ProductService: creation checks every field, update only the
// fields present in the request.
type ProductValidationService struct {
	inner     ProductService
	validator validators.Validator
}

// NewProductValidationService returns a wrapper that validates with validator.
func NewProductValidationService(validator validators.Validator) ProductServiceWrapper {
	return &ProductValidationService{validator: validator}
}

func (v *ProductValidationService) Wrap(inner ProductService) ProductService {
	v.inner = inner
	return v
}

func (v *ProductValidationService) CreateProduct(ctx context.Context, userID int64, request models.ProductRequest) (int64, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return 0, invalidData(err)
	}

	return v.inner.CreateProduct(ctx, userID, request)
}

func (v *ProductValidationService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return v.inner.ListProducts(ctx)
}

func (v *ProductValidationService) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	return v.inner.GetProduct(ctx, productID)
}

func (v *ProductValidationService) UpdateProduct(ctx context.Context, productID int64, request models.ProductRequest) error {
	if fields := request.PresentFields(); len(fields) > 0 {
		if err := v.validator.Validate(ctx, request, fields...); err != nil {
			return invalidData(err)
		}
	}

	return v.inner.UpdateProduct(ctx, productID, request)
}

func (v *ProductValidationService) DeleteProduct(ctx context.Context, productID int64) error {
	return v.inner.DeleteProduct(ctx, productID)
}
