package service

import (
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
)

// Services groups the services handed to the transport layer. Each one is
// wrapped in its request validation.
type Services struct {
	AuthService    AuthService
	ProductService ProductService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, cfg, logger)),
		ProductService: NewProductValidationService(validator).
			Wrap(NewProductService(storages.ProductRepository, logger)),
	}
}
