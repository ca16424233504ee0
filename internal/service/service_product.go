package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
)

// productService is the concrete implementation of ProductService. Requests
// reaching it are already validated; it only maps them onto store calls.
type productService struct {
	productRepository store.ProductRepository

	now    func() time.Time
	logger *logger.Logger
}

// NewProductService constructs a ProductService backed by productRepository.
func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		now:               now,
		logger:            logger,
	}
}

// CreateProduct stores a new product owned by userID. Creation and update
// times are both set to the current time.
func (p *productService) CreateProduct(ctx context.Context, userID int64, request models.ProductRequest) (int64, error) {
	log := logger.FromContext(ctx)

	ts := p.now()
	product := models.Product{
		UserID:    userID,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	request.ApplyTo(&product)

	productID, err := p.productRepository.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("product creation ended with error")
		return 0, fmt.Errorf("product creation ended with error: %w", err)
	}

	log.Info().Int64("product_id", productID).Int64("user_id", userID).Msg("product created")
	return productID, nil
}

func (p *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := p.productRepository.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products failed: %w", err)
	}

	return products, nil
}

func (p *productService) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	product, err := p.productRepository.FindProductByID(ctx, productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("getting product failed: %w", err)
	}

	return product, nil
}

// UpdateProduct reads the stored product, overlays the fields present in
// request and writes the result back with a fresh update time. A product
// removed between the read and the write yields store.ErrProductNotFound.
func (p *productService) UpdateProduct(ctx context.Context, productID int64, request models.ProductRequest) error {
	log := logger.FromContext(ctx)

	product, err := p.productRepository.FindProductByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("getting product for update failed: %w", err)
	}

	request.ApplyTo(&product)
	product.UpdatedAt = p.now()

	if err = p.productRepository.UpdateProduct(ctx, product); err != nil {
		log.Err(err).Int64("product_id", productID).Msg("product update ended with error")
		return fmt.Errorf("product update ended with error: %w", err)
	}

	return nil
}

// DeleteProduct checks that the product exists and removes it.
func (p *productService) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	if _, err := p.productRepository.FindProductByID(ctx, productID); err != nil {
		return fmt.Errorf("getting product for delete failed: %w", err)
	}

	if err := p.productRepository.DeleteProduct(ctx, productID); err != nil {
		log.Err(err).Int64("product_id", productID).Msg("product delete ended with error")
		return fmt.Errorf("product delete ended with error: %w", err)
	}

	log.Info().Int64("product_id", productID).Msg("product deleted")
	return nil
}
