package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

// productRepository is the database/sql implementation of
// [ProductRepository] over the "products" table.
type productRepository struct {
	*DB
	logger *logger.Logger
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateProduct inserts a product and returns its id. A product whose owner
// does not exist yields [ErrUserNotFound].
func (p *productRepository) CreateProduct(ctx context.Context, product models.Product) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProductQuery(p.builder, product)
	if err != nil {
		log.Err(err).Str("func", "productRepository.CreateProduct").Msg("failed to build query")
		return 0, err
	}

	var productID int64
	if err = p.QueryRowContext(ctx, query, args...).Scan(&productID); err != nil {
		if p.classify(err) == ForeignKeyViolation {
			return 0, ErrUserNotFound
		}

		log.Err(err).
			Str("func", "productRepository.CreateProduct").
			Int64("user_id", product.UserID).
			Msg("error inserting product")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return productID, nil
}

// ListProducts returns every product ordered by id. An empty table yields
// an empty, non-nil slice.
func (p *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductsQuery(p.builder)
	if err != nil {
		log.Err(err).Str("func", "productRepository.ListProducts").Msg("failed to build query")
		return nil, err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "productRepository.ListProducts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 16)
	for rows.Next() {
		var product models.Product
		if err = scanProduct(rows, &product); err != nil {
			log.Err(err).Str("func", "productRepository.ListProducts").Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "productRepository.ListProducts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// FindProductByID returns the product with the given id or
// [ErrProductNotFound].
func (p *productRepository) FindProductByID(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductByIDQuery(p.builder, productID)
	if err != nil {
		log.Err(err).Str("func", "productRepository.FindProductByID").Msg("failed to build query")
		return models.Product{}, err
	}

	var product models.Product
	err = scanProduct(p.QueryRowContext(ctx, query, args...), &product)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.FindProductByID").
			Int64("product_id", productID).
			Msg("failed to scan product row")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return product, nil
}

// UpdateProduct writes the mutable columns of product. Zero affected rows
// means the product is gone and yields [ErrProductNotFound].
func (p *productRepository) UpdateProduct(ctx context.Context, product models.Product) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProductQuery(p.builder, product)
	if err != nil {
		log.Err(err).Str("func", "productRepository.UpdateProduct").Msg("failed to build query")
		return err
	}

	return p.execAffectingProduct(ctx, "productRepository.UpdateProduct", product.ProductID, query, args)
}

// DeleteProduct hard-deletes the product. Zero affected rows yields
// [ErrProductNotFound].
func (p *productRepository) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(p.builder, productID)
	if err != nil {
		log.Err(err).Str("func", "productRepository.DeleteProduct").Msg("failed to build query")
		return err
	}

	return p.execAffectingProduct(ctx, "productRepository.DeleteProduct", productID, query, args)
}

func (p *productRepository) execAffectingProduct(ctx context.Context, funcName string, productID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("product_id", productID).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("product_id", productID).Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, product *models.Product) error {
	return row.Scan(
		&product.ProductID,
		&product.UserID,
		&product.Category,
		&product.Title,
		&product.Description,
		&product.Price,
		&product.Quantity,
		&product.ProductImg,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
}
