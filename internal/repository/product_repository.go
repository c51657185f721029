package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-service/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

const productColumns = `id, sku, name, description, price, category_id, brand_id, stock, active, created_at, updated_at`

// ProductRepository defines the interface for product data access.
// Every product returned carries its full feature set, never a nil slice.
type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db       *sql.DB
	features *productFeatureRepository
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{
		db:       db,
		features: newProductFeatureRepository(db),
	}
}

// Save writes the product row and replaces its whole feature set in one transaction:
// upsert the product, delete its feature rows, insert one row per feature, re-read.
// An empty feature list leaves the product with zero feature rows.
func (r *productRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var saved *domain.Product

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		saved, err = r.upsert(ctx, tx, product)
		if err != nil {
			return err
		}

		features := newProductFeatureRepository(tx)
		if err := features.DeleteByProductID(ctx, saved.ID); err != nil {
			return err
		}

		if len(product.Features) == 0 {
			saved.Features = []domain.ProductFeature{}
			return nil
		}

		for _, f := range product.Features {
			_, err := features.Save(ctx, &domain.ProductFeatureRecord{
				ProductID: saved.ID,
				Name:      f.Name,
				Value:     f.Value,
				CreatedAt: saved.UpdatedAt,
				UpdatedAt: saved.UpdatedAt,
			})
			if err != nil {
				return err
			}
		}

		records, err := features.FindByProductID(ctx, saved.ID)
		if err != nil {
			return err
		}

		saved.Features = make([]domain.ProductFeature, 0, len(records))
		for _, record := range records {
			saved.Features = append(saved.Features, record.Feature())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (r *productRepository) upsert(ctx context.Context, tx *sql.Tx, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE
		SET sku = EXCLUDED.sku,
		    name = EXCLUDED.name,
		    description = EXCLUDED.description,
		    price = EXCLUDED.price,
		    category_id = EXCLUDED.category_id,
		    brand_id = EXCLUDED.brand_id,
		    stock = EXCLUDED.stock,
		    active = EXCLUDED.active,
		    updated_at = EXCLUDED.updated_at
		RETURNING ` + productColumns

	id := product.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := product.CreatedAt
	if createdAt.IsZero() {
		createdAt = product.UpdatedAt
	}

	saved, err := scanProduct(tx.QueryRowContext(
		ctx,
		query,
		id,
		product.SKU,
		product.Name,
		product.Description,
		product.Price,
		product.CategoryID,
		product.BrandID,
		product.Stock,
		product.Active,
		createdAt,
		product.UpdatedAt,
	))
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			value := product.Name
			if field == "sku" {
				value = product.SKU
			}
			return nil, domain.NewAlreadyExists("product", field, value)
		}
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	return saved, nil
}

// FindByID retrieves a product and its features by ID
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return r.findOne(ctx, "id", `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// FindBySKU retrieves a product and its features by SKU
func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return r.findOne(ctx, "SKU", `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
}

// FindByName retrieves a product and its features by exact name
func (r *productRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	return r.findOne(ctx, "name", `SELECT `+productColumns+` FROM products WHERE name = $1`, name)
}

func (r *productRepository) findOne(ctx context.Context, by, query string, arg any) (*domain.Product, error) {
	product, err := scanProduct(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by %s: %w", by, err)
	}

	records, err := r.features.FindByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	product.Features = make([]domain.ProductFeature, 0, len(records))
	for _, record := range records {
		product.Features = append(product.Features, record.Feature())
	}

	return product, nil
}

// FindAll retrieves every product in insertion order. Features are loaded in a single extra query.
func (r *productRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	ids := []uuid.UUID{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
		ids = append(ids, product.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	byProduct, err := r.features.findByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		product.Features = domain.CloneFeatures(byProduct[product.ID])
	}

	return products, nil
}

// DeleteByID removes a product; its feature rows go with it through the cascading foreign key
func (r *productRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}

	return nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.SKU,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.CategoryID,
		&product.BrandID,
		&product.Stock,
		&product.Active,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}
