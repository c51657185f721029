package repository

import (
	"context"
	"database/sql"
	"fmt"

	"catalog-service/internal/domain"

	"github.com/google/uuid"
)

// ProductFeatureRepository defines data access for the feature rows owned by a product
type ProductFeatureRepository interface {
	Save(ctx context.Context, feature *domain.ProductFeatureRecord) (*domain.ProductFeatureRecord, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) ([]*domain.ProductFeatureRecord, error)
	DeleteByProductID(ctx context.Context, productID uuid.UUID) error
}

type productFeatureRepository struct {
	db querier
}

// NewProductFeatureRepository creates a new instance of ProductFeatureRepository
func NewProductFeatureRepository(db *sql.DB) ProductFeatureRepository {
	return newProductFeatureRepository(db)
}

// newProductFeatureRepository binds the feature store to a pool or to an open transaction
func newProductFeatureRepository(db querier) *productFeatureRepository {
	return &productFeatureRepository{db: db}
}

// Save inserts a feature row. Feature rows are never updated in place.
func (r *productFeatureRepository) Save(ctx context.Context, feature *domain.ProductFeatureRecord) (*domain.ProductFeatureRecord, error) {
	query := `
		INSERT INTO product_features (product_id, name, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, product_id, name, value, created_at, updated_at
	`

	saved, err := scanFeature(r.db.QueryRowContext(
		ctx,
		query,
		feature.ProductID,
		feature.Name,
		feature.Value,
		feature.CreatedAt,
		feature.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save product feature: %w", err)
	}

	return saved, nil
}

// FindByProductID returns the product's features in insertion order
func (r *productFeatureRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]*domain.ProductFeatureRecord, error) {
	query := `
		SELECT id, product_id, name, value, created_at, updated_at
		FROM product_features
		WHERE product_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product features: %w", err)
	}
	defer rows.Close()

	return collectFeatures(rows)
}

// findByProductIDs loads the features of several products in one round trip
func (r *productFeatureRepository) findByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]domain.ProductFeature, error) {
	byProduct := make(map[uuid.UUID][]domain.ProductFeature, len(productIDs))
	if len(productIDs) == 0 {
		return byProduct, nil
	}

	ids := make([]string, len(productIDs))
	for i, id := range productIDs {
		ids[i] = id.String()
	}

	query := `
		SELECT id, product_id, name, value, created_at, updated_at
		FROM product_features
		WHERE product_id = ANY($1::uuid[])
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find product features: %w", err)
	}
	defer rows.Close()

	records, err := collectFeatures(rows)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		byProduct[record.ProductID] = append(byProduct[record.ProductID], record.Feature())
	}

	return byProduct, nil
}

// DeleteByProductID removes every feature row of the product. Deleting zero rows is not an error.
func (r *productFeatureRepository) DeleteByProductID(ctx context.Context, productID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM product_features WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to delete product features: %w", err)
	}
	return nil
}

func collectFeatures(rows *sql.Rows) ([]*domain.ProductFeatureRecord, error) {
	features := []*domain.ProductFeatureRecord{}
	for rows.Next() {
		feature, err := scanFeature(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product feature: %w", err)
		}
		features = append(features, feature)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product features: %w", err)
	}

	return features, nil
}

func scanFeature(row rowScanner) (*domain.ProductFeatureRecord, error) {
	feature := &domain.ProductFeatureRecord{}
	err := row.Scan(
		&feature.ID,
		&feature.ProductID,
		&feature.Name,
		&feature.Value,
		&feature.CreatedAt,
		&feature.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return feature, nil
}
