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
	ErrBrandNotFound = errors.New("brand not found")
)

// BrandRepository defines the interface for brand data access
type BrandRepository interface {
	Save(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error)
	FindByName(ctx context.Context, name string) (*domain.Brand, error)
	FindAll(ctx context.Context) ([]*domain.Brand, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type brandRepository struct {
	db *sql.DB
}

// NewBrandRepository creates a new instance of BrandRepository
func NewBrandRepository(db *sql.DB) BrandRepository {
	return &brandRepository{db: db}
}

// Save inserts the brand, assigning a fresh id when it has none, or overwrites the row with the same id.
// created_at is never overwritten on update.
func (r *brandRepository) Save(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	query := `
		INSERT INTO brands (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, updated_at = EXCLUDED.updated_at
		RETURNING id, name, created_at, updated_at
	`

	id := brand.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := brand.CreatedAt
	if createdAt.IsZero() {
		createdAt = brand.UpdatedAt
	}

	saved, err := scanBrand(r.db.QueryRowContext(ctx, query, id, brand.Name, createdAt, brand.UpdatedAt))
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			return nil, domain.NewAlreadyExists("brand", field, brand.Name)
		}
		return nil, fmt.Errorf("failed to save brand: %w", err)
	}

	return saved, nil
}

// FindByID retrieves a brand by ID using parameterized queries
func (r *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM brands
		WHERE id = $1
	`

	brand, err := scanBrand(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to find brand by ID: %w", err)
	}

	return brand, nil
}

// FindByName retrieves a brand by its exact, case-sensitive name
func (r *brandRepository) FindByName(ctx context.Context, name string) (*domain.Brand, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM brands
		WHERE name = $1
	`

	brand, err := scanBrand(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to find brand by name: %w", err)
	}

	return brand, nil
}

// FindAll retrieves every brand in insertion order
func (r *brandRepository) FindAll(ctx context.Context) ([]*domain.Brand, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM brands
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	brands := []*domain.Brand{}
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, brand)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating brands: %w", err)
	}

	return brands, nil
}

// DeleteByID removes a brand. It returns ErrBrandNotFound when no row matched.
func (r *brandRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBrandNotFound
	}

	return nil
}

func scanBrand(row rowScanner) (*domain.Brand, error) {
	brand := &domain.Brand{}
	err := row.Scan(
		&brand.ID,
		&brand.Name,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return brand, nil
}
