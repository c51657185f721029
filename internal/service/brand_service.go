package service

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/clock"
	"catalog-service/internal/domain"
	"catalog-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BrandService defines the interface for brand business logic.
// Lookups return (nil, nil) when the brand does not exist.
type BrandService interface {
	CreateBrand(ctx context.Context, candidate *domain.Brand) (*domain.Brand, error)
	GetBrandByID(ctx context.Context, id string) (*domain.Brand, error)
	GetBrandByName(ctx context.Context, name string) (*domain.Brand, error)
	GetAllBrands(ctx context.Context) ([]*domain.Brand, error)
	UpdateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	DeleteBrandByID(ctx context.Context, id string) error
}

type brandService struct {
	brandRepo repository.BrandRepository
	clock     clock.Clock
	logger    *zap.Logger
}

// NewBrandService creates a new instance of BrandService
func NewBrandService(brandRepo repository.BrandRepository, clk clock.Clock, logger *zap.Logger) BrandService {
	return &brandService{
		brandRepo: brandRepo,
		clock:     clk,
		logger:    logger,
	}
}

// CreateBrand persists a new brand after checking that no brand has the same name
func (s *brandService) CreateBrand(ctx context.Context, candidate *domain.Brand) (*domain.Brand, error) {
	if candidate.ID != uuid.Nil {
		return nil, domain.NewInvalidArgument("id", "a new brand must not have an ID")
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	// Check if brand already exists
	existing, err := s.brandRepo.FindByName(ctx, candidate.Name)
	if err != nil && !errors.Is(err, repository.ErrBrandNotFound) {
		return nil, storeFailure("check existing", "brand", err)
	}
	if existing != nil {
		s.logger.Debug("Brand name already taken", zap.String("name", candidate.Name))
		return nil, domain.NewAlreadyExists("brand", "name", candidate.Name)
	}

	now := s.clock.Now()
	brand := &domain.Brand{
		Name:      candidate.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.brandRepo.Save(ctx, brand)
	if err != nil {
		return nil, storeFailure("create", "brand", err)
	}

	s.logger.Info("Brand created", zap.String("brand_id", saved.ID.String()))
	return saved, nil
}

// GetBrandByID retrieves a brand by ID
func (s *brandService) GetBrandByID(ctx context.Context, id string) (*domain.Brand, error) {
	brandID, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}

	brand, err := s.brandRepo.FindByID(ctx, brandID)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, nil
		}
		return nil, storeFailure("get", "brand", err)
	}
	return brand, nil
}

func (s *brandService) GetBrandByName(ctx context.Context, name string) (*domain.Brand, error) {
	brand, err := s.brandRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, nil
		}
		return nil, storeFailure("get", "brand", err)
	}
	return brand, nil
}

func (s *brandService) GetAllBrands(ctx context.Context) ([]*domain.Brand, error) {
	brands, err := s.brandRepo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure("list", "brands", err)
	}
	return brands, nil
}

// UpdateBrand overwrites the stored brand unconditionally and refreshes UpdatedAt
func (s *brandService) UpdateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	if brand.ID == uuid.Nil {
		return nil, domain.NewInvalidArgument("id", "is required")
	}
	if err := brand.Validate(); err != nil {
		return nil, err
	}

	updated := *brand
	updated.UpdatedAt = s.clock.Now()

	saved, err := s.brandRepo.Save(ctx, &updated)
	if err != nil {
		return nil, storeFailure("update", "brand", err)
	}

	s.logger.Info("Brand updated", zap.String("brand_id", saved.ID.String()))
	return saved, nil
}

func (s *brandService) DeleteBrandByID(ctx context.Context, id string) error {
	brandID, err := domain.ParseID(id)
	if err != nil {
		return err
	}

	if err := s.brandRepo.DeleteByID(ctx, brandID); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return fmt.Errorf("brand %s: %w", brandID, domain.ErrNotFound)
		}
		return storeFailure("delete", "brand", err)
	}

	s.logger.Info("Brand deleted", zap.String("brand_id", brandID.String()))
	return nil
}
