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

// CategoryService defines the interface for category business logic
type CategoryService interface {
	CreateCategory(ctx context.Context, candidate *domain.Category) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*domain.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	GetAllCategories(ctx context.Context) ([]*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteCategoryByID(ctx context.Context, id string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	clock        clock.Clock
	logger       *zap.Logger
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository, clk clock.Clock, logger *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		clock:        clk,
		logger:       logger,
	}
}

// CreateCategory persists a new category after checking that the name is free.
// The description is copied through unchanged.
func (s *categoryService) CreateCategory(ctx context.Context, candidate *domain.Category) (*domain.Category, error) {
	if candidate.ID != uuid.Nil {
		return nil, domain.NewInvalidArgument("id", "a new category must not have an ID")
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindByName(ctx, candidate.Name)
	if err != nil && !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, storeFailure("check existing", "category", err)
	}
	if existing != nil {
		s.logger.Debug("Category name already taken", zap.String("name", candidate.Name))
		return nil, domain.NewAlreadyExists("category", "name", candidate.Name)
	}

	now := s.clock.Now()
	category := &domain.Category{
		Name:        candidate.Name,
		Description: candidate.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.categoryRepo.Save(ctx, category)
	if err != nil {
		return nil, storeFailure("create", "category", err)
	}

	s.logger.Info("Category created", zap.String("category_id", saved.ID.String()))
	return saved, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	categoryID, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, nil
		}
		return nil, storeFailure("get", "category", err)
	}
	return category, nil
}

func (s *categoryService) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, nil
		}
		return nil, storeFailure("get", "category", err)
	}
	return category, nil
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure("list", "categories", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if category.ID == uuid.Nil {
		return nil, domain.NewInvalidArgument("id", "is required")
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	updated := *category
	updated.UpdatedAt = s.clock.Now()

	saved, err := s.categoryRepo.Save(ctx, &updated)
	if err != nil {
		return nil, storeFailure("update", "category", err)
	}

	s.logger.Info("Category updated", zap.String("category_id", saved.ID.String()))
	return saved, nil
}

func (s *categoryService) DeleteCategoryByID(ctx context.Context, id string) error {
	categoryID, err := domain.ParseID(id)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
		}
		return storeFailure("delete", "category", err)
	}

	s.logger.Info("Category deleted", zap.String("category_id", categoryID.String()))
	return nil
}
