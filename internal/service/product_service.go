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

// ProductService defines the interface for product business logic
type ProductService interface {
	CreateProduct(ctx context.Context, candidate *domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*domain.Product, error)
	GetProductByName(ctx context.Context, name string) (*domain.Product, error)
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProductByID(ctx context.Context, id string) error
}

type productService struct {
	productRepo repository.ProductRepository
	clock       clock.Clock
	logger      *zap.Logger
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository, clk clock.Clock, logger *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		clock:       clk,
		logger:      logger,
	}
}

// CreateProduct persists a new, active product. Name is checked before SKU;
// when the name is taken the SKU is not looked up at all.
func (s *productService) CreateProduct(ctx context.Context, candidate *domain.Product) (*domain.Product, error) {
	if candidate.ID != uuid.Nil {
		return nil, domain.NewInvalidArgument("id", "a new product must not have an ID")
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	byName, err := s.productRepo.FindByName(ctx, candidate.Name)
	if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
		return nil, storeFailure("check existing", "product", err)
	}
	if byName != nil {
		s.logger.Debug("Product name already taken", zap.String("name", candidate.Name))
		return nil, domain.NewAlreadyExists("product", "name", candidate.Name)
	}

	bySKU, err := s.productRepo.FindBySKU(ctx, candidate.SKU)
	if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
		return nil, storeFailure("check existing", "product", err)
	}
	if bySKU != nil {
		s.logger.Debug("Product SKU already taken", zap.String("sku", candidate.SKU))
		return nil, domain.NewAlreadyExists("product", "sku", candidate.SKU)
	}

	now := s.clock.Now()
	product := &domain.Product{
		SKU:         candidate.SKU,
		Name:        candidate.Name,
		Description: candidate.Description,
		Price:       candidate.Price,
		CategoryID:  candidate.CategoryID,
		BrandID:     candidate.BrandID,
		Stock:       candidate.Stock,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
		Features:    domain.CloneFeatures(candidate.Features),
	}

	saved, err := s.productRepo.Save(ctx, product)
	if err != nil {
		return nil, storeFailure("create", "product", err)
	}

	s.logger.Info("Product created",
		zap.String("product_id", saved.ID.String()),
		zap.String("sku", saved.SKU),
		zap.Int("features", len(saved.Features)),
	)
	return saved, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	productID, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.lookup(s.productRepo.FindByID(ctx, productID))
}

func (s *productService) GetProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return s.lookup(s.productRepo.FindBySKU(ctx, sku))
}

func (s *productService) GetProductByName(ctx context.Context, name string) (*domain.Product, error) {
	return s.lookup(s.productRepo.FindByName(ctx, name))
}

func (s *productService) lookup(product *domain.Product, err error) (*domain.Product, error) {
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil
		}
		return nil, storeFailure("get", "product", err)
	}
	return product, nil
}

func (s *productService) GetAllProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure("list", "products", err)
	}
	return products, nil
}

// UpdateProduct overwrites the stored product and replaces its feature set.
// Uniqueness is not re-checked here; a collision surfaces from the store as AlreadyExists.
func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == uuid.Nil {
		return nil, domain.NewInvalidArgument("id", "is required")
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	updated := *product
	updated.Features = domain.CloneFeatures(product.Features)
	updated.UpdatedAt = s.clock.Now()

	saved, err := s.productRepo.Save(ctx, &updated)
	if err != nil {
		return nil, storeFailure("update", "product", err)
	}

	s.logger.Info("Product updated",
		zap.String("product_id", saved.ID.String()),
		zap.Int("features", len(saved.Features)),
	)
	return saved, nil
}

func (s *productService) DeleteProductByID(ctx context.Context, id string) error {
	productID, err := domain.ParseID(id)
	if err != nil {
		return err
	}

	if err := s.productRepo.DeleteByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
		}
		return storeFailure("delete", "product", err)
	}

	s.logger.Info("Product deleted", zap.String("product_id", productID.String()))
	return nil
}
