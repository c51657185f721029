package service

import (
	"context"
	"errors"

	"catalog-service/internal/domain"
	"catalog-service/internal/repository"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("connection refused")

// Mock repositories for testing
type mockBrandRepository struct {
	brands    map[uuid.UUID]*domain.Brand
	saveCalls int
	failWith  error
}

func newMockBrandRepository() *mockBrandRepository {
	return &mockBrandRepository{brands: make(map[uuid.UUID]*domain.Brand)}
}

func (m *mockBrandRepository) Save(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	m.saveCalls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	saved := *brand
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	if existing, ok := m.brands[saved.ID]; ok {
		saved.CreatedAt = existing.CreatedAt
	}
	m.brands[saved.ID] = &saved
	out := saved
	return &out, nil
}

func (m *mockBrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	brand, ok := m.brands[id]
	if !ok {
		return nil, repository.ErrBrandNotFound
	}
	out := *brand
	return &out, nil
}

func (m *mockBrandRepository) FindByName(ctx context.Context, name string) (*domain.Brand, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, brand := range m.brands {
		if brand.Name == name {
			out := *brand
			return &out, nil
		}
	}
	return nil, repository.ErrBrandNotFound
}

func (m *mockBrandRepository) FindAll(ctx context.Context) ([]*domain.Brand, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	brands := []*domain.Brand{}
	for _, brand := range m.brands {
		out := *brand
		brands = append(brands, &out)
	}
	return brands, nil
}

func (m *mockBrandRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.brands[id]; !ok {
		return repository.ErrBrandNotFound
	}
	delete(m.brands, id)
	return nil
}

type mockCategoryRepository struct {
	categories map[uuid.UUID]*domain.Category
	saveCalls  int
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: make(map[uuid.UUID]*domain.Category)}
}

func (m *mockCategoryRepository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	m.saveCalls++
	saved := *category
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	if existing, ok := m.categories[saved.ID]; ok {
		saved.CreatedAt = existing.CreatedAt
	}
	m.categories[saved.ID] = &saved
	out := saved
	return &out, nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	out := *category
	return &out, nil
}

func (m *mockCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	for _, category := range m.categories {
		if category.Name == name {
			out := *category
			return &out, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (m *mockCategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	for _, category := range m.categories {
		out := *category
		categories = append(categories, &out)
	}
	return categories, nil
}

func (m *mockCategoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

// mockProductRepository keeps features per product the way the real store does:
// every save replaces the whole set.
type mockProductRepository struct {
	products     map[uuid.UUID]*domain.Product
	saveCalls    int
	skuLookups   int
	nameLookups  int
	saveConflict *domain.AlreadyExistsError
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[uuid.UUID]*domain.Product)}
}

func (m *mockProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	m.saveCalls++
	if m.saveConflict != nil {
		return nil, m.saveConflict
	}
	saved := *product
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	if existing, ok := m.products[saved.ID]; ok {
		saved.CreatedAt = existing.CreatedAt
	}
	saved.Features = domain.CloneFeatures(product.Features)
	m.products[saved.ID] = &saved
	return m.copyOf(&saved), nil
}

func (m *mockProductRepository) copyOf(p *domain.Product) *domain.Product {
	out := *p
	out.Features = domain.CloneFeatures(p.Features)
	return &out
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return m.copyOf(product), nil
}

func (m *mockProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	m.skuLookups++
	for _, product := range m.products {
		if product.SKU == sku {
			return m.copyOf(product), nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	m.nameLookups++
	for _, product := range m.products {
		if product.Name == name {
			return m.copyOf(product), nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, product := range m.products {
		products = append(products, m.copyOf(product))
	}
	return products, nil
}

func (m *mockProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}
