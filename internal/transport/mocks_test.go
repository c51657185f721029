package transport

import (
	"context"
	"errors"

	"catalog-service/internal/domain"
	"catalog-service/internal/repository"

	"github.com/google/uuid"
)

var errBrokenStore = errors.New("pool exhausted")

// Mock repositories for testing. Each keeps insertion order for FindAll.
type memoryBrandRepository struct {
	order  []uuid.UUID
	brands map[uuid.UUID]domain.Brand
}

func newMemoryBrandRepository() *memoryBrandRepository {
	return &memoryBrandRepository{brands: make(map[uuid.UUID]domain.Brand)}
}

func (m *memoryBrandRepository) Save(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	saved := *brand
	for id, b := range m.brands {
		if b.Name == saved.Name && id != saved.ID {
			return nil, domain.NewAlreadyExists("brand", "name", saved.Name)
		}
	}
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	if existing, ok := m.brands[saved.ID]; ok {
		saved.CreatedAt = existing.CreatedAt
	} else {
		m.order = append(m.order, saved.ID)
	}
	m.brands[saved.ID] = saved
	return &saved, nil
}

func (m *memoryBrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	brand, ok := m.brands[id]
	if !ok {
		return nil, repository.ErrBrandNotFound
	}
	return &brand, nil
}

func (m *memoryBrandRepository) FindByName(ctx context.Context, name string) (*domain.Brand, error) {
	for _, brand := range m.brands {
		if brand.Name == name {
			return &brand, nil
		}
	}
	return nil, repository.ErrBrandNotFound
}

func (m *memoryBrandRepository) FindAll(ctx context.Context) ([]*domain.Brand, error) {
	brands := []*domain.Brand{}
	for _, id := range m.order {
		if brand, ok := m.brands[id]; ok {
			brands = append(brands, &brand)
		}
	}
	return brands, nil
}

func (m *memoryBrandRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.brands[id]; !ok {
		return repository.ErrBrandNotFound
	}
	delete(m.brands, id)
	return nil
}

type memoryCategoryRepository struct {
	order      []uuid.UUID
	categories map[uuid.UUID]domain.Category
}

func newMemoryCategoryRepository() *memoryCategoryRepository {
	return &memoryCategoryRepository{categories: make(map[uuid.UUID]domain.Category)}
}

func (m *memoryCategoryRepository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	saved := *category
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	if existing, ok := m.categories[saved.ID]; ok {
		saved.CreatedAt = existing.CreatedAt
	} else {
		m.order = append(m.order, saved.ID)
	}
	m.categories[saved.ID] = saved
	return &saved, nil
}

func (m *memoryCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	return &category, nil
}

func (m *memoryCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	for _, category := range m.categories {
		if category.Name == name {
			return &category, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (m *memoryCategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	for _, id := range m.order {
		if category, ok := m.categories[id]; ok {
			categories = append(categories, &category)
		}
	}
	return categories, nil
}

func (m *memoryCategoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

type memoryProductRepository struct {
	order    []uuid.UUID
	products map[uuid.UUID]domain.Product
	broken   bool
}

func newMemoryProductRepository() *memoryProductRepository {
	return &memoryProductRepository{products: make(map[uuid.UUID]domain.Product)}
}

func (m *memoryProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if m.broken {
		return nil, errBrokenStore
	}
	saved := *product
	for id, p := range m.products {
		if id == saved.ID {
			continue
		}
		if p.Name == saved.Name {
			return nil, domain.NewAlreadyExists("product", "name", saved.Name)
		}
		if p.SKU == saved.SKU {
			return nil, domain.NewAlreadyExists("product", "sku", saved.SKU)
		}
	}
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	if existing, ok := m.products[saved.ID]; ok {
		saved.CreatedAt = existing.CreatedAt
	} else {
		m.order = append(m.order, saved.ID)
	}
	saved.Features = domain.CloneFeatures(product.Features)
	m.products[saved.ID] = saved
	return m.copyOf(saved), nil
}

func (m *memoryProductRepository) copyOf(p domain.Product) *domain.Product {
	p.Features = domain.CloneFeatures(p.Features)
	return &p
}

func (m *memoryProductRepository) find(match func(domain.Product) bool) (*domain.Product, error) {
	if m.broken {
		return nil, errBrokenStore
	}
	for _, p := range m.products {
		if match(p) {
			return m.copyOf(p), nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *memoryProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return m.find(func(p domain.Product) bool { return p.ID == id })
}

func (m *memoryProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return m.find(func(p domain.Product) bool { return p.SKU == sku })
}

func (m *memoryProductRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	return m.find(func(p domain.Product) bool { return p.Name == name })
}

func (m *memoryProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	if m.broken {
		return nil, errBrokenStore
	}
	products := []*domain.Product{}
	for _, id := range m.order {
		if p, ok := m.products[id]; ok {
			products = append(products, m.copyOf(p))
		}
	}
	return products, nil
}

func (m *memoryProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}
