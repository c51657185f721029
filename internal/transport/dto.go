package transport

import (
	"time"

	"catalog-service/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeatureRequest is one name/value pair of a product request
type FeatureRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=255"`
	Value string `json:"value" validate:"required,notblank"`
}

// ProductRequest is the payload of product create and full replace.
// Price is checked by the domain; Active is ignored on create.
type ProductRequest struct {
	SKU         string           `json:"sku" validate:"required,notblank,max=100"`
	Name        string           `json:"name" validate:"required,notblank,min=3,max=255"`
	Description string           `json:"description" validate:"max=1000"`
	Price       decimal.Decimal  `json:"price"`
	CategoryID  string           `json:"category_id" validate:"required,uuid"`
	BrandID     string           `json:"brand_id" validate:"required,uuid"`
	Stock       *int             `json:"stock" validate:"required,gte=0"`
	Active      *bool            `json:"active"`
	Features    []FeatureRequest `json:"features" validate:"max=50,dive"`
}

// PatchProductRequest carries only the fields to change. A present features list replaces the set.
type PatchProductRequest struct {
	SKU         *string           `json:"sku" validate:"omitempty,notblank,max=100"`
	Name        *string           `json:"name" validate:"omitempty,notblank,min=3,max=255"`
	Description *string           `json:"description" validate:"omitempty,max=1000"`
	Price       *decimal.Decimal  `json:"price"`
	CategoryID  *string           `json:"category_id" validate:"omitempty,uuid"`
	BrandID     *string           `json:"brand_id" validate:"omitempty,uuid"`
	Stock       *int              `json:"stock" validate:"omitempty,gte=0"`
	Active      *bool             `json:"active"`
	Features    *[]FeatureRequest `json:"features" validate:"omitempty,max=50,dive"`
}

type BrandRequest struct {
	Name string `json:"name" validate:"required,notblank,min=2,max=100"`
}

type PatchBrandRequest struct {
	Name *string `json:"name" validate:"omitempty,notblank,min=2,max=100"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,notblank,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

type PatchCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// FeatureResponse represents a product feature in responses
type FeatureResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductResponse represents product data
type ProductResponse struct {
	ID          string            `json:"id"`
	SKU         string            `json:"sku"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	CategoryID  string            `json:"category_id"`
	BrandID     string            `json:"brand_id"`
	Stock       int               `json:"stock"`
	Active      bool              `json:"active"`
	Features    []FeatureResponse `json:"features"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type BrandResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toFeatures(in []FeatureRequest) []domain.ProductFeature {
	out := make([]domain.ProductFeature, 0, len(in))
	for _, f := range in {
		out = append(out, domain.ProductFeature{Name: f.Name, Value: f.Value})
	}
	return out
}

func (req *ProductRequest) toProduct() *domain.Product {
	product := &domain.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  uuid.MustParse(req.CategoryID),
		BrandID:     uuid.MustParse(req.BrandID),
		Features:    toFeatures(req.Features),
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	return product
}

// replace builds the full replacement of existing. Identity and creation time are kept;
// an omitted active flag keeps the current value.
func (req *ProductRequest) replace(existing *domain.Product) *domain.Product {
	product := req.toProduct()
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	product.Active = existing.Active
	if req.Active != nil {
		product.Active = *req.Active
	}
	return product
}

func (req *PatchProductRequest) toPatch() domain.ProductPatch {
	patch := domain.ProductPatch{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Active:      req.Active,
	}
	if req.CategoryID != nil {
		id := uuid.MustParse(*req.CategoryID)
		patch.CategoryID = &id
	}
	if req.BrandID != nil {
		id := uuid.MustParse(*req.BrandID)
		patch.BrandID = &id
	}
	if req.Features != nil {
		features := toFeatures(*req.Features)
		patch.Features = &features
	}
	return patch
}

func toProductResponse(p *domain.Product) ProductResponse {
	features := make([]FeatureResponse, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, FeatureResponse{Name: f.Name, Value: f.Value})
	}
	return ProductResponse{
		ID:          p.ID.String(),
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID.String(),
		BrandID:     p.BrandID.String(),
		Stock:       p.Stock,
		Active:      p.Active,
		Features:    features,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toBrandResponse(b *domain.Brand) BrandResponse {
	return BrandResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
