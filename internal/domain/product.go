package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Price column bounds: NUMERIC(12, 2)
const (
	PriceScale     = 2
	pricePrecision = 12
)

var maxPrice = decimal.New(1, pricePrecision-PriceScale)

// Product represents a product in the catalog
type Product struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	SKU         string           `json:"sku" db:"sku"`
	Name        string           `json:"name" db:"name"`
	Description string           `json:"description" db:"description"`
	Price       decimal.Decimal  `json:"price" db:"price"`
	CategoryID  uuid.UUID        `json:"category_id" db:"category_id"`
	BrandID     uuid.UUID        `json:"brand_id" db:"brand_id"`
	Stock       int              `json:"stock" db:"stock"`
	Active      bool             `json:"active" db:"active"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
	Features    []ProductFeature `json:"features"`
}

// ProductFeature is a name/value pair owned by a product. It has no identity of its own.
type ProductFeature struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductFeatureRecord is the persisted form of a ProductFeature
type ProductFeatureRecord struct {
	ID        int64     `db:"id"`
	ProductID uuid.UUID `db:"product_id"`
	Name      string    `db:"name"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Feature strips the storage columns from the record
func (r *ProductFeatureRecord) Feature() ProductFeature {
	return ProductFeature{Name: r.Name, Value: r.Value}
}

// Validate checks the product fields that can be verified without I/O
func (p *Product) Validate() error {
	if strings.TrimSpace(p.SKU) == "" {
		return NewInvalidArgument("sku", "must not be blank")
	}
	if strings.TrimSpace(p.Name) == "" {
		return NewInvalidArgument("name", "must not be blank")
	}
	if !p.Price.IsPositive() {
		return NewInvalidArgument("price", "must be greater than 0")
	}
	if !p.Price.Equal(p.Price.Truncate(PriceScale)) {
		return NewInvalidArgument("price", "must have at most 2 decimal places")
	}
	if p.Price.GreaterThanOrEqual(maxPrice) {
		return NewInvalidArgument("price", "must be less than 10000000000")
	}
	if p.Stock < 0 {
		return NewInvalidArgument("stock", "must be greater than or equal to 0")
	}
	for _, f := range p.Features {
		if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Value) == "" {
			return NewInvalidArgument("features", "name and value are required")
		}
	}
	return nil
}

// CloneFeatures returns a copy of the feature list that is never nil
func CloneFeatures(features []ProductFeature) []ProductFeature {
	out := make([]ProductFeature, len(features))
	copy(out, features)
	return out
}

// ProductPatch holds the optional fields of a partial product update.
// A nil field is left untouched; a non-nil Features (even empty) replaces the set.
type ProductPatch struct {
	SKU         *string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *uuid.UUID
	BrandID     *uuid.UUID
	Stock       *int
	Active      *bool
	Features    *[]ProductFeature
}

// Apply merges the patch onto existing and returns the result. existing is not modified.
func (p ProductPatch) Apply(existing Product) Product {
	out := existing
	out.Features = CloneFeatures(existing.Features)

	if p.SKU != nil {
		out.SKU = *p.SKU
	}
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Price != nil {
		out.Price = *p.Price
	}
	if p.CategoryID != nil {
		out.CategoryID = *p.CategoryID
	}
	if p.BrandID != nil {
		out.BrandID = *p.BrandID
	}
	if p.Stock != nil {
		out.Stock = *p.Stock
	}
	if p.Active != nil {
		out.Active = *p.Active
	}
	if p.Features != nil {
		out.Features = CloneFeatures(*p.Features)
	}
	return out
}
