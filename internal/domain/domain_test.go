package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		ID:         uuid.New(),
		SKU:        "SKU-1",
		Name:       "Widget",
		Price:      decimal.RequireFromString("9.99"),
		CategoryID: uuid.New(),
		BrandID:    uuid.New(),
		Stock:      5,
		Active:     true,
		Features:   []ProductFeature{{Name: "color", Value: "red"}},
	}
}

func TestProductValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Product)
		field  string
	}{
		{"valid", func(p *Product) {}, ""},
		{"blank sku", func(p *Product) { p.SKU = "  " }, "sku"},
		{"blank name", func(p *Product) { p.Name = "" }, "name"},
		{"zero price", func(p *Product) { p.Price = decimal.Zero }, "price"},
		{"negative price", func(p *Product) { p.Price = decimal.RequireFromString("-1") }, "price"},
		{"sub-cent price", func(p *Product) { p.Price = decimal.RequireFromString("0.004") }, "price"},
		{"three decimal places", func(p *Product) { p.Price = decimal.RequireFromString("9.999") }, "price"},
		{"trailing zero decimals", func(p *Product) { p.Price = decimal.RequireFromString("9.9900") }, ""},
		{"largest storable price", func(p *Product) { p.Price = decimal.RequireFromString("9999999999.99") }, ""},
		{"price beyond column range", func(p *Product) { p.Price = decimal.RequireFromString("123456789012.50") }, "price"},
		{"negative stock", func(p *Product) { p.Stock = -1 }, "stock"},
		{"blank feature value", func(p *Product) { p.Features = []ProductFeature{{Name: "color"}} }, "features"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)

			err := p.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var invalid *InvalidArgumentError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestProductPatch_EmptyPatchKeepsEverything(t *testing.T) {
	existing := validProduct()

	merged := ProductPatch{}.Apply(existing)

	assert.Equal(t, existing, merged)
}

func TestProductPatch_FeaturesReplaceOrKeep(t *testing.T) {
	existing := validProduct()

	kept := ProductPatch{Name: strPtr("Gadget")}.Apply(existing)
	assert.Equal(t, "Gadget", kept.Name)
	assert.Equal(t, existing.Features, kept.Features)

	empty := []ProductFeature{}
	cleared := ProductPatch{Features: &empty}.Apply(existing)
	assert.NotNil(t, cleared.Features)
	assert.Empty(t, cleared.Features)

	// the merge result must not alias the stored slice
	kept.Features[0].Value = "blue"
	assert.Equal(t, "red", existing.Features[0].Value)
}

func TestProperty_ProductPatchOnlyTouchesProvidedFields(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a patch with only stock set changes nothing else", prop.ForAll(
		func(stock int) bool {
			existing := validProduct()
			merged := ProductPatch{Stock: &stock}.Apply(existing)

			expected := existing
			expected.Stock = stock
			return merged.Stock == stock &&
				merged.SKU == expected.SKU &&
				merged.Name == expected.Name &&
				merged.Price.Equal(expected.Price) &&
				merged.ID == expected.ID &&
				len(merged.Features) == len(expected.Features)
		},
		gen.IntRange(0, 100000),
	))

	properties.TestingRun(t)
}

func TestBrandAndCategoryPatch(t *testing.T) {
	brand := Brand{ID: uuid.New(), Name: "Nike"}
	assert.Equal(t, brand, BrandPatch{}.Apply(brand))
	assert.Equal(t, "Adidas", BrandPatch{Name: strPtr("Adidas")}.Apply(brand).Name)

	category := Category{ID: uuid.New(), Name: "Shoes", Description: "Footwear"}
	merged := CategoryPatch{Description: strPtr("")}.Apply(category)
	assert.Equal(t, "Shoes", merged.Name)
	assert.Empty(t, merged.Description)
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseID("not-a-uuid")
	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "id", invalid.Field)
}

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("connection refused")
	storeErr := fmt.Errorf("wrapped: %w", NewStoreError("save", "product", cause))

	assert.ErrorIs(t, storeErr, ErrStoreFailure)
	assert.ErrorIs(t, storeErr, cause)
	assert.False(t, IsDomainError(storeErr))

	exists := NewAlreadyExists("brand", "name", "Nike")
	assert.ErrorIs(t, exists, ErrAlreadyExists)
	assert.NotErrorIs(t, exists, ErrInvalidArgument)
	assert.True(t, IsDomainError(exists))

	assert.True(t, IsDomainError(fmt.Errorf("product %s: %w", uuid.New(), ErrNotFound)))
	assert.True(t, IsDomainError(NewInvalidArgument("id", "must be a UUID")))
}

func strPtr(s string) *string { return &s }
