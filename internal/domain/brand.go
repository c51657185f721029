package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Brand represents the manufacturer or label a product is sold under
type Brand struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Validate checks the brand fields that can be verified without I/O
func (b *Brand) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return NewInvalidArgument("name", "must not be blank")
	}
	return nil
}

// BrandPatch holds the optional fields of a brand update. A nil field is left untouched.
type BrandPatch struct {
	Name *string
}

// Apply merges the patch onto existing and returns the result
func (p BrandPatch) Apply(existing Brand) Brand {
	out := existing
	if p.Name != nil {
		out.Name = *p.Name
	}
	return out
}
