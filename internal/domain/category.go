package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category represents a product category
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Validate checks the category fields that can be verified without I/O
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewInvalidArgument("name", "must not be blank")
	}
	return nil
}

// CategoryPatch holds the optional fields of a category update. A nil field is left untouched.
type CategoryPatch struct {
	Name        *string
	Description *string
}

// Apply merges the patch onto existing and returns the result
func (p CategoryPatch) Apply(existing Category) Category {
	out := existing
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	return out
}
