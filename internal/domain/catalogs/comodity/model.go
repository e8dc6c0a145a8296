// Package comodity provides the Comodity catalog.
// Comodities are the garment styles booked on booking order lines.
// The spelling follows the upstream data model.
package comodity

import (
	"context"

	"loomline/internal/core/entity"
)

// Comodity represents a bookable garment style.
type Comodity struct {
	entity.Catalog

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewComodity creates a Comodity with required fields.
func NewComodity(code, name string) *Comodity {
	return &Comodity{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable.
func (c *Comodity) Validate(ctx context.Context) error {
	return c.Catalog.Validate(ctx)
}
