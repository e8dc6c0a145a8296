// Package product provides the Product catalog.
package product

import (
	"context"

	"loomline/internal/core/entity"
	"loomline/internal/core/id"
	"loomline/internal/core/types"
)

// Product represents a stock item referenced by inventory document lines.
type Product struct {
	entity.Catalog

	// DefaultUomID is the unit the product is usually counted in
	DefaultUomID *id.ID `db:"default_uom_id" json:"defaultUomId,omitempty"`

	// DefaultPrice is the reference price used when a line omits one
	DefaultPrice types.Money `db:"default_price" json:"defaultPrice"`

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewProduct creates a Product with required fields.
func NewProduct(code, name string) *Product {
	return &Product{
		Catalog:      entity.NewCatalog(code, name),
		DefaultPrice: types.Zero(),
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	return p.Catalog.Validate(ctx)
}
