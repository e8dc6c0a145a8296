// Package uom provides the unit-of-measure catalog.
package uom

import (
	"context"

	"loomline/internal/core/apperror"
	"loomline/internal/core/entity"
)

// Uom represents a unit of measure (PCS, DZN, MTR, ...).
// The Unit label is what documents display next to quantities.
type Uom struct {
	entity.Catalog

	// Unit is the short display label
	Unit string `db:"unit" json:"unit"`
}

// NewUom creates a Uom with required fields.
func NewUom(code, unit string) *Uom {
	return &Uom{
		Catalog: entity.NewCatalog(code, unit),
		Unit:    unit,
	}
}

// Validate implements entity.Validatable.
func (u *Uom) Validate(ctx context.Context) error {
	if u.Unit == "" {
		return apperror.NewValidation("unit is required").
			WithDetail("field", "unit")
	}
	if u.Name == "" {
		u.Name = u.Unit
	}
	return nil
}
