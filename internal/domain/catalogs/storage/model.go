// Package storage provides the Storage catalog.
// A storage is a physical location (warehouse, floor stock) referenced
// by inventory documents and their movements.
package storage

import (
	"context"

	"loomline/internal/core/entity"
)

// Storage represents a storage location.
type Storage struct {
	entity.Catalog

	// Address is the physical address
	Address *string `db:"address" json:"address,omitempty"`

	// IsActive gates whether new documents may reference this storage
	IsActive bool `db:"is_active" json:"isActive"`
}

// NewStorage creates a Storage with required fields.
func NewStorage(code, name string) *Storage {
	return &Storage{
		Catalog:  entity.NewCatalog(code, name),
		IsActive: true,
	}
}

// Validate implements entity.Validatable.
func (s *Storage) Validate(ctx context.Context) error {
	return s.Catalog.Validate(ctx)
}
