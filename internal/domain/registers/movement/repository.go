// Package movement provides the inventory movement register.
package movement

import (
	"context"
	"time"

	"loomline/internal/core/entity"
	"loomline/internal/core/id"
)

// Repository defines operations for the movement register.
// The register is append-only: lines are inserted once and never
// updated or deleted by this core.
type Repository interface {
	// Create inserts a single movement line.
	Create(ctx context.Context, m entity.InventoryMovement) error

	// GetByRecorder retrieves all movements recorded by a document.
	GetByRecorder(ctx context.Context, recorderID id.ID) ([]entity.InventoryMovement, error)

	// List retrieves movements matching filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]entity.InventoryMovement, error)
}

// ListFilter narrows movement queries.
type ListFilter struct {
	StorageID *id.ID
	ProductID *id.ID
	Type      *string
	FromDate  *time.Time
	ToDate    *time.Time
	Limit     int
	Offset    int
}
