// Package inventory_document provides the InventoryDocument repository contract.
package inventory_document

import (
	"context"

	"loomline/internal/core/id"
	"loomline/internal/domain"
)

// Repository defines persistence operations for inventory documents.
type Repository interface {
	domain.DocumentRepository[*InventoryDocument]

	// HasDuplicateCode reports whether any other row carries code.
	// Unlike booking orders, soft-deleted rows count: the code column
	// is backed by a unique index, so a deleted document still blocks
	// its code from reuse.
	HasDuplicateCode(ctx context.Context, code string, excludeID id.ID) (bool, error)

	// FindByID returns the stored document or nil when absent.
	FindByID(ctx context.Context, docID id.ID) (*InventoryDocument, error)
}
