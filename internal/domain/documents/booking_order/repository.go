// Package booking_order provides the BookingOrder document repository contract.
package booking_order

import (
	"context"

	"loomline/internal/core/id"
	"loomline/internal/domain"
)

// Repository defines persistence operations for booking orders.
type Repository interface {
	domain.DocumentRepository[*BookingOrder]

	// HasDuplicateCode reports whether another live (deletion_mark =
	// false) booking order already carries code. excludeID keeps the
	// document from matching itself on update.
	HasDuplicateCode(ctx context.Context, code string, excludeID id.ID) (bool, error)

	// FindByID returns the stored document or nil when absent.
	// Unlike GetByID it does not translate absence into an error.
	FindByID(ctx context.Context, docID id.ID) (*BookingOrder, error)
}
