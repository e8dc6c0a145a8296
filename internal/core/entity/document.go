package entity

import (
	"context"

	"loomline/internal/core/apperror"
	"loomline/internal/core/id"
)

// Document is the base type for business documents.
// Examples: BookingOrder, InventoryDocument.
type Document struct {
	BaseDocument

	// Code is the business identifier (auto-generated when empty)
	Code string `db:"code" json:"code"`

	// Comment is an optional user comment
	Comment string `db:"comment" json:"comment,omitempty"`
}

// NewDocument creates a Document with a generated ID.
func NewDocument() Document {
	return Document{
		BaseDocument: NewBaseDocument(),
	}
}

// Validate implements the Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}
	return nil
}

// --- accessors used by the generic document service ---

// GetID returns the document ID.
func (d *Document) GetID() id.ID {
	return d.ID
}

// GetCode returns the business code.
func (d *Document) GetCode() string {
	return d.Code
}

// SetCode sets the business code.
func (d *Document) SetCode(code string) {
	d.Code = code
}

// IsDeleted reports whether the document carries the deletion mark.
func (d *Document) IsDeleted() bool {
	return d.DeletionMark
}

// Audit returns the embedded audit fields for stamping.
func (d *Document) Audit() *BaseDocument {
	return &d.BaseDocument
}
