// Package buyer provides the Buyer catalog.
// Buyers are the garment customers referenced by booking orders.
package buyer

import (
	"context"
	"regexp"

	"loomline/internal/core/apperror"
	"loomline/internal/core/entity"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Buyer represents a garment buyer.
type Buyer struct {
	entity.Catalog

	// ContactPerson is the primary contact name
	ContactPerson *string `db:"contact_person" json:"contactPerson,omitempty"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Email is the primary contact email
	Email *string `db:"email" json:"email,omitempty"`

	// Address is the shipping/billing address
	Address *string `db:"address" json:"address,omitempty"`
}

// NewBuyer creates a Buyer with required fields.
func NewBuyer(code, name string) *Buyer {
	return &Buyer{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable.
func (b *Buyer) Validate(ctx context.Context) error {
	if err := b.Catalog.Validate(ctx); err != nil {
		return err
	}

	if b.Email != nil && *b.Email != "" && !emailRE.MatchString(*b.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}
