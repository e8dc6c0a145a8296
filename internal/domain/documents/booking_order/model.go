// Package booking_order provides the BookingOrder document.
// A booking order records a buyer's commitment to a set of garment
// styles (comodities) with a total order quantity.
package booking_order

import (
	"time"

	"loomline/internal/core/entity"
	"loomline/internal/core/id"
	"loomline/internal/core/types"
)

// BookingOrder represents a booking order document.
type BookingOrder struct {
	entity.Document

	// Lifecycle flags
	IsActive   bool `db:"is_active" json:"isActive"`
	IsCanceled bool `db:"is_canceled" json:"isCanceled"`

	// Business dates; nil means the client did not send one
	BookingDate  *time.Time `db:"booking_date" json:"bookingDate"`
	DeliveryDate *time.Time `db:"delivery_date" json:"deliveryDate"`

	// Buyer reference with denormalized display fields
	BuyerID   id.ID  `db:"buyer_id" json:"buyerId"`
	BuyerName string `db:"buyer_name" json:"buyerName"`
	BuyerCode string `db:"buyer_code" json:"buyerCode"`

	// OrderQuantity is the total quantity booked across all items
	OrderQuantity types.Quantity `db:"order_quantity" json:"orderQuantity"`

	// Table part
	Items []BookingOrderItem `db:"-" json:"items"`
}

// BookingOrderItem is one line of a booking order.
type BookingOrderItem struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ComodityID   id.ID  `db:"comodity_id" json:"comodityId"`
	ComodityName string `db:"comodity_name" json:"comodityName"`
	ComodityCode string `db:"comodity_code" json:"comodityCode"`

	Quantity types.Quantity `db:"quantity" json:"quantity"`
}

// NewBookingOrder creates a booking order document.
func NewBookingOrder(buyerID id.ID) *BookingOrder {
	return &BookingOrder{
		Document: entity.NewDocument(),
		IsActive: true,
		BuyerID:  buyerID,
		Items:    make([]BookingOrderItem, 0),
	}
}

// AddItem appends a line and keeps line numbers sequential.
func (b *BookingOrder) AddItem(comodityID id.ID, quantity types.Quantity) {
	b.Items = append(b.Items, BookingOrderItem{
		LineID:     id.New(),
		LineNo:     len(b.Items) + 1,
		ComodityID: comodityID,
		Quantity:   quantity,
	})
}

// ItemsTotal sums the line quantities.
func (b *BookingOrder) ItemsTotal() types.Quantity {
	var total types.Quantity
	for _, item := range b.Items {
		total = total.Add(item.Quantity)
	}
	return total
}

// Clone returns a deep copy. The validation pipeline works on the copy
// so the caller's document is never mutated.
func (b *BookingOrder) Clone() *BookingOrder {
	out := *b
	if b.BookingDate != nil {
		d := *b.BookingDate
		out.BookingDate = &d
	}
	if b.DeliveryDate != nil {
		d := *b.DeliveryDate
		out.DeliveryDate = &d
	}
	out.Items = make([]BookingOrderItem, len(b.Items))
	copy(out.Items, b.Items)
	return &out
}
