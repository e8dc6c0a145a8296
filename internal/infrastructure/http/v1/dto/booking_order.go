package dto

import (
	"time"

	"loomline/internal/core/apperror"
	"loomline/internal/core/id"
	"loomline/internal/core/types"
	"loomline/internal/domain/documents/booking_order"
)

// --- Request DTOs ---

// BookingOrderItemRequest is one line in a booking order request.
type BookingOrderItemRequest struct {
	ComodityID string         `json:"comodityId" binding:"required"`
	Quantity   types.Quantity `json:"quantity"`
}

// CreateBookingOrderRequest is the request body for creating a booking order.
type CreateBookingOrderRequest struct {
	Code          string                    `json:"code"`
	Comment       string                    `json:"comment"`
	BookingDate   *time.Time                `json:"bookingDate"`
	DeliveryDate  *time.Time                `json:"deliveryDate"`
	BuyerID       string                    `json:"buyerId" binding:"required"`
	OrderQuantity types.Quantity            `json:"orderQuantity"`
	Items         []BookingOrderItemRequest `json:"items"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateBookingOrderRequest) ToEntity() (*booking_order.BookingOrder, error) {
	buyerID, err := id.Parse(r.BuyerID)
	if err != nil {
		return nil, apperror.NewValidation("invalid buyerId").
			WithDetail("field", "buyerId")
	}

	doc := booking_order.NewBookingOrder(buyerID)
	doc.Code = r.Code
	doc.Comment = r.Comment
	doc.BookingDate = r.BookingDate
	doc.DeliveryDate = r.DeliveryDate
	doc.OrderQuantity = r.OrderQuantity

	for i, item := range r.Items {
		comodityID, err := id.Parse(item.ComodityID)
		if err != nil {
			return nil, apperror.NewValidation("invalid comodityId").
				WithDetail("field", "comodityId").
				WithDetail("line", i+1)
		}
		doc.AddItem(comodityID, item.Quantity)
	}

	return doc, nil
}

// UpdateBookingOrderRequest is the request body for updating a booking order.
type UpdateBookingOrderRequest struct {
	Code          string                    `json:"code"`
	Comment       string                    `json:"comment"`
	BookingDate   *time.Time                `json:"bookingDate"`
	DeliveryDate  *time.Time                `json:"deliveryDate"`
	BuyerID       string                    `json:"buyerId" binding:"required"`
	OrderQuantity types.Quantity            `json:"orderQuantity"`
	Items         []BookingOrderItemRequest `json:"items"`
	Version       int                       `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateBookingOrderRequest) ApplyTo(doc *booking_order.BookingOrder) error {
	buyerID, err := id.Parse(r.BuyerID)
	if err != nil {
		return apperror.NewValidation("invalid buyerId").
			WithDetail("field", "buyerId")
	}

	doc.Code = r.Code
	doc.Comment = r.Comment
	doc.BookingDate = r.BookingDate
	doc.DeliveryDate = r.DeliveryDate
	doc.BuyerID = buyerID
	doc.OrderQuantity = r.OrderQuantity
	doc.Version = r.Version

	doc.Items = doc.Items[:0]
	for i, item := range r.Items {
		comodityID, err := id.Parse(item.ComodityID)
		if err != nil {
			return apperror.NewValidation("invalid comodityId").
				WithDetail("field", "comodityId").
				WithDetail("line", i+1)
		}
		doc.AddItem(comodityID, item.Quantity)
	}

	return nil
}

// --- Response DTOs ---

// BookingOrderItemResponse is one line in a booking order response.
type BookingOrderItemResponse struct {
	LineID       string         `json:"lineId"`
	LineNo       int            `json:"lineNo"`
	ComodityID   string         `json:"comodityId"`
	ComodityName string         `json:"comodityName"`
	ComodityCode string         `json:"comodityCode"`
	Quantity     types.Quantity `json:"quantity"`
}

// BookingOrderResponse is the response body for a booking order.
type BookingOrderResponse struct {
	DocumentResponse
	IsActive      bool                       `json:"isActive"`
	IsCanceled    bool                       `json:"isCanceled"`
	BookingDate   *time.Time                 `json:"bookingDate,omitempty"`
	DeliveryDate  *time.Time                 `json:"deliveryDate,omitempty"`
	BuyerID       string                     `json:"buyerId"`
	BuyerName     string                     `json:"buyerName"`
	BuyerCode     string                     `json:"buyerCode"`
	OrderQuantity types.Quantity             `json:"orderQuantity"`
	Items         []BookingOrderItemResponse `json:"items"`
}

// FromBookingOrder creates response DTO from domain entity.
func FromBookingOrder(doc *booking_order.BookingOrder) *BookingOrderResponse {
	items := make([]BookingOrderItemResponse, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, BookingOrderItemResponse{
			LineID:       item.LineID.String(),
			LineNo:       item.LineNo,
			ComodityID:   item.ComodityID.String(),
			ComodityName: item.ComodityName,
			ComodityCode: item.ComodityCode,
			Quantity:     item.Quantity,
		})
	}

	return &BookingOrderResponse{
		DocumentResponse: FromDocument(doc.Document),
		IsActive:         doc.IsActive,
		IsCanceled:       doc.IsCanceled,
		BookingDate:      doc.BookingDate,
		DeliveryDate:     doc.DeliveryDate,
		BuyerID:          doc.BuyerID.String(),
		BuyerName:        doc.BuyerName,
		BuyerCode:        doc.BuyerCode,
		OrderQuantity:    doc.OrderQuantity,
		Items:            items,
	}
}
