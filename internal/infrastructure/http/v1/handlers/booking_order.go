package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loomline/internal/core/apperror"
	"loomline/internal/core/id"
	"loomline/internal/domain/documents/booking_order"
	"loomline/internal/infrastructure/http/v1/dto"
)

// BookingOrderHandler serves booking order endpoints. The CRUD surface
// comes from the generic document handler; Cancel is specific to this
// document type.
type BookingOrderHandler struct {
	*DocumentHandler[*booking_order.BookingOrder, dto.CreateBookingOrderRequest, dto.UpdateBookingOrderRequest]
	service *booking_order.Service
}

// NewBookingOrderHandler wires the booking order handler.
func NewBookingOrderHandler(
	base *BaseHandler,
	service *booking_order.Service,
) *BookingOrderHandler {
	config := DocumentHandlerConfig[
		*booking_order.BookingOrder,
		dto.CreateBookingOrderRequest,
		dto.UpdateBookingOrderRequest,
	]{
		Service:    service.DocumentService,
		EntityName: "booking_order",

		MapCreateDTO: func(req dto.CreateBookingOrderRequest) (*booking_order.BookingOrder, error) {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateBookingOrderRequest, existing *booking_order.BookingOrder) (*booking_order.BookingOrder, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},

		MapToDTO: func(doc *booking_order.BookingOrder) any {
			return dto.FromBookingOrder(doc)
		},
	}

	return &BookingOrderHandler{
		DocumentHandler: NewDocumentHandler(base, config),
		service:         service,
	}
}

// Cancel handles POST /booking-orders/:id/cancel.
// Canceling an already canceled order succeeds without changes.
func (h *BookingOrderHandler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.Cancel(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBookingOrder(doc))
}
