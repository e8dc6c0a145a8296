package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"loomline/internal/core/apperror"
	"loomline/internal/core/id"
	"loomline/internal/domain/registers/movement"
	"loomline/internal/infrastructure/http/v1/dto"
)

// MovementHandler serves the inventory movement register. The register
// is read-only over HTTP: lines are written only by the document
// commit cascade.
type MovementHandler struct {
	*BaseHandler
	service *movement.Service
}

// NewMovementHandler wires the movement register handler.
func NewMovementHandler(base *BaseHandler, service *movement.Service) *MovementHandler {
	return &MovementHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /movements - filtered register query, newest first.
func (h *MovementHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := movement.ListFilter{
		Limit:  h.ParseIntQuery(c, "limit", 50),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	if s := c.Query("storageId"); s != "" {
		storageID, err := id.Parse(s)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid storageId format"))
			return
		}
		filter.StorageID = &storageID
	}

	if s := c.Query("productId"); s != "" {
		productID, err := id.Parse(s)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid productId format"))
			return
		}
		filter.ProductID = &productID
	}

	if s := c.Query("type"); s != "" {
		filter.Type = &s
	}

	if s := c.Query("fromDate"); s != "" {
		from, err := time.Parse(time.RFC3339, s)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid fromDate format (RFC3339 expected)"))
			return
		}
		filter.FromDate = &from
	}

	if s := c.Query("toDate"); s != "" {
		to, err := time.Parse(time.RFC3339, s)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid toDate format (RFC3339 expected)"))
			return
		}
		filter.ToDate = &to
	}

	movements, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      dto.FromMovements(movements),
		TotalCount: int64(len(movements)),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// GetByRecorder handles GET /movements/by-recorder/:id - all lines
// produced by one document.
func (h *MovementHandler) GetByRecorder(c *gin.Context) {
	ctx := c.Request.Context()

	recorderID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	movements, err := h.service.GetByRecorder(ctx, recorderID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromMovements(movements)})
}
