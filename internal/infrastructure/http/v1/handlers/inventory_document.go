package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loomline/internal/domain/documents/inventory_document"
	"loomline/internal/infrastructure/http/v1/dto"
)

// InventoryDocumentHandler serves inventory document endpoints. The CRUD
// surface comes from the generic document handler; CreateIn is the
// dedicated goods-receipt entry point.
type InventoryDocumentHandler struct {
	*DocumentHandler[*inventory_document.InventoryDocument, dto.CreateInventoryDocumentRequest, dto.UpdateInventoryDocumentRequest]
	service *inventory_document.Service
}

// NewInventoryDocumentHandler wires the inventory document handler.
func NewInventoryDocumentHandler(
	base *BaseHandler,
	service *inventory_document.Service,
) *InventoryDocumentHandler {
	config := DocumentHandlerConfig[
		*inventory_document.InventoryDocument,
		dto.CreateInventoryDocumentRequest,
		dto.UpdateInventoryDocumentRequest,
	]{
		Service:    service.DocumentService,
		EntityName: "inventory_document",

		MapCreateDTO: func(req dto.CreateInventoryDocumentRequest) (*inventory_document.InventoryDocument, error) {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateInventoryDocumentRequest, existing *inventory_document.InventoryDocument) (*inventory_document.InventoryDocument, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},

		MapToDTO: func(doc *inventory_document.InventoryDocument) any {
			return dto.FromInventoryDocument(doc)
		},
	}

	return &InventoryDocumentHandler{
		DocumentHandler: NewDocumentHandler(base, config),
		service:         service,
	}
}

// CreateIn handles POST /inventory-documents/in.
// The document type is forced to IN regardless of the request body.
func (h *InventoryDocumentHandler) CreateIn(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateInventoryDocumentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	created, err := h.service.CreateIn(ctx, doc)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromInventoryDocument(created))
}
