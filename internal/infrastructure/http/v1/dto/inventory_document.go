package dto

import (
	"loomline/internal/core/apperror"
	"loomline/internal/core/id"
	"loomline/internal/core/types"
	"loomline/internal/domain/documents/inventory_document"
)

// --- Request DTOs ---

// InventoryDocumentItemRequest is one line in an inventory document request.
type InventoryDocumentItemRequest struct {
	ProductID string         `json:"productId" binding:"required"`
	UomID     string         `json:"uomId" binding:"required"`
	Quantity  types.Quantity `json:"quantity"`
	Remark    string         `json:"remark"`
}

func (r *InventoryDocumentItemRequest) appendTo(doc *inventory_document.InventoryDocument, line int) error {
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return apperror.NewValidation("invalid productId").
			WithDetail("field", "productId").
			WithDetail("line", line)
	}
	uomID, err := id.Parse(r.UomID)
	if err != nil {
		return apperror.NewValidation("invalid uomId").
			WithDetail("field", "uomId").
			WithDetail("line", line)
	}
	doc.AddItem(productID, uomID, r.Quantity, r.Remark)
	return nil
}

// CreateInventoryDocumentRequest is the request body for creating an
// inventory document.
type CreateInventoryDocumentRequest struct {
	Code          string                         `json:"code"`
	Comment       string                         `json:"comment"`
	ReferenceNo   string                         `json:"referenceNo"`
	ReferenceType string                         `json:"referenceType"`
	Type          string                         `json:"type"`
	StorageID     string                         `json:"storageId" binding:"required"`
	Items         []InventoryDocumentItemRequest `json:"items"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateInventoryDocumentRequest) ToEntity() (*inventory_document.InventoryDocument, error) {
	storageID, err := id.Parse(r.StorageID)
	if err != nil {
		return nil, apperror.NewValidation("invalid storageId").
			WithDetail("field", "storageId")
	}

	doc := inventory_document.NewInventoryDocument(
		inventory_document.DocumentType(r.Type), storageID)
	doc.Code = r.Code
	doc.Comment = r.Comment
	doc.ReferenceNo = r.ReferenceNo
	doc.ReferenceType = r.ReferenceType

	for i, item := range r.Items {
		if err := item.appendTo(doc, i+1); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// UpdateInventoryDocumentRequest is the request body for updating an
// inventory document.
type UpdateInventoryDocumentRequest struct {
	Code          string                         `json:"code"`
	Comment       string                         `json:"comment"`
	ReferenceNo   string                         `json:"referenceNo"`
	ReferenceType string                         `json:"referenceType"`
	Type          string                         `json:"type"`
	StorageID     string                         `json:"storageId" binding:"required"`
	Items         []InventoryDocumentItemRequest `json:"items"`
	Version       int                            `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateInventoryDocumentRequest) ApplyTo(doc *inventory_document.InventoryDocument) error {
	storageID, err := id.Parse(r.StorageID)
	if err != nil {
		return apperror.NewValidation("invalid storageId").
			WithDetail("field", "storageId")
	}

	doc.Code = r.Code
	doc.Comment = r.Comment
	doc.ReferenceNo = r.ReferenceNo
	doc.ReferenceType = r.ReferenceType
	doc.Type = inventory_document.DocumentType(r.Type)
	doc.StorageID = storageID
	doc.Version = r.Version

	doc.Items = doc.Items[:0]
	for i, item := range r.Items {
		if err := item.appendTo(doc, i+1); err != nil {
			return err
		}
	}

	return nil
}

// --- Response DTOs ---

// InventoryDocumentItemResponse is one line in an inventory document response.
type InventoryDocumentItemResponse struct {
	LineID      string         `json:"lineId"`
	LineNo      int            `json:"lineNo"`
	ProductID   string         `json:"productId"`
	ProductCode string         `json:"productCode"`
	ProductName string         `json:"productName"`
	UomID       string         `json:"uomId"`
	Uom         string         `json:"uom"`
	Quantity    types.Quantity `json:"quantity"`
	Remark      string         `json:"remark,omitempty"`
}

// InventoryDocumentResponse is the response body for an inventory document.
type InventoryDocumentResponse struct {
	DocumentResponse
	ReferenceNo   string                          `json:"referenceNo"`
	ReferenceType string                          `json:"referenceType"`
	Type          string                          `json:"type"`
	StorageID     string                          `json:"storageId"`
	StorageName   string                          `json:"storageName"`
	StorageCode   string                          `json:"storageCode"`
	Items         []InventoryDocumentItemResponse `json:"items"`
}

// FromInventoryDocument creates response DTO from domain entity.
func FromInventoryDocument(doc *inventory_document.InventoryDocument) *InventoryDocumentResponse {
	items := make([]InventoryDocumentItemResponse, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, InventoryDocumentItemResponse{
			LineID:      item.LineID.String(),
			LineNo:      item.LineNo,
			ProductID:   item.ProductID.String(),
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			UomID:       item.UomID.String(),
			Uom:         item.Uom,
			Quantity:    item.Quantity,
			Remark:      item.Remark,
		})
	}

	return &InventoryDocumentResponse{
		DocumentResponse: FromDocument(doc.Document),
		ReferenceNo:      doc.ReferenceNo,
		ReferenceType:    doc.ReferenceType,
		Type:             string(doc.Type),
		StorageID:        doc.StorageID.String(),
		StorageName:      doc.StorageName,
		StorageCode:      doc.StorageCode,
		Items:            items,
	}
}
