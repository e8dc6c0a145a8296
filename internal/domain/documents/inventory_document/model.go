// Package inventory_document provides the InventoryDocument document.
// An inventory document records goods entering or leaving a storage and
// is the sole recorder of the inventory movement register.
package inventory_document

import (
	"loomline/internal/core/entity"
	"loomline/internal/core/id"
	"loomline/internal/core/types"
)

// DocumentType enumerates the supported movement directions.
type DocumentType string

const (
	TypeIn     DocumentType = "IN"
	TypeOut    DocumentType = "OUT"
	TypeRetIn  DocumentType = "RET-IN"
	TypeRetOut DocumentType = "RET-OUT"
	TypeAdj    DocumentType = "ADJ"
)

// IsValidType reports whether t is one of the supported document types.
func IsValidType(t DocumentType) bool {
	switch t {
	case TypeIn, TypeOut, TypeRetIn, TypeRetOut, TypeAdj:
		return true
	}
	return false
}

// InventoryDocument represents an inventory document.
type InventoryDocument struct {
	entity.Document

	// ReferenceNo/ReferenceType point at the external paper that
	// triggered the movement (packing list, delivery order, ...)
	ReferenceNo   string `db:"reference_no" json:"referenceNo"`
	ReferenceType string `db:"reference_type" json:"referenceType"`

	Type DocumentType `db:"type" json:"type"`

	// Storage reference with denormalized display fields
	StorageID   id.ID  `db:"storage_id" json:"storageId"`
	StorageName string `db:"storage_name" json:"storageName"`
	StorageCode string `db:"storage_code" json:"storageCode"`

	// Table part
	Items []InventoryDocumentItem `db:"-" json:"items"`
}

// InventoryDocumentItem is one line of an inventory document.
type InventoryDocumentItem struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID   id.ID  `db:"product_id" json:"productId"`
	ProductCode string `db:"product_code" json:"productCode"`
	ProductName string `db:"product_name" json:"productName"`

	UomID id.ID  `db:"uom_id" json:"uomId"`
	Uom   string `db:"uom" json:"uom"`

	// Quantity must be nonzero; negative values are legitimate
	// corrections
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	Remark string `db:"remark" json:"remark,omitempty"`
}

// NewInventoryDocument creates an inventory document.
func NewInventoryDocument(docType DocumentType, storageID id.ID) *InventoryDocument {
	return &InventoryDocument{
		Document:  entity.NewDocument(),
		Type:      docType,
		StorageID: storageID,
		Items:     make([]InventoryDocumentItem, 0),
	}
}

// AddItem appends a line and keeps line numbers sequential.
func (d *InventoryDocument) AddItem(productID, uomID id.ID, quantity types.Quantity, remark string) {
	d.Items = append(d.Items, InventoryDocumentItem{
		LineID:    id.New(),
		LineNo:    len(d.Items) + 1,
		ProductID: productID,
		UomID:     uomID,
		Quantity:  quantity,
		Remark:    remark,
	})
}

// Clone returns a deep copy for the validation pipeline.
func (d *InventoryDocument) Clone() *InventoryDocument {
	out := *d
	out.Items = make([]InventoryDocumentItem, len(d.Items))
	copy(out.Items, d.Items)
	return &out
}

// Movements builds one register movement per line item.
func (d *InventoryDocument) Movements(createdBy string) []entity.InventoryMovement {
	movements := make([]entity.InventoryMovement, 0, len(d.Items))
	for _, item := range d.Items {
		movements = append(movements, entity.InventoryMovement{
			MovementBase:  entity.NewMovementBase(d.ID, "InventoryDocument", createdBy),
			ReferenceNo:   d.ReferenceNo,
			ReferenceType: d.ReferenceType,
			Type:          string(d.Type),
			StorageID:     d.StorageID,
			ProductID:     item.ProductID,
			UomID:         item.UomID,
			Quantity:      item.Quantity,
			Remark:        item.Remark,
		})
	}
	return movements
}
