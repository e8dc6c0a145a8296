// Package entity provides core domain entities.
package entity

import (
	"time"

	"loomline/internal/core/id"
	"loomline/internal/core/types"
)

// MovementBase contains common fields for all register movements.
// Movements are append-only: once written they are never updated.
type MovementBase struct {
	// LineID identifies this movement line (UUIDv7)
	LineID id.ID `db:"line_id" json:"lineId"`

	// RecorderID is the document that produced this movement
	RecorderID id.ID `db:"recorder_id" json:"recorderId"`

	// RecorderType is the document type (e.g. "InventoryDocument")
	RecorderType string `db:"recorder_type" json:"recorderType"`

	// CreatedAt is when the movement was recorded
	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	// CreatedBy is the actor whose commit produced the movement
	CreatedBy string `db:"created_by" json:"createdBy,omitempty"`
}

// NewMovementBase creates a movement base with a generated LineID.
func NewMovementBase(recorderID id.ID, recorderType, createdBy string) MovementBase {
	return MovementBase{
		LineID:       id.New(),
		RecorderID:   recorderID,
		RecorderType: recorderType,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    createdBy,
	}
}

// InventoryMovement is one ledger line in the inventory movement register.
// An inventory document emits exactly one movement per line item after a
// successful insert; the register carries a denormalized snapshot of the
// parent header so ledger queries never join back to the document.
type InventoryMovement struct {
	MovementBase

	// Header snapshot
	ReferenceNo   string `db:"reference_no" json:"referenceNo"`
	ReferenceType string `db:"reference_type" json:"referenceType"`
	Type          string `db:"type" json:"type"`
	StorageID     id.ID  `db:"storage_id" json:"storageId"`

	// Line payload
	ProductID id.ID          `db:"product_id" json:"productId"`
	UomID     id.ID          `db:"uom_id" json:"uomId"`
	Quantity  types.Quantity `db:"quantity" json:"quantity"`
	Remark    string         `db:"remark" json:"remark,omitempty"`
}
