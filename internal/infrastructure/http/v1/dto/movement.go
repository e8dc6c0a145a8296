package dto

import (
	"time"

	"loomline/internal/core/entity"
	"loomline/internal/core/types"
)

// --- Response DTOs ---

// MovementResponse is one line of the inventory movement register.
type MovementResponse struct {
	LineID        string         `json:"lineId"`
	RecorderID    string         `json:"recorderId"`
	RecorderType  string         `json:"recorderType"`
	ReferenceNo   string         `json:"referenceNo"`
	ReferenceType string         `json:"referenceType"`
	Type          string         `json:"type"`
	StorageID     string         `json:"storageId"`
	ProductID     string         `json:"productId"`
	UomID         string         `json:"uomId"`
	Quantity      types.Quantity `json:"quantity"`
	Remark        string         `json:"remark,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	CreatedBy     string         `json:"createdBy,omitempty"`
}

// FromMovement creates response DTO from a register line.
func FromMovement(m entity.InventoryMovement) MovementResponse {
	return MovementResponse{
		LineID:        m.LineID.String(),
		RecorderID:    m.RecorderID.String(),
		RecorderType:  m.RecorderType,
		ReferenceNo:   m.ReferenceNo,
		ReferenceType: m.ReferenceType,
		Type:          m.Type,
		StorageID:     m.StorageID.String(),
		ProductID:     m.ProductID.String(),
		UomID:         m.UomID.String(),
		Quantity:      m.Quantity,
		Remark:        m.Remark,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// FromMovements maps a slice of register lines.
func FromMovements(movements []entity.InventoryMovement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, FromMovement(m))
	}
	return out
}
