package dto

import (
	"loomline/internal/domain/catalogs/uom"
)

// --- Request DTOs ---

// CreateUomRequest is the request body for creating a unit of measure.
type CreateUomRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Unit string `json:"unit" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateUomRequest) ToEntity() *uom.Uom {
	u := uom.NewUom(r.Code, r.Unit)
	if r.Name != "" {
		u.Name = r.Name
	}
	return u
}

// UpdateUomRequest is the request body for updating a unit of measure.
type UpdateUomRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Unit    string `json:"unit" binding:"required"`
	Version int    `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateUomRequest) ApplyTo(u *uom.Uom) {
	u.Code = r.Code
	u.Unit = r.Unit
	u.Name = r.Name
	if u.Name == "" {
		u.Name = r.Unit
	}
	u.Version = r.Version
}

// --- Response DTOs ---

// UomResponse is the response body for a unit of measure.
type UomResponse struct {
	CatalogResponse
	Unit string `json:"unit"`
}

// FromUom creates response DTO from domain entity.
func FromUom(u *uom.Uom) *UomResponse {
	return &UomResponse{
		CatalogResponse: FromCatalog(u.Catalog),
		Unit:            u.Unit,
	}
}
