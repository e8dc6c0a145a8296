package dto

import (
	"loomline/internal/domain/catalogs/comodity"
)

// --- Request DTOs ---

// CreateComodityRequest is the request body for creating a comodity.
type CreateComodityRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateComodityRequest) ToEntity() *comodity.Comodity {
	c := comodity.NewComodity(r.Code, r.Name)
	c.Description = r.Description
	return c
}

// UpdateComodityRequest is the request body for updating a comodity.
type UpdateComodityRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Version     int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateComodityRequest) ApplyTo(c *comodity.Comodity) {
	c.Code = r.Code
	c.Name = r.Name
	c.Description = r.Description
	c.Version = r.Version
}

// --- Response DTOs ---

// ComodityResponse is the response body for a comodity.
type ComodityResponse struct {
	CatalogResponse
	Description *string `json:"description,omitempty"`
}

// FromComodity creates response DTO from domain entity.
func FromComodity(c *comodity.Comodity) *ComodityResponse {
	return &ComodityResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Description:     c.Description,
	}
}
