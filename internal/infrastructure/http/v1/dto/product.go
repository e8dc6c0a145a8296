package dto

import (
	"loomline/internal/core/apperror"
	"loomline/internal/core/id"
	"loomline/internal/core/types"
	"loomline/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code         string       `json:"code"`
	Name         string       `json:"name" binding:"required"`
	DefaultUomID *string      `json:"defaultUomId"`
	DefaultPrice *types.Money `json:"defaultPrice"`
	Description  *string      `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() (*product.Product, error) {
	p := product.NewProduct(r.Code, r.Name)
	if r.DefaultUomID != nil && *r.DefaultUomID != "" {
		uomID, err := id.Parse(*r.DefaultUomID)
		if err != nil {
			return nil, apperror.NewValidation("invalid defaultUomId").
				WithDetail("field", "defaultUomId")
		}
		p.DefaultUomID = &uomID
	}
	if r.DefaultPrice != nil {
		p.DefaultPrice = *r.DefaultPrice
	}
	p.Description = r.Description
	return p, nil
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code         string       `json:"code"`
	Name         string       `json:"name" binding:"required"`
	DefaultUomID *string      `json:"defaultUomId"`
	DefaultPrice *types.Money `json:"defaultPrice"`
	Description  *string      `json:"description"`
	Version      int          `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) error {
	p.Code = r.Code
	p.Name = r.Name
	p.DefaultUomID = nil
	if r.DefaultUomID != nil && *r.DefaultUomID != "" {
		uomID, err := id.Parse(*r.DefaultUomID)
		if err != nil {
			return apperror.NewValidation("invalid defaultUomId").
				WithDetail("field", "defaultUomId")
		}
		p.DefaultUomID = &uomID
	}
	if r.DefaultPrice != nil {
		p.DefaultPrice = *r.DefaultPrice
	}
	p.Description = r.Description
	p.Version = r.Version
	return nil
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	CatalogResponse
	DefaultUomID *string     `json:"defaultUomId,omitempty"`
	DefaultPrice types.Money `json:"defaultPrice"`
	Description  *string     `json:"description,omitempty"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	resp := &ProductResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		DefaultPrice:    p.DefaultPrice,
		Description:     p.Description,
	}
	if p.DefaultUomID != nil {
		s := p.DefaultUomID.String()
		resp.DefaultUomID = &s
	}
	return resp
}
