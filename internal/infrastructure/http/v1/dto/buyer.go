package dto

import (
	"loomline/internal/domain/catalogs/buyer"
)

// --- Request DTOs ---

// CreateBuyerRequest is the request body for creating a buyer.
type CreateBuyerRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	ContactPerson *string `json:"contactPerson"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateBuyerRequest) ToEntity() *buyer.Buyer {
	b := buyer.NewBuyer(r.Code, r.Name)
	b.ContactPerson = r.ContactPerson
	b.Phone = r.Phone
	b.Email = r.Email
	b.Address = r.Address
	return b
}

// UpdateBuyerRequest is the request body for updating a buyer.
type UpdateBuyerRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	ContactPerson *string `json:"contactPerson"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	Version       int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateBuyerRequest) ApplyTo(b *buyer.Buyer) {
	b.Code = r.Code
	b.Name = r.Name
	b.ContactPerson = r.ContactPerson
	b.Phone = r.Phone
	b.Email = r.Email
	b.Address = r.Address
	b.Version = r.Version
}

// --- Response DTOs ---

// BuyerResponse is the response body for a buyer.
type BuyerResponse struct {
	CatalogResponse
	ContactPerson *string `json:"contactPerson,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
}

// FromBuyer creates response DTO from domain entity.
func FromBuyer(b *buyer.Buyer) *BuyerResponse {
	return &BuyerResponse{
		CatalogResponse: FromCatalog(b.Catalog),
		ContactPerson:   b.ContactPerson,
		Phone:           b.Phone,
		Email:           b.Email,
		Address:         b.Address,
	}
}
