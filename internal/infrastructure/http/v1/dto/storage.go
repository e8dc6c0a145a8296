package dto

import (
	"loomline/internal/domain/catalogs/storage"
)

// --- Request DTOs ---

// CreateStorageRequest is the request body for creating a storage.
type CreateStorageRequest struct {
	Code     string  `json:"code"`
	Name     string  `json:"name" binding:"required"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"isActive"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateStorageRequest) ToEntity() *storage.Storage {
	s := storage.NewStorage(r.Code, r.Name)
	s.Address = r.Address
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
	return s
}

// UpdateStorageRequest is the request body for updating a storage.
type UpdateStorageRequest struct {
	Code     string  `json:"code"`
	Name     string  `json:"name" binding:"required"`
	Address  *string `json:"address"`
	IsActive bool    `json:"isActive"`
	Version  int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateStorageRequest) ApplyTo(s *storage.Storage) {
	s.Code = r.Code
	s.Name = r.Name
	s.Address = r.Address
	s.IsActive = r.IsActive
	s.Version = r.Version
}

// --- Response DTOs ---

// StorageResponse is the response body for a storage.
type StorageResponse struct {
	CatalogResponse
	Address  *string `json:"address,omitempty"`
	IsActive bool    `json:"isActive"`
}

// FromStorage creates response DTO from domain entity.
func FromStorage(s *storage.Storage) *StorageResponse {
	return &StorageResponse{
		CatalogResponse: FromCatalog(s.Catalog),
		Address:         s.Address,
		IsActive:        s.IsActive,
	}
}
