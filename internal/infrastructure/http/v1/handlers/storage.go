package handlers

import (
	"loomline/internal/domain/catalogs/storage"
	"loomline/internal/infrastructure/http/v1/dto"
)

// StorageHTTPHandler keeps the generic signature out of the router.
type StorageHTTPHandler = CatalogHandler[
	*storage.Storage,
	dto.CreateStorageRequest,
	dto.UpdateStorageRequest,
]

// NewStorageHandler wires the generic catalog handler for storages.
func NewStorageHandler(
	base *BaseHandler,
	service *storage.Service,
) *StorageHTTPHandler {
	config := CatalogHandlerConfig[
		*storage.Storage,
		dto.CreateStorageRequest,
		dto.UpdateStorageRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "storage",

		MapCreateDTO: func(req dto.CreateStorageRequest) (*storage.Storage, error) {
			return req.ToEntity(), nil
		},

		MapUpdateDTO: func(req dto.UpdateStorageRequest, existing *storage.Storage) (*storage.Storage, error) {
			req.ApplyTo(existing)
			return existing, nil
		},

		MapToDTO: func(entity *storage.Storage) any {
			return dto.FromStorage(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
