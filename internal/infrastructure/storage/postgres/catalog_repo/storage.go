package catalog_repo

import (
	"loomline/internal/domain/catalogs/storage"
	"loomline/internal/infrastructure/storage/postgres"
)

const storageTable = "cat_storages"

// StorageRepo implements storage.Repository.
type StorageRepo struct {
	*BaseCatalogRepo[*storage.Storage]
}

var _ storage.Repository = (*StorageRepo)(nil)

// NewStorageRepo creates a new storage repository.
func NewStorageRepo(txManager *postgres.TxManager) *StorageRepo {
	return &StorageRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*storage.Storage](
			txManager,
			storageTable,
			postgres.ExtractDBColumns[storage.Storage](),
			func() *storage.Storage { return &storage.Storage{} },
		),
	}
}
