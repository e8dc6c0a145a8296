package catalog_repo

import (
	"loomline/internal/domain/catalogs/comodity"
	"loomline/internal/infrastructure/storage/postgres"
)

const comodityTable = "cat_comodities"

// ComodityRepo implements comodity.Repository.
type ComodityRepo struct {
	*BaseCatalogRepo[*comodity.Comodity]
}

var _ comodity.Repository = (*ComodityRepo)(nil)

// NewComodityRepo creates a new comodity repository.
func NewComodityRepo(txManager *postgres.TxManager) *ComodityRepo {
	return &ComodityRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*comodity.Comodity](
			txManager,
			comodityTable,
			postgres.ExtractDBColumns[comodity.Comodity](),
			func() *comodity.Comodity { return &comodity.Comodity{} },
		),
	}
}
