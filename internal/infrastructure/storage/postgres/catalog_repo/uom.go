package catalog_repo

import (
	"loomline/internal/domain/catalogs/uom"
	"loomline/internal/infrastructure/storage/postgres"
)

const uomTable = "cat_uoms"

// UomRepo implements uom.Repository.
type UomRepo struct {
	*BaseCatalogRepo[*uom.Uom]
}

var _ uom.Repository = (*UomRepo)(nil)

// NewUomRepo creates a new unit of measure repository.
func NewUomRepo(txManager *postgres.TxManager) *UomRepo {
	return &UomRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*uom.Uom](
			txManager,
			uomTable,
			postgres.ExtractDBColumns[uom.Uom](),
			func() *uom.Uom { return &uom.Uom{} },
		),
	}
}
