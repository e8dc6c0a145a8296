package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"loomline/internal/core/apperror"
	"loomline/internal/domain/catalogs/buyer"
	"loomline/internal/infrastructure/storage/postgres"
)

const buyerTable = "cat_buyers"

// BuyerRepo implements buyer.Repository.
type BuyerRepo struct {
	*BaseCatalogRepo[*buyer.Buyer]
}

var _ buyer.Repository = (*BuyerRepo)(nil)

// NewBuyerRepo creates a new buyer repository.
func NewBuyerRepo(txManager *postgres.TxManager) *BuyerRepo {
	return &BuyerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*buyer.Buyer](
			txManager,
			buyerTable,
			postgres.ExtractDBColumns[buyer.Buyer](),
			func() *buyer.Buyer { return &buyer.Buyer{} },
		),
	}
}

// FindByEmail retrieves buyer by email.
func (r *BuyerRepo) FindByEmail(ctx context.Context, email string) (*buyer.Buyer, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"email": email}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	b, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("buyer", email)
		}
		return nil, err
	}
	return b, nil
}
