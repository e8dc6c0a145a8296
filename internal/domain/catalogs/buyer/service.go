package buyer

import (
	"context"

	"loomline/internal/core/apperror"
	"loomline/internal/core/tx"
	"loomline/internal/domain"
)

// Service provides business logic for the Buyer catalog.
type Service struct {
	*domain.CatalogService[*Buyer]
	repo Repository
}

// NewService creates a Buyer service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Buyer]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "buyer",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.checkCodeUnique)

	return svc
}

func (s *Service) checkCodeUnique(ctx context.Context, b *Buyer) error {
	if b.Code == "" {
		return nil
	}
	exists, err := s.repo.ExistsByCode(ctx, b.Code)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("buyer", "code", b.Code)
	}
	return nil
}
