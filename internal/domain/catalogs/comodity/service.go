package comodity

import (
	"context"

	"loomline/internal/core/apperror"
	"loomline/internal/core/tx"
	"loomline/internal/domain"
)

// Service provides business logic for the Comodity catalog.
type Service struct {
	*domain.CatalogService[*Comodity]
	repo Repository
}

// NewService creates a Comodity service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Comodity]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "comodity",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.checkCodeUnique)

	return svc
}

func (s *Service) checkCodeUnique(ctx context.Context, c *Comodity) error {
	if c.Code == "" {
		return nil
	}
	exists, err := s.repo.ExistsByCode(ctx, c.Code)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("comodity", "code", c.Code)
	}
	return nil
}
