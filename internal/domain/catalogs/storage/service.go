package storage

import (
	"context"

	"loomline/internal/core/apperror"
	"loomline/internal/core/tx"
	"loomline/internal/domain"
)

// Service provides business logic for the Storage catalog.
type Service struct {
	*domain.CatalogService[*Storage]
	repo Repository
}

// NewService creates a Storage service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Storage]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "storage",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.checkCodeUnique)

	return svc
}

// Deactivate clears the active flag without touching the deletion mark.
func (s *Service) Deactivate(ctx context.Context, st *Storage) error {
	st.IsActive = false
	return s.Update(ctx, st)
}

func (s *Service) checkCodeUnique(ctx context.Context, st *Storage) error {
	if st.Code == "" {
		return nil
	}
	exists, err := s.repo.ExistsByCode(ctx, st.Code)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("storage", "code", st.Code)
	}
	return nil
}
