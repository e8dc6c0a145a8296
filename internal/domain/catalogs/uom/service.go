package uom

import (
	"loomline/internal/core/tx"
	"loomline/internal/domain"
)

// Service provides business logic for the Uom catalog.
type Service struct {
	*domain.CatalogService[*Uom]
	repo Repository
}

// NewService creates a Uom service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Uom]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "uom",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
