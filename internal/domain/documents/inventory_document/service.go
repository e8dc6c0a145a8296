// Package inventory_document provides the InventoryDocument service.
package inventory_document

import (
	"context"
	"fmt"

	appctx "loomline/internal/core/context"
	"loomline/internal/core/i18n"
	"loomline/internal/core/numerator"
	"loomline/internal/core/tx"
	"loomline/internal/domain"
	"loomline/internal/domain/catalogs/product"
	"loomline/internal/domain/catalogs/storage"
	"loomline/internal/domain/catalogs/uom"
	"loomline/internal/domain/registers/movement"
	"loomline/pkg/logger"
)

// Service provides business operations for inventory documents.
type Service struct {
	*domain.DocumentService[*InventoryDocument]

	movements *movement.Service
}

// NewService creates an inventory document service.
func NewService(
	repo Repository,
	storages storage.Repository,
	products product.Repository,
	uoms uom.Repository,
	movements *movement.Service,
	gen numerator.Generator,
	txManager tx.Manager,
	msgs *i18n.Messages,
) *Service {
	v := &validator{
		repo:     repo,
		storages: storages,
		products: products,
		uoms:     uoms,
		msgs:     msgs,
	}

	base := domain.NewDocumentService(domain.DocumentServiceConfig[*InventoryDocument]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  gen,
		NumberCfg:  numerator.DefaultConfig(CodePrefix),
		NumberOpts: &numerator.Options{Strategy: NumeratorStrategy},
		Validate:   v.validate,
		EntityName: "inventory_document",
	})

	svc := &Service{
		DocumentService: base,
		movements:       movements,
	}

	base.Hooks().On(domain.BeforeCreate, svc.assignFreshCode)
	base.Hooks().On(domain.AfterCreate, svc.recordMovements)

	return svc
}

// assignFreshCode drops any client-supplied code so a new one is minted
// on every insert. Codes are server-owned for this document type.
func (s *Service) assignFreshCode(ctx context.Context, doc *InventoryDocument) error {
	doc.Code = ""
	return nil
}

// recordMovements is the post-commit cascade: reload the persisted
// document and append one register line per item. The document is
// already durable when this runs; if the register write fails the error
// surfaces to the caller and the movements may be partially written.
// There is no compensation here, recovery is an operational concern.
func (s *Service) recordMovements(ctx context.Context, doc *InventoryDocument) error {
	persisted, err := s.GetByID(ctx, doc.ID)
	if err != nil {
		return fmt.Errorf("reload document for movements: %w", err)
	}

	if err := s.movements.Record(ctx, persisted.Movements(appctx.GetActor(ctx))); err != nil {
		logger.Error(ctx, "movement cascade failed",
			"document_id", persisted.ID,
			"code", persisted.Code,
			"error", err)
		return err
	}

	return nil
}

// CreateIn creates an inbound document: the type is forced to IN no
// matter what the payload carried.
func (s *Service) CreateIn(ctx context.Context, doc *InventoryDocument) (*InventoryDocument, error) {
	in := doc.Clone()
	in.Type = TypeIn
	return s.Create(ctx, in)
}
