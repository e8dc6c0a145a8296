// Package booking_order provides the BookingOrder document service.
package booking_order

import (
	"context"

	"loomline/internal/core/i18n"
	"loomline/internal/core/id"
	"loomline/internal/core/numerator"
	"loomline/internal/core/tx"
	"loomline/internal/domain"
	"loomline/internal/domain/catalogs/buyer"
	"loomline/internal/domain/catalogs/comodity"
	"loomline/pkg/logger"
)

// Service provides business operations for booking orders.
type Service struct {
	*domain.DocumentService[*BookingOrder]
}

// NewService creates a booking order service.
func NewService(
	repo Repository,
	buyers buyer.Repository,
	comodities comodity.Repository,
	gen numerator.Generator,
	txManager tx.Manager,
	msgs *i18n.Messages,
) *Service {
	v := &validator{
		repo:       repo,
		buyers:     buyers,
		comodities: comodities,
		msgs:       msgs,
	}

	base := domain.NewDocumentService(domain.DocumentServiceConfig[*BookingOrder]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  gen,
		NumberCfg:  numerator.DefaultConfig(CodePrefix),
		NumberOpts: &numerator.Options{Strategy: NumeratorStrategy},
		Validate:   v.validate,
		EntityName: "booking_order",
	})

	svc := &Service{DocumentService: base}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)

	return svc
}

// prepareForCreate sets the lifecycle flags for a fresh document.
func (s *Service) prepareForCreate(ctx context.Context, doc *BookingOrder) error {
	doc.IsActive = true
	doc.IsCanceled = false
	return nil
}

// Cancel marks a booking order canceled and saves it through the
// ordinary update pipeline, so the document is re-validated in full.
// Canceling an already canceled order is a no-op update.
func (s *Service) Cancel(ctx context.Context, docID id.ID) (*BookingOrder, error) {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	doc.IsCanceled = true
	doc.IsActive = false

	updated, err := s.Update(ctx, doc)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "booking order canceled",
		"id", updated.ID,
		"code", updated.Code)

	return updated, nil
}
