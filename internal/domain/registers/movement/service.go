// Package movement provides the inventory movement register service.
package movement

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"loomline/internal/core/apperror"
	"loomline/internal/core/entity"
	"loomline/internal/core/id"
	"loomline/pkg/logger"
)

// Service provides business operations for the movement register.
type Service struct {
	repo Repository
}

// NewService creates a movement register service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record writes one register line per movement, all lines in flight at
// once. Each insert stands alone: a failed line does not undo lines
// that already landed, and the first error is what the caller gets.
func (s *Service) Record(ctx context.Context, movements []entity.InventoryMovement) error {
	if len(movements) == 0 {
		return nil
	}

	for i, m := range movements {
		if id.IsNil(m.RecorderID) {
			return apperror.NewValidation(fmt.Sprintf("movement %d: recorder id is required", i))
		}
		if m.Quantity.IsZero() {
			return apperror.NewValidation(fmt.Sprintf("movement %d: quantity must not be zero", i))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, m := range movements {
		g.Go(func() error {
			if err := s.repo.Create(gctx, m); err != nil {
				return fmt.Errorf("record movement %s: %w", m.LineID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info(ctx, "recorded inventory movements",
		"count", len(movements),
		"recorder_id", movements[0].RecorderID)

	return nil
}

// GetByRecorder returns the register lines a document produced.
func (s *Service) GetByRecorder(ctx context.Context, recorderID id.ID) ([]entity.InventoryMovement, error) {
	return s.repo.GetByRecorder(ctx, recorderID)
}

// List returns register lines matching filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]entity.InventoryMovement, error) {
	return s.repo.List(ctx, filter)
}
