// Package register_repo provides PostgreSQL implementations for register repositories.
package register_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"loomline/internal/core/entity"
	"loomline/internal/core/id"
	"loomline/internal/domain/registers/movement"
	"loomline/internal/infrastructure/storage/postgres"
)

const inventoryMovementsTable = "reg_inventory_movements"

var movementColumns = []string{
	"line_id", "recorder_id", "recorder_type",
	"reference_no", "reference_type", "type",
	"storage_id", "product_id", "uom_id", "quantity", "remark",
	"created_at", "created_by",
}

// MovementRepo implements movement.Repository.
// The register is append-only, so only INSERT and SELECT are exposed.
type MovementRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

var _ movement.Repository = (*MovementRepo)(nil)

// NewMovementRepo creates a new inventory movement register repository.
func NewMovementRepo(txManager *postgres.TxManager) *MovementRepo {
	return &MovementRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a single movement line.
func (r *MovementRepo) Create(ctx context.Context, m entity.InventoryMovement) error {
	q := r.builder.Insert(inventoryMovementsTable).
		Columns(movementColumns...).
		Values(
			m.LineID, m.RecorderID, m.RecorderType,
			m.ReferenceNo, m.ReferenceType, m.Type,
			m.StorageID, m.ProductID, m.UomID, m.Quantity, m.Remark,
			m.CreatedAt, m.CreatedBy,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert movement: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}

	return nil
}

// GetByRecorder retrieves all movements recorded by a document.
func (r *MovementRepo) GetByRecorder(ctx context.Context, recorderID id.ID) ([]entity.InventoryMovement, error) {
	q := r.builder.
		Select(movementColumns...).
		From(inventoryMovementsTable).
		Where(squirrel.Eq{"recorder_id": recorderID}).
		OrderBy("created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []entity.InventoryMovement
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("get by recorder: %w", err)
	}

	return movements, nil
}

// List retrieves movements matching filter, newest first.
func (r *MovementRepo) List(ctx context.Context, filter movement.ListFilter) ([]entity.InventoryMovement, error) {
	q := r.builder.
		Select(movementColumns...).
		From(inventoryMovementsTable)

	if filter.StorageID != nil {
		q = q.Where(squirrel.Eq{"storage_id": *filter.StorageID})
	}
	if filter.ProductID != nil {
		q = q.Where(squirrel.Eq{"product_id": *filter.ProductID})
	}
	if filter.Type != nil {
		q = q.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.FromDate != nil {
		q = q.Where(squirrel.GtOrEq{"created_at": *filter.FromDate})
	}
	if filter.ToDate != nil {
		q = q.Where(squirrel.LtOrEq{"created_at": *filter.ToDate})
	}

	q = q.OrderBy("created_at DESC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []entity.InventoryMovement
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}

	return movements, nil
}
