package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"loomline/internal/core/apperror"
	"loomline/internal/core/id"
	"loomline/internal/domain"
	"loomline/internal/domain/documents/booking_order"
	"loomline/internal/infrastructure/storage/postgres"
)

const (
	bookingOrdersTable     = "doc_booking_orders"
	bookingOrderItemsTable = "doc_booking_order_items"
)

// BookingOrderRepo implements booking_order.Repository.
type BookingOrderRepo struct {
	*BaseDocumentRepo[*booking_order.BookingOrder]
}

var _ booking_order.Repository = (*BookingOrderRepo)(nil)

// NewBookingOrderRepo creates a new booking order repository.
func NewBookingOrderRepo(txManager *postgres.TxManager) *BookingOrderRepo {
	return &BookingOrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*booking_order.BookingOrder](
			txManager,
			bookingOrdersTable,
			postgres.ExtractDBColumns[booking_order.BookingOrder](),
			func() *booking_order.BookingOrder { return &booking_order.BookingOrder{} },
		),
	}
}

// GetByID retrieves a booking order with its items.
func (r *BookingOrderRepo) GetByID(ctx context.Context, docID id.ID) (*booking_order.BookingOrder, error) {
	doc, err := r.getHeader(ctx, docID)
	if err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, docID)
	if err != nil {
		return nil, err
	}
	doc.Items = items

	return doc, nil
}

// FindByID returns the stored document with items, or nil when absent.
func (r *BookingOrderRepo) FindByID(ctx context.Context, docID id.ID) (*booking_order.BookingOrder, error) {
	doc, err := r.GetByID(ctx, docID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// getItems retrieves items for a booking order.
func (r *BookingOrderRepo) getItems(ctx context.Context, docID id.ID) ([]booking_order.BookingOrderItem, error) {
	q := r.Builder().
		Select(
			"line_id", "line_no", "comodity_id",
			"comodity_name", "comodity_code", "quantity",
		).
		From(bookingOrderItemsTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []booking_order.BookingOrderItem
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}

	return items, nil
}

// SaveItems saves items for a booking order (delete existing + insert new).
func (r *BookingOrderRepo) SaveItems(ctx context.Context, doc *booking_order.BookingOrder) error {
	querier := r.txManager.GetQuerier(ctx)

	// Delete existing items
	deleteSQL := "DELETE FROM " + bookingOrderItemsTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, doc.ID); err != nil {
		return fmt.Errorf("delete existing items: %w", err)
	}

	if len(doc.Items) == 0 {
		return nil
	}

	// Insert new items
	q := r.Builder().
		Insert(bookingOrderItemsTable).
		Columns(
			"line_id", "document_id", "line_no", "comodity_id",
			"comodity_name", "comodity_code", "quantity",
		)

	for _, item := range doc.Items {
		q = q.Values(
			item.LineID, doc.ID, item.LineNo, item.ComodityID,
			item.ComodityName, item.ComodityCode, item.Quantity,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert items: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert items: %w", err)
	}

	return nil
}

// HasDuplicateCode reports whether another live booking order carries code.
func (r *BookingOrderRepo) HasDuplicateCode(ctx context.Context, code string, excludeID id.ID) (bool, error) {
	q := r.Builder().
		Select("1").
		From(bookingOrdersTable).
		Where(squirrel.Eq{"code": code}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.NotEq{"id": excludeID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("duplicate code: %w", err)
	}

	return true, nil
}

// List retrieves booking orders with filtering.
func (r *BookingOrderRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*booking_order.BookingOrder], error) {
	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if len(filter.IDs) > 0 {
		q = q.Where(squirrel.Eq{"id": filter.IDs})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"code": pattern},
			squirrel.ILike{"buyer_name": pattern},
			squirrel.ILike{"buyer_code": pattern},
		})
	}

	return r.listHeaders(ctx, q, filter)
}
