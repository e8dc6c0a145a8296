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
	"loomline/internal/domain/documents/inventory_document"
	"loomline/internal/infrastructure/storage/postgres"
)

const (
	inventoryDocumentsTable     = "doc_inventory_documents"
	inventoryDocumentItemsTable = "doc_inventory_document_items"
)

// InventoryDocumentRepo implements inventory_document.Repository.
type InventoryDocumentRepo struct {
	*BaseDocumentRepo[*inventory_document.InventoryDocument]
}

var _ inventory_document.Repository = (*InventoryDocumentRepo)(nil)

// NewInventoryDocumentRepo creates a new inventory document repository.
func NewInventoryDocumentRepo(txManager *postgres.TxManager) *InventoryDocumentRepo {
	return &InventoryDocumentRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*inventory_document.InventoryDocument](
			txManager,
			inventoryDocumentsTable,
			postgres.ExtractDBColumns[inventory_document.InventoryDocument](),
			func() *inventory_document.InventoryDocument { return &inventory_document.InventoryDocument{} },
		),
	}
}

// GetByID retrieves an inventory document with its items.
func (r *InventoryDocumentRepo) GetByID(ctx context.Context, docID id.ID) (*inventory_document.InventoryDocument, error) {
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
func (r *InventoryDocumentRepo) FindByID(ctx context.Context, docID id.ID) (*inventory_document.InventoryDocument, error) {
	doc, err := r.GetByID(ctx, docID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// getItems retrieves items for an inventory document.
func (r *InventoryDocumentRepo) getItems(ctx context.Context, docID id.ID) ([]inventory_document.InventoryDocumentItem, error) {
	q := r.Builder().
		Select(
			"line_id", "line_no", "product_id", "product_code",
			"product_name", "uom_id", "uom", "quantity", "remark",
		).
		From(inventoryDocumentItemsTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []inventory_document.InventoryDocumentItem
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}

	return items, nil
}

// SaveItems saves items for an inventory document (delete existing + insert new).
func (r *InventoryDocumentRepo) SaveItems(ctx context.Context, doc *inventory_document.InventoryDocument) error {
	querier := r.txManager.GetQuerier(ctx)

	// Delete existing items
	deleteSQL := "DELETE FROM " + inventoryDocumentItemsTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, doc.ID); err != nil {
		return fmt.Errorf("delete existing items: %w", err)
	}

	if len(doc.Items) == 0 {
		return nil
	}

	// Insert new items
	q := r.Builder().
		Insert(inventoryDocumentItemsTable).
		Columns(
			"line_id", "document_id", "line_no", "product_id",
			"product_code", "product_name", "uom_id", "uom",
			"quantity", "remark",
		)

	for _, item := range doc.Items {
		q = q.Values(
			item.LineID, doc.ID, item.LineNo, item.ProductID,
			item.ProductCode, item.ProductName, item.UomID, item.Uom,
			item.Quantity, item.Remark,
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

// HasDuplicateCode reports whether any other row carries code.
// Soft-deleted rows count: the code column is backed by a unique index.
func (r *InventoryDocumentRepo) HasDuplicateCode(ctx context.Context, code string, excludeID id.ID) (bool, error) {
	q := r.Builder().
		Select("1").
		From(inventoryDocumentsTable).
		Where(squirrel.Eq{"code": code}).
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

// List retrieves inventory documents with filtering.
// The keyword search also matches item product codes and names through
// an EXISTS subquery over the table part.
func (r *InventoryDocumentRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*inventory_document.InventoryDocument], error) {
	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if len(filter.IDs) > 0 {
		q = q.Where(squirrel.Eq{"id": filter.IDs})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		itemsMatch := squirrel.Expr(
			"EXISTS (SELECT 1 FROM "+inventoryDocumentItemsTable+
				" it WHERE it.document_id = "+inventoryDocumentsTable+".id"+
				" AND (it.product_code ILIKE ? OR it.product_name ILIKE ?))",
			pattern, pattern,
		)
		q = q.Where(squirrel.Or{
			squirrel.ILike{"code": pattern},
			squirrel.ILike{"reference_no": pattern},
			squirrel.ILike{"reference_type": pattern},
			squirrel.ILike{"type": pattern},
			squirrel.ILike{"storage_name": pattern},
			itemsMatch,
		})
	}

	return r.listHeaders(ctx, q, filter)
}
