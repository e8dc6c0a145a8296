package inventory_document

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"loomline/internal/core/apperror"
	"loomline/internal/core/i18n"
	"loomline/internal/core/id"
	"loomline/internal/domain/catalogs/product"
	"loomline/internal/domain/catalogs/storage"
	"loomline/internal/domain/catalogs/uom"
)

// validator runs the inventory document validation pipeline.
// Same contract as the booking order pipeline: clone, concurrent lookup
// fan-out, independent rules, aggregated field errors, denormalize on
// the valid copy only.
type validator struct {
	repo     Repository
	storages storage.Repository
	products product.Repository
	uoms     uom.Repository
	msgs     *i18n.Messages
}

func (v *validator) validate(ctx context.Context, in *InventoryDocument) (*InventoryDocument, error) {
	doc := in.Clone()

	var (
		stored     *InventoryDocument
		storageRec *storage.Storage
		productMap map[id.ID]*product.Product
		uomMap     map[id.ID]*uom.Uom
	)

	// The stored record must land before the code rules make sense:
	// codes are immutable, so the persisted code stands whatever the
	// payload claims. The duplicate check still runs against the
	// caller's code, so handing in a code owned by another record is
	// an error even though it would never be written.
	claimed := doc.Code

	rec, err := v.repo.FindByID(ctx, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("load stored document: %w", err)
	}
	stored = rec
	if stored != nil {
		doc.Code = stored.Code
	}

	checkCode := doc.Code
	if claimed != "" {
		checkCode = claimed
	}

	var codeTaken bool

	g, gctx := errgroup.WithContext(ctx)

	if checkCode != "" {
		g.Go(func() error {
			taken, err := v.repo.HasDuplicateCode(gctx, checkCode, doc.ID)
			if err != nil {
				return fmt.Errorf("check duplicate code: %w", err)
			}
			codeTaken = taken
			return nil
		})
	}

	if !id.IsNil(doc.StorageID) {
		g.Go(func() error {
			found, err := v.storages.FindByIDs(gctx, []id.ID{doc.StorageID})
			if err != nil {
				return fmt.Errorf("resolve storage: %w", err)
			}
			storageRec = found[doc.StorageID]
			return nil
		})
	}

	if ids := productIDs(doc.Items); len(ids) > 0 {
		g.Go(func() error {
			found, err := v.products.FindByIDs(gctx, ids)
			if err != nil {
				return fmt.Errorf("resolve products: %w", err)
			}
			productMap = found
			return nil
		})
	}

	if ids := uomIDs(doc.Items); len(ids) > 0 {
		g.Go(func() error {
			found, err := v.uoms.FindByIDs(gctx, ids)
			if err != nil {
				return fmt.Errorf("resolve uoms: %w", err)
			}
			uomMap = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := apperror.NewValidationResult(len(doc.Items))

	if doc.Code == "" {
		res.SetField("code", v.msgs.Format(i18n.RuleRequired, "code"))
	} else if codeTaken {
		res.SetField("code", v.msgs.Format(i18n.RuleExists, "code"))
	}

	if doc.ReferenceNo == "" {
		res.SetField("referenceNo", v.msgs.Format(i18n.RuleRequired, "referenceNo"))
	}
	if doc.ReferenceType == "" {
		res.SetField("referenceType", v.msgs.Format(i18n.RuleRequired, "referenceType"))
	}

	if doc.Type == "" {
		res.SetField("type", v.msgs.Format(i18n.RuleRequired, "type"))
	} else if !IsValidType(doc.Type) {
		res.SetField("type", v.msgs.Format(i18n.RuleNotSupported, "type"))
	}

	if id.IsNil(doc.StorageID) {
		res.SetField("storageId", v.msgs.Format(i18n.RuleRequired, "storageId"))
	} else if storageRec == nil {
		res.SetField("storageId", v.msgs.Format(i18n.RuleNotFound, "storage"))
	}

	if len(doc.Items) == 0 {
		res.SetField("items", v.msgs.Format(i18n.RuleAtLeastOne, "items"))
	}

	for i, item := range doc.Items {
		if id.IsNil(item.ProductID) {
			res.SetItemField(i, "productId", v.msgs.Format(i18n.RuleRequired, "productId"))
		} else if productMap[item.ProductID] == nil {
			res.SetItemField(i, "productId", v.msgs.Format(i18n.RuleNotFound, "productId"))
		}
		if id.IsNil(item.UomID) {
			res.SetItemField(i, "uomId", v.msgs.Format(i18n.RuleRequired, "uomId"))
		} else if uomMap[item.UomID] == nil {
			res.SetItemField(i, "uomId", v.msgs.Format(i18n.RuleNotFound, "uomId"))
		}
		// Negative quantities are corrections; only exactly zero is
		// meaningless.
		if item.Quantity.IsZero() {
			res.SetItemField(i, "quantity", v.msgs.Format(i18n.RuleNotZero, "quantity"))
		}
	}

	if err := res.Err("inventory document did not pass validation"); err != nil {
		return nil, err
	}

	doc.StorageName = storageRec.Name
	doc.StorageCode = storageRec.Code
	for i := range doc.Items {
		p := productMap[doc.Items[i].ProductID]
		doc.Items[i].ProductCode = p.Code
		doc.Items[i].ProductName = p.Name
		doc.Items[i].Uom = uomMap[doc.Items[i].UomID].Unit
		if id.IsNil(doc.Items[i].LineID) {
			doc.Items[i].LineID = id.New()
		}
		doc.Items[i].LineNo = i + 1
	}

	if stored != nil {
		doc.CreatedAt = stored.CreatedAt
		doc.CreatedBy = stored.CreatedBy
	}

	return doc, nil
}

func productIDs(items []InventoryDocumentItem) []id.ID {
	seen := make(map[id.ID]struct{}, len(items))
	ids := make([]id.ID, 0, len(items))
	for _, item := range items {
		if id.IsNil(item.ProductID) {
			continue
		}
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

func uomIDs(items []InventoryDocumentItem) []id.ID {
	seen := make(map[id.ID]struct{}, len(items))
	ids := make([]id.ID, 0, len(items))
	for _, item := range items {
		if id.IsNil(item.UomID) {
			continue
		}
		if _, ok := seen[item.UomID]; ok {
			continue
		}
		seen[item.UomID] = struct{}{}
		ids = append(ids, item.UomID)
	}
	return ids
}
