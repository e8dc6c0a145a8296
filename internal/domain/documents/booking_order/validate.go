package booking_order

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"loomline/internal/core/apperror"
	"loomline/internal/core/i18n"
	"loomline/internal/core/id"
	"loomline/internal/domain/catalogs/buyer"
	"loomline/internal/domain/catalogs/comodity"
)

// validator runs the booking order validation pipeline.
//
// The pipeline is a pure function over its input: it clones the incoming
// document, fans out every reference lookup concurrently, evaluates all
// rules independently over the gathered results, and either returns the
// aggregated field errors or the normalized copy with display fields
// denormalized. The caller's document is never touched.
type validator struct {
	repo       Repository
	buyers     buyer.Repository
	comodities comodity.Repository
	msgs       *i18n.Messages
}

func (v *validator) validate(ctx context.Context, in *BookingOrder) (*BookingOrder, error) {
	doc := in.Clone()

	var (
		codeTaken bool
		stored    *BookingOrder
		buyerRec  *buyer.Buyer
		resolved  map[id.ID]*comodity.Comodity
	)

	// Lookup fan-out. Rules run only after every lookup has landed;
	// a lookup failure aborts validation with the store error as-is.
	g, gctx := errgroup.WithContext(ctx)

	if doc.Code != "" {
		g.Go(func() error {
			taken, err := v.repo.HasDuplicateCode(gctx, doc.Code, doc.ID)
			if err != nil {
				return fmt.Errorf("check duplicate code: %w", err)
			}
			codeTaken = taken
			return nil
		})
	}

	g.Go(func() error {
		rec, err := v.repo.FindByID(gctx, doc.ID)
		if err != nil {
			return fmt.Errorf("load stored document: %w", err)
		}
		stored = rec
		return nil
	})

	if !id.IsNil(doc.BuyerID) {
		g.Go(func() error {
			found, err := v.buyers.FindByIDs(gctx, []id.ID{doc.BuyerID})
			if err != nil {
				return fmt.Errorf("resolve buyer: %w", err)
			}
			buyerRec = found[doc.BuyerID]
			return nil
		})
	}

	if ids := comodityIDs(doc.Items); len(ids) > 0 {
		g.Go(func() error {
			found, err := v.comodities.FindByIDs(gctx, ids)
			if err != nil {
				return fmt.Errorf("resolve comodities: %w", err)
			}
			resolved = found
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

	if doc.BookingDate == nil {
		res.SetField("bookingDate", v.msgs.Format(i18n.RuleRequired, "bookingDate"))
	}
	if doc.DeliveryDate == nil {
		res.SetField("deliveryDate", v.msgs.Format(i18n.RuleRequired, "deliveryDate"))
	} else if doc.BookingDate != nil && doc.DeliveryDate.Before(*doc.BookingDate) {
		res.SetField("deliveryDate", v.msgs.Format(i18n.RuleNotBefore, "deliveryDate", "bookingDate"))
	}

	if id.IsNil(doc.BuyerID) {
		res.SetField("buyer", v.msgs.Format(i18n.RuleRequired, "buyer"))
	} else if buyerRec == nil {
		res.SetField("buyer", v.msgs.Format(i18n.RuleNotFound, "buyer"))
	}

	if len(doc.Items) == 0 {
		res.SetField("items", v.msgs.Format(i18n.RuleAtLeastOne, "items"))
	}

	sumMismatch := len(doc.Items) > 0 && doc.OrderQuantity != doc.ItemsTotal()

	if !doc.OrderQuantity.IsPositive() {
		res.SetField("orderQuantity", v.msgs.Format(i18n.RulePositive, "orderQuantity"))
	} else if sumMismatch {
		res.SetField("orderQuantity", v.msgs.Format(i18n.RuleSumMismatch, "orderQuantity"))
	}

	// The mismatch lights up every line's total so both views of the
	// form agree, even when the header quantity already failed the
	// positive rule.
	if sumMismatch {
		for i := range doc.Items {
			res.SetItemField(i, "total", v.msgs.Format(i18n.RuleSumMismatch, "orderQuantity"))
		}
	}

	for i, item := range doc.Items {
		if id.IsNil(item.ComodityID) {
			res.SetItemField(i, "comodity", v.msgs.Format(i18n.RuleRequired, "comodity"))
		} else if resolved[item.ComodityID] == nil {
			res.SetItemField(i, "comodity", v.msgs.Format(i18n.RuleNotFound, "comodity"))
		}
		if !item.Quantity.IsPositive() {
			res.SetItemField(i, "quantity", v.msgs.Format(i18n.RulePositive, "quantity"))
		}
	}

	if err := res.Err("booking order did not pass validation"); err != nil {
		return nil, err
	}

	// Denormalize display fields only on the fully valid copy.
	doc.BuyerName = buyerRec.Name
	doc.BuyerCode = buyerRec.Code
	for i := range doc.Items {
		c := resolved[doc.Items[i].ComodityID]
		doc.Items[i].ComodityName = c.Name
		doc.Items[i].ComodityCode = c.Code
		if id.IsNil(doc.Items[i].LineID) {
			doc.Items[i].LineID = id.New()
		}
		doc.Items[i].LineNo = i + 1
	}

	// Updates keep the stored creation metadata regardless of payload.
	if stored != nil {
		doc.CreatedAt = stored.CreatedAt
		doc.CreatedBy = stored.CreatedBy
	}

	return doc, nil
}

func comodityIDs(items []BookingOrderItem) []id.ID {
	seen := make(map[id.ID]struct{}, len(items))
	ids := make([]id.ID, 0, len(items))
	for _, item := range items {
		if id.IsNil(item.ComodityID) {
			continue
		}
		if _, ok := seen[item.ComodityID]; ok {
			continue
		}
		seen[item.ComodityID] = struct{}{}
		ids = append(ids, item.ComodityID)
	}
	return ids
}
