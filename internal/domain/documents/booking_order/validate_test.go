package booking_order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomline/internal/core/apperror"
	"loomline/internal/core/i18n"
	"loomline/internal/core/id"
	"loomline/internal/core/types"
	"loomline/internal/domain/catalogs/buyer"
	"loomline/internal/domain/catalogs/comodity"
)

// --- Stubs ---

type stubOrderRepo struct {
	Repository

	codeTaken bool
	stored    *BookingOrder
}

func (s *stubOrderRepo) HasDuplicateCode(ctx context.Context, code string, excludeID id.ID) (bool, error) {
	return s.codeTaken, nil
}

func (s *stubOrderRepo) FindByID(ctx context.Context, docID id.ID) (*BookingOrder, error) {
	return s.stored, nil
}

type stubBuyerRepo struct {
	buyer.Repository

	found map[id.ID]*buyer.Buyer
}

func (s *stubBuyerRepo) FindByIDs(ctx context.Context, ids []id.ID) (map[id.ID]*buyer.Buyer, error) {
	out := make(map[id.ID]*buyer.Buyer)
	for _, entityID := range ids {
		if b, ok := s.found[entityID]; ok {
			out[entityID] = b
		}
	}
	return out, nil
}

type stubComodityRepo struct {
	comodity.Repository

	found map[id.ID]*comodity.Comodity
}

func (s *stubComodityRepo) FindByIDs(ctx context.Context, ids []id.ID) (map[id.ID]*comodity.Comodity, error) {
	out := make(map[id.ID]*comodity.Comodity)
	for _, entityID := range ids {
		if c, ok := s.found[entityID]; ok {
			out[entityID] = c
		}
	}
	return out, nil
}

// --- Fixtures ---

func newTestValidator(repo *stubOrderRepo, buyers *stubBuyerRepo, comodities *stubComodityRepo) *validator {
	return &validator{
		repo:       repo,
		buyers:     buyers,
		comodities: comodities,
		msgs:       i18n.Default(),
	}
}

func validOrderFixture(t *testing.T) (*BookingOrder, *stubBuyerRepo, *stubComodityRepo) {
	t.Helper()

	b := buyer.NewBuyer("B-001", "Acme Garments")
	c1 := comodity.NewComodity("C-001", "Polo Shirt")
	c2 := comodity.NewComodity("C-002", "Cargo Pants")

	doc := NewBookingOrder(b.ID)
	doc.Code = "BO-2026-00001"
	booking := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	delivery := booking.AddDate(0, 1, 0)
	doc.BookingDate = &booking
	doc.DeliveryDate = &delivery
	doc.AddItem(c1.ID, types.NewQuantityFromFloat64(100))
	doc.AddItem(c2.ID, types.NewQuantityFromFloat64(50))
	doc.OrderQuantity = types.NewQuantityFromFloat64(150)

	buyers := &stubBuyerRepo{found: map[id.ID]*buyer.Buyer{b.ID: b}}
	comodities := &stubComodityRepo{found: map[id.ID]*comodity.Comodity{
		c1.ID: c1,
		c2.ID: c2,
	}}

	return doc, buyers, comodities
}

// --- Tests ---

func TestValidate_Valid(t *testing.T) {
	doc, buyers, comodities := validOrderFixture(t)
	v := newTestValidator(&stubOrderRepo{}, buyers, comodities)

	out, err := v.validate(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, "Acme Garments", out.BuyerName)
	assert.Equal(t, "B-001", out.BuyerCode)
	assert.Equal(t, "Polo Shirt", out.Items[0].ComodityName)
	assert.Equal(t, "C-002", out.Items[1].ComodityCode)
	assert.Equal(t, 1, out.Items[0].LineNo)
	assert.Equal(t, 2, out.Items[1].LineNo)

	// The caller's document stays untouched.
	assert.Empty(t, doc.BuyerName)
	assert.Empty(t, doc.Items[0].ComodityName)
}

func TestValidate_AggregatesAllFieldErrors(t *testing.T) {
	doc := NewBookingOrder(id.Nil())
	doc.Items = nil

	v := newTestValidator(&stubOrderRepo{}, &stubBuyerRepo{}, &stubComodityRepo{})

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)

	fields := apperror.ValidationFields(err)
	require.NotNil(t, fields)
	for _, field := range []string{"code", "bookingDate", "deliveryDate", "buyer", "items", "orderQuantity"} {
		assert.Contains(t, fields, field)
	}
}

func TestValidate_SumMismatchReportsHeaderAndEveryLine(t *testing.T) {
	doc, buyers, comodities := validOrderFixture(t)
	doc.OrderQuantity = types.NewQuantityFromFloat64(999)

	v := newTestValidator(&stubOrderRepo{}, buyers, comodities)

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)

	fields := apperror.ValidationFields(err)
	assert.Contains(t, fields, "orderQuantity")

	items := apperror.ValidationItems(err)
	require.Len(t, items, 2)
	assert.Contains(t, items[0], "total")
	assert.Contains(t, items[1], "total")
}

func TestValidate_SumMismatchWithNonPositiveHeaderStillFlagsLines(t *testing.T) {
	doc, buyers, comodities := validOrderFixture(t)
	doc.OrderQuantity = types.NewQuantityFromFloat64(0)

	v := newTestValidator(&stubOrderRepo{}, buyers, comodities)

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)

	// The header fails the positive rule, the lines still carry the
	// mismatch signal.
	fields := apperror.ValidationFields(err)
	assert.Contains(t, fields, "orderQuantity")

	items := apperror.ValidationItems(err)
	require.Len(t, items, 2)
	assert.Contains(t, items[0], "total")
	assert.Contains(t, items[1], "total")
}

func TestValidate_DeliveryOnBookingDateIsValid(t *testing.T) {
	doc, buyers, comodities := validOrderFixture(t)
	sameDay := *doc.BookingDate
	doc.DeliveryDate = &sameDay

	v := newTestValidator(&stubOrderRepo{}, buyers, comodities)

	_, err := v.validate(context.Background(), doc)
	require.NoError(t, err)
}

func TestValidate_DeliveryBeforeBooking(t *testing.T) {
	doc, buyers, comodities := validOrderFixture(t)
	early := doc.BookingDate.AddDate(0, 0, -1)
	doc.DeliveryDate = &early

	v := newTestValidator(&stubOrderRepo{}, buyers, comodities)

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)
	assert.Contains(t, apperror.ValidationFields(err), "deliveryDate")
}

func TestValidate_DuplicateCode(t *testing.T) {
	doc, buyers, comodities := validOrderFixture(t)

	v := newTestValidator(&stubOrderRepo{codeTaken: true}, buyers, comodities)

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)
	assert.Contains(t, apperror.ValidationFields(err), "code")
}

func TestValidate_UnknownReferences(t *testing.T) {
	doc, _, _ := validOrderFixture(t)

	// None of the references resolve.
	v := newTestValidator(&stubOrderRepo{}, &stubBuyerRepo{}, &stubComodityRepo{})

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)

	assert.Contains(t, apperror.ValidationFields(err), "buyer")

	items := apperror.ValidationItems(err)
	require.Len(t, items, 2)
	assert.Contains(t, items[0], "comodity")
	assert.Contains(t, items[1], "comodity")
}

func TestValidate_NonPositiveLineQuantity(t *testing.T) {
	doc, buyers, comodities := validOrderFixture(t)
	doc.Items[1].Quantity = types.NewQuantityFromFloat64(0)
	doc.OrderQuantity = doc.ItemsTotal()

	v := newTestValidator(&stubOrderRepo{}, buyers, comodities)

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)

	items := apperror.ValidationItems(err)
	require.Len(t, items, 2)
	assert.Empty(t, items[0])
	assert.Contains(t, items[1], "quantity")
}

func TestValidate_KeepsStoredCreationMetadata(t *testing.T) {
	doc, buyers, comodities := validOrderFixture(t)

	stored := doc.Clone()
	stored.CreatedAt = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	stored.CreatedBy = "first-author"

	doc.CreatedBy = "someone-else"

	v := newTestValidator(&stubOrderRepo{stored: stored}, buyers, comodities)

	out, err := v.validate(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, stored.CreatedAt, out.CreatedAt)
	assert.Equal(t, "first-author", out.CreatedBy)
}
