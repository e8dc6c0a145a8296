package booking_order

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomline/internal/core/apperror"
	"loomline/internal/core/i18n"
	"loomline/internal/core/id"
	"loomline/internal/core/numerator"
	"loomline/internal/core/types"
	"loomline/internal/domain"
	"loomline/internal/domain/catalogs/buyer"
	"loomline/internal/domain/catalogs/comodity"
)

// --- In-memory repository ---

type fakeOrderRepo struct {
	mu   sync.Mutex
	docs map[id.ID]*BookingOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{docs: make(map[id.ID]*BookingOrder)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, doc *BookingOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = doc.Clone()
	return nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, doc *BookingOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[doc.ID]; !ok {
		return apperror.NewNotFound("booking_order", doc.ID)
	}
	r.docs[doc.ID] = doc.Clone()
	return nil
}

func (r *fakeOrderRepo) SaveItems(ctx context.Context, doc *BookingOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.docs[doc.ID]; ok {
		stored.Items = make([]BookingOrderItem, len(doc.Items))
		copy(stored.Items, doc.Items)
	}
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, docID id.ID) (*BookingOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("booking_order", docID)
	}
	return doc.Clone(), nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, docID id.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok {
		return apperror.NewNotFound("booking_order", docID)
	}
	doc.MarkDeleted()
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*BookingOrder], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := domain.ListResult[*BookingOrder]{Limit: filter.Limit, Offset: filter.Offset}
	for _, doc := range r.docs {
		out.Items = append(out.Items, doc.Clone())
	}
	out.TotalCount = int64(len(out.Items))
	return out, nil
}

func (r *fakeOrderRepo) HasDuplicateCode(ctx context.Context, code string, excludeID id.ID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doc := range r.docs {
		if doc.Code == code && doc.ID != excludeID && !doc.DeletionMark {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, docID id.ID) (*BookingOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

var _ Repository = (*fakeOrderRepo)(nil)

// --- Helpers ---

type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(t *testing.T) (*Service, *fakeOrderRepo, *BookingOrder) {
	t.Helper()

	b := buyer.NewBuyer("B-001", "Acme Garments")
	c := comodity.NewComodity("C-001", "Polo Shirt")

	repo := newFakeOrderRepo()
	buyers := &stubBuyerRepo{found: map[id.ID]*buyer.Buyer{b.ID: b}}
	comodities := &stubComodityRepo{found: map[id.ID]*comodity.Comodity{c.ID: c}}

	svc := NewService(repo, buyers, comodities, &numerator.MockGenerator{}, noopTxManager{}, i18n.Default())

	doc := NewBookingOrder(b.ID)
	booking := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	delivery := booking.AddDate(0, 1, 0)
	doc.BookingDate = &booking
	doc.DeliveryDate = &delivery
	doc.AddItem(c.ID, types.NewQuantityFromFloat64(120))
	doc.OrderQuantity = types.NewQuantityFromFloat64(120)

	return svc, repo, doc
}

// --- Tests ---

func TestServiceCreate_AssignsCode(t *testing.T) {
	svc, repo, doc := newTestService(t)

	created, err := svc.Create(context.Background(), doc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.Code, "BO-"), "code %q", created.Code)
	assert.True(t, created.IsActive)
	assert.False(t, created.IsCanceled)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Code, stored.Code)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Polo Shirt", stored.Items[0].ComodityName)
}

func TestServiceCreate_DoesNotMutateCaller(t *testing.T) {
	svc, _, doc := newTestService(t)

	created, err := svc.Create(context.Background(), doc)
	require.NoError(t, err)

	// The minted code lands on the returned copy only.
	assert.NotEmpty(t, created.Code)
	assert.Empty(t, doc.Code)
}

func TestServiceCreate_RejectsInvalid(t *testing.T) {
	svc, _, doc := newTestService(t)
	doc.OrderQuantity = types.NewQuantityFromFloat64(1)

	_, err := svc.Create(context.Background(), doc)
	require.Error(t, err)
	assert.Contains(t, apperror.ValidationFields(err), "orderQuantity")
}

func TestServiceCancel(t *testing.T) {
	svc, _, doc := newTestService(t)

	created, err := svc.Create(context.Background(), doc)
	require.NoError(t, err)

	canceled, err := svc.Cancel(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, canceled.IsCanceled)
	assert.False(t, canceled.IsActive)

	// Canceling again is a no-op update, not an error.
	again, err := svc.Cancel(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, again.IsCanceled)
}

func TestServiceCancel_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Cancel(context.Background(), id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
