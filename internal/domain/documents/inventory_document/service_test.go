package inventory_document

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomline/internal/core/apperror"
	"loomline/internal/core/entity"
	"loomline/internal/core/i18n"
	"loomline/internal/core/id"
	"loomline/internal/core/numerator"
	"loomline/internal/core/types"
	"loomline/internal/domain"
	"loomline/internal/domain/catalogs/product"
	"loomline/internal/domain/catalogs/storage"
	"loomline/internal/domain/catalogs/uom"
	"loomline/internal/domain/registers/movement"
)

// --- In-memory repositories ---

type fakeDocRepo struct {
	mu   sync.Mutex
	docs map[id.ID]*InventoryDocument
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{docs: make(map[id.ID]*InventoryDocument)}
}

func (r *fakeDocRepo) Create(ctx context.Context, doc *InventoryDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = doc.Clone()
	return nil
}

func (r *fakeDocRepo) Update(ctx context.Context, doc *InventoryDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[doc.ID]; !ok {
		return apperror.NewNotFound("inventory_document", doc.ID)
	}
	r.docs[doc.ID] = doc.Clone()
	return nil
}

func (r *fakeDocRepo) SaveItems(ctx context.Context, doc *InventoryDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.docs[doc.ID]; ok {
		stored.Items = make([]InventoryDocumentItem, len(doc.Items))
		copy(stored.Items, doc.Items)
	}
	return nil
}

func (r *fakeDocRepo) GetByID(ctx context.Context, docID id.ID) (*InventoryDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("inventory_document", docID)
	}
	return doc.Clone(), nil
}

func (r *fakeDocRepo) Delete(ctx context.Context, docID id.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok {
		return apperror.NewNotFound("inventory_document", docID)
	}
	doc.MarkDeleted()
	return nil
}

func (r *fakeDocRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*InventoryDocument], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := domain.ListResult[*InventoryDocument]{Limit: filter.Limit, Offset: filter.Offset}
	for _, doc := range r.docs {
		out.Items = append(out.Items, doc.Clone())
	}
	out.TotalCount = int64(len(out.Items))
	return out, nil
}

func (r *fakeDocRepo) HasDuplicateCode(ctx context.Context, code string, excludeID id.ID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doc := range r.docs {
		if doc.Code == code && doc.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeDocRepo) FindByID(ctx context.Context, docID id.ID) (*InventoryDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

var _ Repository = (*fakeDocRepo)(nil)

type fakeMovementRepo struct {
	mu    sync.Mutex
	lines []entity.InventoryMovement
}

func (r *fakeMovementRepo) Create(ctx context.Context, m entity.InventoryMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, m)
	return nil
}

func (r *fakeMovementRepo) GetByRecorder(ctx context.Context, recorderID id.ID) ([]entity.InventoryMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.InventoryMovement
	for _, m := range r.lines {
		if m.RecorderID == recorderID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) List(ctx context.Context, filter movement.ListFilter) ([]entity.InventoryMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.InventoryMovement(nil), r.lines...), nil
}

var _ movement.Repository = (*fakeMovementRepo)(nil)

// --- Helpers ---

type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newCascadeService(t *testing.T) (*Service, *fakeMovementRepo, *InventoryDocument, refs) {
	t.Helper()

	st := storage.NewStorage("ST-001", "Main Warehouse")
	p := product.NewProduct("P-001", "Cotton Fabric")
	u := uom.NewUom("MTR", "MTR")
	r := refs{storage: st, product: p, uom: u}

	repo := newFakeDocRepo()
	movementRepo := &fakeMovementRepo{}

	svc := NewService(
		repo,
		&stubStorageRepo{found: map[id.ID]*storage.Storage{st.ID: st}},
		&stubProductRepo{found: map[id.ID]*product.Product{p.ID: p}},
		&stubUomRepo{found: map[id.ID]*uom.Uom{u.ID: u}},
		movement.NewService(movementRepo),
		&numerator.MockGenerator{},
		noopTxManager{},
		i18n.Default(),
	)

	doc := NewInventoryDocument(TypeIn, st.ID)
	doc.ReferenceNo = "PL-778"
	doc.ReferenceType = "PackingList"
	doc.AddItem(p.ID, u.ID, types.NewQuantityFromFloat64(40), "")
	doc.AddItem(p.ID, u.ID, types.NewQuantityFromFloat64(25), "")
	doc.AddItem(p.ID, u.ID, types.NewQuantityFromFloat64(-5), "shortage correction")

	return svc, movementRepo, doc, r
}

// --- Tests ---

func TestServiceCreate_RecordsOneMovementPerItem(t *testing.T) {
	svc, movementRepo, doc, _ := newCascadeService(t)

	created, err := svc.Create(context.Background(), doc)
	require.NoError(t, err)

	lines, err := movementRepo.GetByRecorder(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	wantQty := map[types.Quantity]bool{
		types.NewQuantityFromFloat64(40): false,
		types.NewQuantityFromFloat64(25): false,
		types.NewQuantityFromFloat64(-5): false,
	}
	for _, line := range lines {
		assert.Equal(t, "InventoryDocument", line.RecorderType)
		assert.Equal(t, "PL-778", line.ReferenceNo)
		assert.Equal(t, string(TypeIn), line.Type)
		assert.Equal(t, created.StorageID, line.StorageID)
		wantQty[line.Quantity] = true
	}
	for qty, seen := range wantQty {
		assert.True(t, seen, "no movement with quantity %s", qty)
	}
}

func TestServiceCreate_MintsServerCode(t *testing.T) {
	svc, _, doc, _ := newCascadeService(t)
	doc.Code = "CLIENT-SUPPLIED"

	created, err := svc.Create(context.Background(), doc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.Code, "ID-"), "code %q", created.Code)

	// The caller's document keeps the code it was handed in with.
	assert.Equal(t, "CLIENT-SUPPLIED", doc.Code)
}

func TestServiceCreateIn_ForcesType(t *testing.T) {
	svc, _, doc, _ := newCascadeService(t)
	doc.Type = TypeOut

	created, err := svc.CreateIn(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, TypeIn, created.Type)
	// The caller's document keeps its own type.
	assert.Equal(t, TypeOut, doc.Type)
}

func TestServiceCreate_InvalidDocumentRecordsNothing(t *testing.T) {
	svc, movementRepo, doc, _ := newCascadeService(t)
	doc.ReferenceNo = ""

	_, err := svc.Create(context.Background(), doc)
	require.Error(t, err)
	assert.Contains(t, apperror.ValidationFields(err), "referenceNo")

	lines, err := movementRepo.List(context.Background(), movement.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, lines)
}
