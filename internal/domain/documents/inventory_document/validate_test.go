package inventory_document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomline/internal/core/apperror"
	"loomline/internal/core/i18n"
	"loomline/internal/core/id"
	"loomline/internal/core/types"
	"loomline/internal/domain/catalogs/product"
	"loomline/internal/domain/catalogs/storage"
	"loomline/internal/domain/catalogs/uom"
)

// --- Stubs ---

type stubDocRepo struct {
	Repository

	codeTaken  bool
	takenCodes map[string]bool
	stored     *InventoryDocument
}

func (s *stubDocRepo) HasDuplicateCode(ctx context.Context, code string, excludeID id.ID) (bool, error) {
	if s.takenCodes != nil {
		return s.takenCodes[code], nil
	}
	return s.codeTaken, nil
}

func (s *stubDocRepo) FindByID(ctx context.Context, docID id.ID) (*InventoryDocument, error) {
	return s.stored, nil
}

type stubStorageRepo struct {
	storage.Repository

	found map[id.ID]*storage.Storage
}

func (s *stubStorageRepo) FindByIDs(ctx context.Context, ids []id.ID) (map[id.ID]*storage.Storage, error) {
	out := make(map[id.ID]*storage.Storage)
	for _, entityID := range ids {
		if rec, ok := s.found[entityID]; ok {
			out[entityID] = rec
		}
	}
	return out, nil
}

type stubProductRepo struct {
	product.Repository

	found map[id.ID]*product.Product
}

func (s *stubProductRepo) FindByIDs(ctx context.Context, ids []id.ID) (map[id.ID]*product.Product, error) {
	out := make(map[id.ID]*product.Product)
	for _, entityID := range ids {
		if rec, ok := s.found[entityID]; ok {
			out[entityID] = rec
		}
	}
	return out, nil
}

type stubUomRepo struct {
	uom.Repository

	found map[id.ID]*uom.Uom
}

func (s *stubUomRepo) FindByIDs(ctx context.Context, ids []id.ID) (map[id.ID]*uom.Uom, error) {
	out := make(map[id.ID]*uom.Uom)
	for _, entityID := range ids {
		if rec, ok := s.found[entityID]; ok {
			out[entityID] = rec
		}
	}
	return out, nil
}

// --- Fixtures ---

type refs struct {
	storage *storage.Storage
	product *product.Product
	uom     *uom.Uom
}

func validDocFixture(t *testing.T) (*InventoryDocument, refs) {
	t.Helper()

	st := storage.NewStorage("ST-001", "Main Warehouse")
	p := product.NewProduct("P-001", "Cotton Fabric")
	u := uom.NewUom("MTR", "MTR")

	doc := NewInventoryDocument(TypeIn, st.ID)
	doc.Code = "ID-2026-00001"
	doc.ReferenceNo = "PL-778"
	doc.ReferenceType = "PackingList"
	doc.AddItem(p.ID, u.ID, types.NewQuantityFromFloat64(40), "roll of 40")

	return doc, refs{storage: st, product: p, uom: u}
}

func newRefValidator(repo *stubDocRepo, r refs) *validator {
	return &validator{
		repo:     repo,
		storages: &stubStorageRepo{found: map[id.ID]*storage.Storage{r.storage.ID: r.storage}},
		products: &stubProductRepo{found: map[id.ID]*product.Product{r.product.ID: r.product}},
		uoms:     &stubUomRepo{found: map[id.ID]*uom.Uom{r.uom.ID: r.uom}},
		msgs:     i18n.Default(),
	}
}

// --- Tests ---

func TestValidate_Valid(t *testing.T) {
	doc, r := validDocFixture(t)
	v := newRefValidator(&stubDocRepo{}, r)

	out, err := v.validate(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, "Main Warehouse", out.StorageName)
	assert.Equal(t, "ST-001", out.StorageCode)
	assert.Equal(t, "P-001", out.Items[0].ProductCode)
	assert.Equal(t, "Cotton Fabric", out.Items[0].ProductName)
	assert.Equal(t, "MTR", out.Items[0].Uom)
	assert.Equal(t, 1, out.Items[0].LineNo)

	// The caller's document stays untouched.
	assert.Empty(t, doc.StorageName)
}

func TestValidate_StoredCodeWins(t *testing.T) {
	doc, r := validDocFixture(t)

	stored := doc.Clone()
	stored.Code = "ID-2026-00042"

	doc.Code = "SMUGGLED"

	v := newRefValidator(&stubDocRepo{stored: stored}, r)

	out, err := v.validate(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "ID-2026-00042", out.Code)
}

func TestValidate_UpdateWithForeignCodeIsDuplicate(t *testing.T) {
	doc, r := validDocFixture(t)

	stored := doc.Clone()
	stored.Code = "ID-2026-00042"

	// The caller hands in a code that belongs to another record. The
	// stored code would stand either way, but the claim itself is a
	// duplicate and must be rejected.
	doc.Code = "ID-2026-00099"

	repo := &stubDocRepo{
		stored:     stored,
		takenCodes: map[string]bool{"ID-2026-00099": true},
	}
	v := newRefValidator(repo, r)

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)
	assert.Contains(t, apperror.ValidationFields(err), "code")
}

func TestValidate_UnsupportedType(t *testing.T) {
	doc, r := validDocFixture(t)
	doc.Type = "TRANSFER"

	v := newRefValidator(&stubDocRepo{}, r)

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)
	assert.Contains(t, apperror.ValidationFields(err), "type")
}

func TestValidate_RequiredHeaderFields(t *testing.T) {
	doc := NewInventoryDocument("", id.Nil())
	doc.Items = nil

	v := &validator{
		repo:     &stubDocRepo{},
		storages: &stubStorageRepo{},
		products: &stubProductRepo{},
		uoms:     &stubUomRepo{},
		msgs:     i18n.Default(),
	}

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)

	fields := apperror.ValidationFields(err)
	for _, field := range []string{"code", "referenceNo", "referenceType", "type", "storageId", "items"} {
		assert.Contains(t, fields, field)
	}
}

func TestValidate_ZeroQuantityRejectedNegativeAllowed(t *testing.T) {
	doc, r := validDocFixture(t)
	doc.AddItem(r.product.ID, r.uom.ID, types.NewQuantityFromFloat64(-3), "correction")
	doc.AddItem(r.product.ID, r.uom.ID, types.NewQuantityFromFloat64(0), "")

	v := newRefValidator(&stubDocRepo{}, r)

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)

	items := apperror.ValidationItems(err)
	require.Len(t, items, 3)
	assert.Empty(t, items[0])
	assert.Empty(t, items[1])
	assert.Contains(t, items[2], "quantity")
}

func TestValidate_UnknownLineReferences(t *testing.T) {
	doc, r := validDocFixture(t)

	v := &validator{
		repo:     &stubDocRepo{},
		storages: &stubStorageRepo{found: map[id.ID]*storage.Storage{r.storage.ID: r.storage}},
		products: &stubProductRepo{},
		uoms:     &stubUomRepo{},
		msgs:     i18n.Default(),
	}

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)

	items := apperror.ValidationItems(err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0], "productId")
	assert.Contains(t, items[0], "uomId")
}

func TestValidate_DuplicateCode(t *testing.T) {
	doc, r := validDocFixture(t)

	v := newRefValidator(&stubDocRepo{codeTaken: true}, r)

	_, err := v.validate(context.Background(), doc)
	require.Error(t, err)
	assert.Contains(t, apperror.ValidationFields(err), "code")
}
