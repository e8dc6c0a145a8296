package v1

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomline/internal/core/apperror"
	"loomline/internal/core/entity"
	"loomline/internal/core/id"
	"loomline/internal/core/numerator"
	"loomline/internal/domain"
	"loomline/internal/infrastructure/storage/postgres"
)

type trailDoc struct {
	entity.Document

	Name string `json:"name"`
}

func (d *trailDoc) Clone() *trailDoc {
	c := *d
	return &c
}

type trailRepo struct {
	mu   sync.Mutex
	docs map[id.ID]*trailDoc
}

var _ domain.DocumentRepository[*trailDoc] = (*trailRepo)(nil)

func (r *trailRepo) Create(ctx context.Context, doc *trailDoc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = doc.Clone()
	return nil
}

func (r *trailRepo) Update(ctx context.Context, doc *trailDoc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = doc.Clone()
	return nil
}

func (r *trailRepo) SaveItems(ctx context.Context, doc *trailDoc) error {
	return nil
}

func (r *trailRepo) GetByID(ctx context.Context, docID id.ID) (*trailDoc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("trail_doc", docID)
	}
	return doc.Clone(), nil
}

func (r *trailRepo) Delete(ctx context.Context, docID id.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, docID)
	return nil
}

func (r *trailRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*trailDoc], error) {
	return domain.ListResult[*trailDoc]{}, nil
}

type passTxManager struct{}

func (passTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memoryAuditSink struct {
	entries []postgres.AuditEntry
}

func (s *memoryAuditSink) Log(ctx context.Context, entry postgres.AuditEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func TestAuditHooks_RecordCreateAndUpdate(t *testing.T) {
	repo := &trailRepo{docs: make(map[id.ID]*trailDoc)}

	svc := domain.NewDocumentService(domain.DocumentServiceConfig[*trailDoc]{
		Repo:      repo,
		TxManager: passTxManager{},
		Numerator: &numerator.MockGenerator{},
		NumberCfg: numerator.DefaultConfig("TD"),
		Validate: func(ctx context.Context, doc *trailDoc) (*trailDoc, error) {
			return doc.Clone(), nil
		},
		EntityName: "trail_doc",
	})

	sink := &memoryAuditSink{}
	registerAuditHooks(svc, sink, "trail_doc")

	doc := &trailDoc{Document: entity.NewDocument(), Name: "first"}
	created, err := svc.Create(context.Background(), doc)
	require.NoError(t, err)

	created.Name = "second"
	_, err = svc.Update(context.Background(), created)
	require.NoError(t, err)

	require.Len(t, sink.entries, 2)

	assert.Equal(t, postgres.AuditActionCreate, sink.entries[0].Action)
	assert.Equal(t, "trail_doc", sink.entries[0].EntityType)
	assert.Equal(t, created.ID, sink.entries[0].EntityID)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(sink.entries[0].Changes, &payload))
	assert.Equal(t, "first", payload["name"])

	assert.Equal(t, postgres.AuditActionUpdate, sink.entries[1].Action)
	assert.Equal(t, created.ID, sink.entries[1].EntityID)
}
