// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"fmt"
	"time"

	"loomline/internal/core/apperror"
	appctx "loomline/internal/core/context"
	"loomline/internal/core/entity"
	"loomline/internal/core/id"
	"loomline/internal/core/numerator"
	"loomline/internal/core/tx"
	"loomline/pkg/logger"
)

// Doc is the contract a business document must satisfy to be driven by
// the generic DocumentService. Clone returns a deep copy; the service
// works on copies so the caller's document is never mutated.
type Doc[T any] interface {
	GetID() id.ID
	GetCode() string
	SetCode(code string)
	IsDeleted() bool
	Audit() *entity.BaseDocument
	Clone() T
}

// DocumentRepository defines persistence operations for document entities.
// Create/Update persist the header only; SaveItems persists the table part.
// The service calls both inside one transaction.
type DocumentRepository[T Doc[T]] interface {
	Create(ctx context.Context, doc T) error
	Update(ctx context.Context, doc T) error
	SaveItems(ctx context.Context, doc T) error

	// GetByID returns the document with its items loaded.
	GetByID(ctx context.Context, id id.ID) (T, error)

	// Delete soft-deletes (documents are never physically removed).
	Delete(ctx context.Context, id id.ID) error

	List(ctx context.Context, filter ListFilter) (ListResult[T], error)
}

// ValidateFunc runs the full validation pipeline over doc and returns a
// normalized copy (resolved display fields, forced codes). It must not
// mutate doc; rule failures come back as an apperror validation error.
type ValidateFunc[T Doc[T]] func(ctx context.Context, doc T) (T, error)

// DocumentService drives the validate-then-commit pipeline shared by all
// business documents. Document-specific rules are supplied as a
// ValidateFunc; lifecycle quirks (forced types, movement cascades) hang
// off the hook registry.
type DocumentService[T Doc[T]] struct {
	repo       DocumentRepository[T]
	txManager  tx.Manager
	numerator  numerator.Generator
	numberCfg  numerator.Config
	numberOpts *numerator.Options
	validate   ValidateFunc[T]
	hooks      *HookRegistry[T]

	entityName string
}

// DocumentServiceConfig configures a DocumentService.
type DocumentServiceConfig[T Doc[T]] struct {
	Repo       DocumentRepository[T]
	TxManager  tx.Manager
	Numerator  numerator.Generator
	NumberCfg  numerator.Config
	NumberOpts *numerator.Options
	Validate   ValidateFunc[T]
	EntityName string
}

// NewDocumentService creates a document service.
func NewDocumentService[T Doc[T]](cfg DocumentServiceConfig[T]) *DocumentService[T] {
	opts := cfg.NumberOpts
	if opts == nil {
		opts = numerator.DefaultOptions()
	}
	return &DocumentService[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		numerator:  cfg.Numerator,
		numberCfg:  cfg.NumberCfg,
		numberOpts: opts,
		validate:   cfg.Validate,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *DocumentService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// Create validates and persists a new document.
// The input is never mutated: the returned document is the normalized
// copy that was actually stored.
func (s *DocumentService[T]) Create(ctx context.Context, doc T) (T, error) {
	var zero T

	// Hooks and code minting work on a copy; the caller's document
	// stays as it was passed in.
	draft := doc.Clone()

	if err := s.hooks.RunBeforeCreate(ctx, draft); err != nil {
		return zero, err
	}

	if draft.GetCode() == "" {
		code, err := s.nextCode(ctx)
		if err != nil {
			return zero, err
		}
		draft.SetCode(code)
	}

	normalized, err := s.validate(ctx, draft)
	if err != nil {
		return zero, err
	}

	normalized.Audit().StampCreate(appctx.GetActor(ctx))

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, normalized); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveItems(ctx, normalized); err != nil {
			return fmt.Errorf("save items: %w", err)
		}
		return nil
	})
	if err != nil {
		return zero, err
	}

	// After-create hooks run outside the transaction (movement cascades,
	// audit trail). The document is durable at this point; a hook error
	// still fails the call so the client learns the cascade did not land.
	if err := s.hooks.RunAfterCreate(ctx, normalized); err != nil {
		logger.Error(ctx, "after-create hook failed",
			"entity", s.entityName,
			"id", normalized.GetID(),
			"error", err)
		return zero, err
	}

	logger.Info(ctx, "document created",
		"entity", s.entityName,
		"id", normalized.GetID(),
		"code", normalized.GetCode())

	return normalized, nil
}

// Update validates and persists changes to an existing document.
func (s *DocumentService[T]) Update(ctx context.Context, doc T) (T, error) {
	var zero T

	draft := doc.Clone()

	if err := s.hooks.RunBeforeUpdate(ctx, draft); err != nil {
		return zero, err
	}

	normalized, err := s.validate(ctx, draft)
	if err != nil {
		return zero, err
	}

	// Creation metadata was already carried over from the stored row by
	// the validate pipeline; only the update stamps change here.
	normalized.Audit().StampUpdate(appctx.GetActor(ctx), nil)

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, normalized); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveItems(ctx, normalized); err != nil {
			return fmt.Errorf("save items: %w", err)
		}
		return nil
	})
	if err != nil {
		return zero, err
	}

	if err := s.hooks.RunAfterUpdate(ctx, normalized); err != nil {
		logger.Error(ctx, "after-update hook failed",
			"entity", s.entityName,
			"id", normalized.GetID(),
			"error", err)
		return zero, err
	}

	return normalized, nil
}

// GetByID retrieves a document with items.
func (s *DocumentService[T]) GetByID(ctx context.Context, docID id.ID) (T, error) {
	return s.repo.GetByID(ctx, docID)
}

// GetByIDOrDefault retrieves a document, or the zero value when it does
// not exist. Lookup paths that treat absence as "no stored record" use
// this instead of branching on the not-found error.
func (s *DocumentService[T]) GetByIDOrDefault(ctx context.Context, docID id.ID) (T, error) {
	var zero T
	if id.IsNil(docID) {
		return zero, nil
	}
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return zero, nil
		}
		return zero, err
	}
	return doc, nil
}

// Delete soft-deletes a document.
func (s *DocumentService[T]) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if err := s.hooks.RunBeforeDelete(ctx, doc); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, docID)
	})
	if err != nil {
		return err
	}

	return s.hooks.RunAfterDelete(ctx, doc)
}

// List retrieves documents with filtering.
func (s *DocumentService[T]) List(ctx context.Context, filter ListFilter) (ListResult[T], error) {
	return s.repo.List(ctx, filter)
}

func (s *DocumentService[T]) nextCode(ctx context.Context) (string, error) {
	code, err := s.numerator.GetNextNumber(ctx, s.numberCfg, s.numberOpts, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return code, nil
}
