package v1

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"loomline/internal/core/i18n"
	"loomline/internal/core/numerator"
	"loomline/internal/domain"
	"loomline/internal/domain/catalogs/buyer"
	"loomline/internal/domain/catalogs/comodity"
	"loomline/internal/domain/catalogs/product"
	"loomline/internal/domain/catalogs/storage"
	"loomline/internal/domain/catalogs/uom"
	"loomline/internal/domain/documents/booking_order"
	"loomline/internal/domain/documents/inventory_document"
	"loomline/internal/domain/registers/movement"
	"loomline/internal/infrastructure/http/v1/handlers"
	"loomline/internal/infrastructure/http/v1/middleware"
	"loomline/internal/infrastructure/storage/postgres"
	"loomline/internal/infrastructure/storage/postgres/catalog_repo"
	"loomline/internal/infrastructure/storage/postgres/document_repo"
	"loomline/internal/infrastructure/storage/postgres/register_repo"
	"loomline/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (health checks)
	Pool *postgres.Pool

	// TxManager drives transactions for all repositories
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// Numerator for document code generation
	Numerator numerator.Generator

	// Messages renders localized validation messages
	Messages *i18n.Messages

	// Audit records the change trail for document writes
	Audit *postgres.AuditService
}

// auditLogger is the slice of the audit service the document hooks use.
type auditLogger interface {
	Log(ctx context.Context, entry postgres.AuditEntry) error
}

// registerAuditHooks appends a trail entry after every create and
// update on a document service. The entry carries the full normalized
// document as the change payload.
func registerAuditHooks[T domain.Doc[T]](svc *domain.DocumentService[T], audit auditLogger, entityType string) {
	record := func(action postgres.AuditAction) domain.Hook[T] {
		return func(ctx context.Context, doc T) error {
			changes, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("marshal audit changes: %w", err)
			}
			return audit.Log(ctx, postgres.AuditEntry{
				EntityType: entityType,
				EntityID:   doc.GetID(),
				Action:     action,
				Changes:    changes,
			})
		}
	}

	svc.Hooks().On(domain.AfterCreate, record(postgres.AuditActionCreate))
	svc.Hooks().On(domain.AfterUpdate, record(postgres.AuditActionUpdate))
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.UserContext())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		registerCatalogRoutes(apiV1, cfg)
		registerDocumentRoutes(apiV1, cfg)
		registerRegisterRoutes(apiV1, cfg)
	}

	return router
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- BUYERS ---
	{
		repo := catalog_repo.NewBuyerRepo(cfg.TxManager)
		service := buyer.NewService(repo, cfg.TxManager)
		handler := handlers.NewBuyerHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/buyers"), handler)
	}

	// --- STORAGES ---
	{
		repo := catalog_repo.NewStorageRepo(cfg.TxManager)
		service := storage.NewService(repo, cfg.TxManager)
		handler := handlers.NewStorageHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/storages"), handler)
	}

	// --- PRODUCTS ---
	{
		repo := catalog_repo.NewProductRepo(cfg.TxManager)
		service := product.NewService(repo, cfg.TxManager)
		handler := handlers.NewProductHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/products"), handler)
	}

	// --- UOMS ---
	{
		repo := catalog_repo.NewUomRepo(cfg.TxManager)
		service := uom.NewService(repo, cfg.TxManager)
		handler := handlers.NewUomHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/uoms"), handler)
	}

	// --- COMODITIES ---
	{
		repo := catalog_repo.NewComodityRepo(cfg.TxManager)
		service := comodity.NewService(repo, cfg.TxManager)
		handler := handlers.NewComodityHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/comodities"), handler)
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler()

	// Shared reference repos for validation fan-out
	buyerRepo := catalog_repo.NewBuyerRepo(cfg.TxManager)
	comodityRepo := catalog_repo.NewComodityRepo(cfg.TxManager)
	storageRepo := catalog_repo.NewStorageRepo(cfg.TxManager)
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	uomRepo := catalog_repo.NewUomRepo(cfg.TxManager)

	movementRepo := register_repo.NewMovementRepo(cfg.TxManager)
	movementService := movement.NewService(movementRepo)

	// --- BOOKING ORDERS ---
	{
		repo := document_repo.NewBookingOrderRepo(cfg.TxManager)
		service := booking_order.NewService(
			repo, buyerRepo, comodityRepo, cfg.Numerator, cfg.TxManager, cfg.Messages)

		if cfg.Audit != nil {
			registerAuditHooks(service.DocumentService, cfg.Audit, "booking_order")
		}

		handler := handlers.NewBookingOrderHandler(baseHandler, service)
		group := docsGroup.Group("/booking-orders")
		RegisterDocumentRoutes(group, handler)
		group.POST("/:id/cancel", handler.Cancel)
	}

	// --- INVENTORY DOCUMENTS ---
	{
		repo := document_repo.NewInventoryDocumentRepo(cfg.TxManager)
		service := inventory_document.NewService(
			repo, storageRepo, productRepo, uomRepo, movementService,
			cfg.Numerator, cfg.TxManager, cfg.Messages)

		if cfg.Audit != nil {
			registerAuditHooks(service.DocumentService, cfg.Audit, "inventory_document")
		}

		handler := handlers.NewInventoryDocumentHandler(baseHandler, service)
		group := docsGroup.Group("/inventory-documents")
		RegisterDocumentRoutes(group, handler)
		group.POST("/in", handler.CreateIn)
	}
}

// registerRegisterRoutes registers the movement register endpoints.
func registerRegisterRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	movementRepo := register_repo.NewMovementRepo(cfg.TxManager)
	movementService := movement.NewService(movementRepo)
	handler := handlers.NewMovementHandler(baseHandler, movementService)

	registers := rg.Group("/register")
	{
		registers.GET("/movements", handler.List)
		registers.GET("/movements/by-recorder/:id", handler.GetByRecorder)
	}
}
