// Package http wires the HTTP interface layer: repositories, use cases,
// handlers, and routes.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	credentialUC "storecore/internal/application/credential/usecases"
	entitlementUC "storecore/internal/application/entitlement/usecases"
	ledgerUC "storecore/internal/application/ledger/usecases"
	"storecore/internal/domain/entitlement"
	"storecore/internal/infrastructure/config"
	"storecore/internal/infrastructure/ratelimit"
	"storecore/internal/infrastructure/repository"
	"storecore/internal/infrastructure/token"
	"storecore/internal/interfaces/http/handlers"
	adminHandlers "storecore/internal/interfaces/http/handlers/admin"
	"storecore/internal/interfaces/http/middleware"
	"storecore/internal/interfaces/http/routes"
	"storecore/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface
}

// NewRouter builds the fully wired HTTP router. redisClient may be nil;
// rate limiting then falls back to the in-process limiter.
func NewRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.CustomLogger(log))
	engine.Use(middleware.SecurityHeaders())
	if len(cfg.Server.AllowedOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	}

	// Repositories
	ledgerRepo := repository.NewLedgerRepository(db, log)
	credentialRepo := repository.NewCredentialRepository(db, log)
	entitlementRepo := repository.NewEntitlementRepository(db, log)

	// Domain services
	policy := entitlement.NewAccessPolicy(
		time.Duration(cfg.Trial.DurationHours)*time.Hour,
		cfg.Trial.MaxConcurrent,
	)
	tokenGen := token.NewGenerator()

	// Use cases
	applyMutationUC := ledgerUC.NewApplyMutationUseCase(ledgerRepo, log)
	listRecordsUC := ledgerUC.NewListRecordsUseCase(ledgerRepo, log)

	ensureTokenUC := credentialUC.NewEnsureTokenUseCase(credentialRepo, tokenGen, log)
	rotateTokenUC := credentialUC.NewRotateTokenUseCase(credentialRepo, tokenGen, log)
	verifyTokenUC := credentialUC.NewVerifyTokenUseCase(credentialRepo, log)

	checkAccessUC := entitlementUC.NewCheckAccessUseCase(entitlementRepo, policy, log)
	trialSlotsUC := entitlementUC.NewTrialSlotsUseCase(entitlementRepo, policy, log)
	activateTrialUC := entitlementUC.NewActivateTrialUseCase(entitlementRepo, policy, log)
	recordPurchaseUC := entitlementUC.NewRecordPurchaseUseCase(entitlementRepo, policy, log)
	recordRentalUC := entitlementUC.NewRecordRentalUseCase(entitlementRepo, policy, log)
	updatePaymentUC := entitlementUC.NewUpdatePaymentStatusUseCase(entitlementRepo, policy, log)
	setEnabledUC := entitlementUC.NewSetEnabledUseCase(entitlementRepo, policy, log)
	listGrantsUC := entitlementUC.NewListUserEntitlementsUseCase(entitlementRepo, policy, log)

	// Rate limiter backend
	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		limiter = ratelimit.NewMemoryRateLimiter()
	}

	// Middleware
	webhookTokenMW := middleware.NewWebhookTokenMiddleware(verifyTokenUC, log)
	rateLimitMW := middleware.NewWebhookRateLimitMiddleware(limiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: cfg.Webhook.RequestsPerMinute,
		RequestsPerHour:   cfg.Webhook.RequestsPerHour,
	}, log)
	adminKeyMW := middleware.NewAdminKeyMiddleware(cfg.Admin.APIKey, log)

	// Handlers
	webhookHandler := handlers.NewWebhookHandler(applyMutationUC, listRecordsUC, log)
	entitlementHandler := handlers.NewEntitlementHandler(
		checkAccessUC,
		trialSlotsUC,
		activateTrialUC,
		recordPurchaseUC,
		recordRentalUC,
		updatePaymentUC,
		listGrantsUC,
		log,
	)
	adminTokenHandler := adminHandlers.NewTokenHandler(ensureTokenUC, rotateTokenUC, log)
	adminEntitlementHandler := adminHandlers.NewEntitlementHandler(setEnabledUC, log)

	// Routes
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiV1 := engine.Group("/api/v1")

	routes.SetupWebhookRoutes(apiV1, &routes.WebhookRouteConfig{
		WebhookHandler:         webhookHandler,
		WebhookTokenMiddleware: webhookTokenMW,
		RateLimitMiddleware:    rateLimitMW,
	})

	routes.SetupEntitlementRoutes(apiV1, &routes.EntitlementRouteConfig{
		EntitlementHandler: entitlementHandler,
	})

	routes.SetupAdminRoutes(apiV1, &routes.AdminRouteConfig{
		TokenHandler:       adminTokenHandler,
		EntitlementHandler: adminEntitlementHandler,
		AdminKeyMiddleware: adminKeyMW,
	})

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
	}
}

// Engine exposes the underlying gin engine, mainly for tests
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the configured address
func (r *Router) Run() error {
	addr := r.cfg.Server.GetAddr()
	r.logger.Infow("starting HTTP server", "addr", addr)
	return r.engine.Run(addr)
}
