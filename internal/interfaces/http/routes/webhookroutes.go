// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"storecore/internal/interfaces/http/handlers"
	"storecore/internal/interfaces/http/middleware"
)

// WebhookRouteConfig contains dependencies for the ledger webhook routes.
type WebhookRouteConfig struct {
	WebhookHandler         *handlers.WebhookHandler
	WebhookTokenMiddleware *middleware.WebhookTokenMiddleware
	RateLimitMiddleware    *middleware.WebhookRateLimitMiddleware
}

// SetupWebhookRoutes configures the webhook ingestion routes.
// Token verification runs first so the rate limit is keyed by owner.
func SetupWebhookRoutes(rg *gin.RouterGroup, cfg *WebhookRouteConfig) {
	webhook := rg.Group("/webhook")
	webhook.Use(cfg.WebhookTokenMiddleware.RequireWebhookToken())
	webhook.Use(cfg.RateLimitMiddleware.Limit())
	{
		webhook.POST("/ledger", cfg.WebhookHandler.HandleMutation)
		webhook.GET("/ledger", cfg.WebhookHandler.HandleList)
	}
}
