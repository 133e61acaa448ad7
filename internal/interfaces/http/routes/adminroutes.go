package routes

import (
	"github.com/gin-gonic/gin"

	"storecore/internal/interfaces/http/handlers/admin"
	"storecore/internal/interfaces/http/middleware"
)

// AdminRouteConfig contains dependencies for operator routes.
type AdminRouteConfig struct {
	TokenHandler       *admin.TokenHandler
	EntitlementHandler *admin.EntitlementHandler
	AdminKeyMiddleware *middleware.AdminKeyMiddleware
}

// SetupAdminRoutes configures the operator API surface. Every route is
// behind the static admin key.
func SetupAdminRoutes(rg *gin.RouterGroup, cfg *AdminRouteConfig) {
	adminGroup := rg.Group("/admin")
	adminGroup.Use(cfg.AdminKeyMiddleware.RequireAdminKey())
	{
		adminGroup.POST("/webhook-tokens/:ownerID", cfg.TokenHandler.EnsureToken)
		adminGroup.POST("/webhook-tokens/:ownerID/rotate", cfg.TokenHandler.RotateToken)

		adminGroup.PATCH("/entitlements/:sid/enabled", cfg.EntitlementHandler.SetEnabled)
	}
}
