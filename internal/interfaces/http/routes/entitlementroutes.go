package routes

import (
	"github.com/gin-gonic/gin"

	"storecore/internal/interfaces/http/handlers"
)

// EntitlementRouteConfig contains dependencies for entitlement routes.
type EntitlementRouteConfig struct {
	EntitlementHandler *handlers.EntitlementHandler
}

// SetupEntitlementRoutes configures entitlement query and checkout routes.
// The access and trial-slot queries are read-only and safe to call on
// every page load.
func SetupEntitlementRoutes(rg *gin.RouterGroup, cfg *EntitlementRouteConfig) {
	entitlements := rg.Group("/entitlements")
	{
		// Per-user queries consumed by page and route guards
		users := entitlements.Group("/users/:userID")
		{
			users.GET("", cfg.EntitlementHandler.ListGrants)
			users.GET("/access/:productSlug", cfg.EntitlementHandler.CheckAccess)
			users.GET("/trial-slots", cfg.EntitlementHandler.TrialSlots)
		}

		// Checkout-completion and trial-activation callbacks
		entitlements.POST("/trial", cfg.EntitlementHandler.ActivateTrial)
		entitlements.POST("/purchase", cfg.EntitlementHandler.RecordPurchase)
		entitlements.POST("/rental", cfg.EntitlementHandler.RecordRental)

		// Payment processor callback for rentals
		entitlements.PATCH("/:sid/payment-status", cfg.EntitlementHandler.UpdatePaymentStatus)
	}
}
