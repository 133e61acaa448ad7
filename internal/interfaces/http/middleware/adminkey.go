package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"storecore/internal/shared/logger"
	"storecore/internal/shared/utils"
)

// AdminKeyMiddleware guards the operator surface with a static API key.
// An empty configured key disables the surface entirely rather than
// leaving it open.
type AdminKeyMiddleware struct {
	apiKey string
	logger logger.Interface
}

func NewAdminKeyMiddleware(apiKey string, logger logger.Interface) *AdminKeyMiddleware {
	return &AdminKeyMiddleware{
		apiKey: apiKey,
		logger: logger,
	}
}

func (m *AdminKeyMiddleware) RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "admin interface is disabled")
			c.Abort()
			return
		}

		provided := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.apiKey)) != 1 {
			m.logger.Warnw("admin key rejected", "ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}
