package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storecore/internal/application/credential/usecases"
	"storecore/internal/shared/constants"
	"storecore/internal/shared/logger"
	"storecore/internal/shared/utils"
)

// WebhookTokenMiddleware authenticates webhook requests. External
// automations carry the token either as an Authorization bearer header or
// as a token query parameter; both resolve through the same verification
// path, and every failure surfaces as the same generic unauthorized reply.
type WebhookTokenMiddleware struct {
	verifyTokenUseCase *usecases.VerifyTokenUseCase
	logger             logger.Interface
}

func NewWebhookTokenMiddleware(
	verifyTokenUseCase *usecases.VerifyTokenUseCase,
	logger logger.Interface,
) *WebhookTokenMiddleware {
	return &WebhookTokenMiddleware{
		verifyTokenUseCase: verifyTokenUseCase,
		logger:             logger,
	}
}

func (m *WebhookTokenMiddleware) RequireWebhookToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			rejectWebhook(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		ownerID, err := m.verifyTokenUseCase.Execute(c.Request.Context(), token)
		if err != nil {
			m.logger.Warnw("webhook token rejected",
				"ip", c.ClientIP(),
				"token", utils.MaskToken(token))
			rejectWebhook(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		c.Set(constants.ContextKeyOwnerID, ownerID)
		c.Set(constants.ContextKeyToken, token)

		c.Next()
	}
}

// rejectWebhook aborts with the flat envelope the external automations
// parse: error is a plain string, never a structured object.
func rejectWebhook(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// extractToken pulls the webhook token from the Authorization header or,
// failing that, the token query parameter.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	return c.Query("token")
}
