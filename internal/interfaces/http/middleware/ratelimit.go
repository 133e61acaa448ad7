package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storecore/internal/infrastructure/ratelimit"
	"storecore/internal/shared/constants"
	"storecore/internal/shared/logger"
)

// WebhookRateLimitMiddleware throttles webhook ingestion per owner. It
// runs after token verification so the limit key is the resolved owner,
// not the caller's IP; one owner hammering the endpoint cannot exhaust
// another owner's budget.
type WebhookRateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewWebhookRateLimitMiddleware(
	limiter ratelimit.RateLimiter,
	config ratelimit.RateLimitConfig,
	logger logger.Interface,
) *WebhookRateLimitMiddleware {
	return &WebhookRateLimitMiddleware{
		limiter: limiter,
		config:  config,
		logger:  logger,
	}
}

func (m *WebhookRateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetString(constants.ContextKeyOwnerID)
		if ownerID == "" {
			// Runs before token verification; fall back to IP keying.
			ownerID = c.ClientIP()
		}

		allowed, err := m.limiter.Allow("webhook:"+ownerID, m.config)
		if err != nil {
			// A limiter outage must not take the ingestion path down.
			m.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			m.logger.Warnw("webhook rate limit exceeded", "owner_id", ownerID)
			rejectWebhook(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			return
		}

		c.Next()
	}
}
