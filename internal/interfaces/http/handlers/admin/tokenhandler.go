// Package admin contains handlers for the operator-facing API surface.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storecore/internal/application/credential/usecases"
	"storecore/internal/shared/logger"
	"storecore/internal/shared/utils"
)

// TokenHandler handles the operator token surface: provisioning a webhook
// token for an owning resource and rotating it.
type TokenHandler struct {
	ensureTokenUC *usecases.EnsureTokenUseCase
	rotateTokenUC *usecases.RotateTokenUseCase
	logger        logger.Interface
}

// NewTokenHandler creates a new admin token handler
func NewTokenHandler(
	ensureTokenUC *usecases.EnsureTokenUseCase,
	rotateTokenUC *usecases.RotateTokenUseCase,
	logger logger.Interface,
) *TokenHandler {
	return &TokenHandler{
		ensureTokenUC: ensureTokenUC,
		rotateTokenUC: rotateTokenUC,
		logger:        logger,
	}
}

// EnsureToken handles POST /admin/webhook-tokens/:ownerID
// Repeated calls return the same live token; only rotation replaces it.
func (h *TokenHandler) EnsureToken(c *gin.Context) {
	ownerID := c.Param("ownerID")

	result, err := h.ensureTokenUC.Execute(c.Request.Context(), ownerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Created {
		utils.CreatedResponse(c, result, "webhook token created")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RotateToken handles POST /admin/webhook-tokens/:ownerID/rotate
func (h *TokenHandler) RotateToken(c *gin.Context) {
	ownerID := c.Param("ownerID")

	result, err := h.rotateTokenUC.Execute(c.Request.Context(), ownerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK,
		"token rotated, the previous webhook URL stops working immediately", result)
}
