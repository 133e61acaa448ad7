package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storecore/internal/application/entitlement/dto"
	"storecore/internal/application/entitlement/usecases"
	"storecore/internal/shared/logger"
	"storecore/internal/shared/utils"
)

// EntitlementHandler handles the operator kill switch on individual grants
type EntitlementHandler struct {
	setEnabledUC *usecases.SetEnabledUseCase
	logger       logger.Interface
}

// NewEntitlementHandler creates a new admin entitlement handler
func NewEntitlementHandler(
	setEnabledUC *usecases.SetEnabledUseCase,
	logger logger.Interface,
) *EntitlementHandler {
	return &EntitlementHandler{
		setEnabledUC: setEnabledUC,
		logger:       logger,
	}
}

// SetEnabled handles PATCH /admin/entitlements/:sid/enabled
func (h *EntitlementHandler) SetEnabled(c *gin.Context) {
	sid := c.Param("sid")

	var req dto.SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.setEnabledUC.Execute(c.Request.Context(), sid, &req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "entitlement disabled"
	if req.Enabled {
		message = "entitlement enabled"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}
