package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"storecore/internal/application/ledger/dto"
	"storecore/internal/application/ledger/usecases"
	"storecore/internal/domain/ledger"
	"storecore/internal/shared/constants"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
)

// WebhookHandler handles the ledger ingestion endpoint used by external
// automations. The response envelope is the flat shape those automations
// already parse: {"success":true,"message":...} or
// {"success":false,"error":...}, never the richer API envelope.
type WebhookHandler struct {
	applyMutationUC *usecases.ApplyMutationUseCase
	listRecordsUC   *usecases.ListRecordsUseCase
	logger          logger.Interface
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(
	applyMutationUC *usecases.ApplyMutationUseCase,
	listRecordsUC *usecases.ListRecordsUseCase,
	logger logger.Interface,
) *WebhookHandler {
	return &WebhookHandler{
		applyMutationUC: applyMutationUC,
		listRecordsUC:   listRecordsUC,
		logger:          logger,
	}
}

// HandleMutation handles POST /webhook/ledger
func (h *WebhookHandler) HandleMutation(c *gin.Context) {
	ownerID := c.GetString(constants.ContextKeyOwnerID)
	if ownerID == "" {
		webhookError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req dto.MutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		webhookError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	op, err := req.ToOperation()
	if err != nil {
		webhookError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.applyMutationUC.Execute(c.Request.Context(), ownerID, op)
	if err != nil {
		h.logger.Warnw("webhook mutation failed",
			"owner_id", ownerID,
			"operation", op.Type(),
			"error", err)
		status, message := webhookStatus(err)
		webhookError(c, status, message)
		return
	}

	c.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: mutationMessage(result),
	})
}

// HandleList handles GET /webhook/ledger
func (h *WebhookHandler) HandleList(c *gin.Context) {
	ownerID := c.GetString(constants.ContextKeyOwnerID)
	if ownerID == "" {
		webhookError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	kind, err := dto.ParseKindFilter(c.Query("tipo"))
	if err != nil {
		webhookError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.listRecordsUC.Execute(c.Request.Context(), ownerID, kind)
	if err != nil {
		status, message := webhookStatus(err)
		webhookError(c, status, message)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"records": result.Records,
		"total":   result.Total,
	})
}

func mutationMessage(result *ledger.MutationResult) string {
	switch result.Operation {
	case ledger.OperationAdd:
		return "record added"
	case ledger.OperationReplace:
		return fmt.Sprintf("category replaced, %d record(s) removed", result.Affected)
	case ledger.OperationZero:
		return fmt.Sprintf("category zeroed, %d record(s) removed", result.Affected)
	case ledger.OperationDeleteByID:
		return "record deleted"
	default:
		return "operation applied"
	}
}

func webhookStatus(err error) (int, string) {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Code, appErr.Message
	}
	return http.StatusInternalServerError, "internal error"
}

func webhookError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
