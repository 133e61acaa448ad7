package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storecore/internal/application/entitlement/dto"
	"storecore/internal/application/entitlement/usecases"
	"storecore/internal/shared/logger"
	"storecore/internal/shared/utils"
)

// EntitlementHandler handles HTTP requests for grant management and the
// read-only access checks consumed by page and route guards
type EntitlementHandler struct {
	checkAccessUC         *usecases.CheckAccessUseCase
	trialSlotsUC          *usecases.TrialSlotsUseCase
	activateTrialUC       *usecases.ActivateTrialUseCase
	recordPurchaseUC      *usecases.RecordPurchaseUseCase
	recordRentalUC        *usecases.RecordRentalUseCase
	updatePaymentStatusUC *usecases.UpdatePaymentStatusUseCase
	listUserEntitlements  *usecases.ListUserEntitlementsUseCase
	logger                logger.Interface
}

// NewEntitlementHandler creates a new entitlement handler
func NewEntitlementHandler(
	checkAccessUC *usecases.CheckAccessUseCase,
	trialSlotsUC *usecases.TrialSlotsUseCase,
	activateTrialUC *usecases.ActivateTrialUseCase,
	recordPurchaseUC *usecases.RecordPurchaseUseCase,
	recordRentalUC *usecases.RecordRentalUseCase,
	updatePaymentStatusUC *usecases.UpdatePaymentStatusUseCase,
	listUserEntitlements *usecases.ListUserEntitlementsUseCase,
	logger logger.Interface,
) *EntitlementHandler {
	return &EntitlementHandler{
		checkAccessUC:         checkAccessUC,
		trialSlotsUC:          trialSlotsUC,
		activateTrialUC:       activateTrialUC,
		recordPurchaseUC:      recordPurchaseUC,
		recordRentalUC:        recordRentalUC,
		updatePaymentStatusUC: updatePaymentStatusUC,
		listUserEntitlements:  listUserEntitlements,
		logger:                logger,
	}
}

// CheckAccess handles GET /entitlements/:userID/access/:productSlug
func (h *EntitlementHandler) CheckAccess(c *gin.Context) {
	userID := c.Param("userID")
	productSlug := c.Param("productSlug")

	result, err := h.checkAccessUC.Execute(c.Request.Context(), userID, productSlug)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// TrialSlots handles GET /entitlements/:userID/trial-slots
func (h *EntitlementHandler) TrialSlots(c *gin.Context) {
	userID := c.Param("userID")

	result, err := h.trialSlotsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListGrants handles GET /entitlements/:userID
func (h *EntitlementHandler) ListGrants(c *gin.Context) {
	userID := c.Param("userID")

	result, err := h.listUserEntitlements.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ActivateTrial handles POST /entitlements/trial
func (h *EntitlementHandler) ActivateTrial(c *gin.Context) {
	var req dto.ActivateTrialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.activateTrialUC.Execute(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "trial activated")
}

// RecordPurchase handles POST /entitlements/purchase
func (h *EntitlementHandler) RecordPurchase(c *gin.Context) {
	var req dto.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.recordPurchaseUC.Execute(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "purchase recorded")
}

// RecordRental handles POST /entitlements/rental
func (h *EntitlementHandler) RecordRental(c *gin.Context) {
	var req dto.RecordRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.recordRentalUC.Execute(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "rental recorded", result)
}

// UpdatePaymentStatus handles PATCH /entitlements/:sid/payment-status
func (h *EntitlementHandler) UpdatePaymentStatus(c *gin.Context) {
	sid := c.Param("sid")

	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updatePaymentStatusUC.Execute(c.Request.Context(), sid, &req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment status updated", result)
}
