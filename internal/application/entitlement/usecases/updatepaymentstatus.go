package usecases

import (
	"context"
	"time"

	"storecore/internal/application/entitlement/dto"
	"storecore/internal/domain/entitlement"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
)

// UpdatePaymentStatusUseCase handles payment-status callbacks for rental
// grants. A lapsed payment suspends access without touching the rental
// window, so a later reactivation restores access within the same window.
type UpdatePaymentStatusUseCase struct {
	entitlementRepo entitlement.Repository
	policy          *entitlement.AccessPolicy
	logger          logger.Interface
}

// NewUpdatePaymentStatusUseCase creates a new update payment status use case
func NewUpdatePaymentStatusUseCase(
	entitlementRepo entitlement.Repository,
	policy *entitlement.AccessPolicy,
	logger logger.Interface,
) *UpdatePaymentStatusUseCase {
	return &UpdatePaymentStatusUseCase{
		entitlementRepo: entitlementRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute executes the update payment status use case
func (uc *UpdatePaymentStatusUseCase) Execute(
	ctx context.Context,
	sid string,
	req *dto.UpdatePaymentStatusRequest,
) (*dto.EntitlementResponse, error) {
	uc.logger.Infow("executing update payment status use case",
		"entitlement_id", sid,
		"payment_status", req.PaymentStatus)

	if sid == "" {
		return nil, errors.NewValidationError("entitlement ID is required")
	}

	e, err := uc.entitlementRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}

	if err := e.UpdatePaymentStatus(entitlement.PaymentStatus(req.PaymentStatus)); err != nil {
		uc.logger.Warnw("payment status update rejected",
			"entitlement_id", sid,
			"payment_status", req.PaymentStatus,
			"error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.entitlementRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	uc.logger.Infow("payment status updated",
		"entitlement_id", sid,
		"payment_status", req.PaymentStatus)

	return toEntitlementResponse(e, time.Now(), uc.policy.TrialDuration()), nil
}
