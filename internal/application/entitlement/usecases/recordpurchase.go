package usecases

import (
	"context"
	"fmt"
	"time"

	"storecore/internal/application/entitlement/dto"
	"storecore/internal/domain/entitlement"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/id"
	"storecore/internal/shared/logger"
)

// RecordPurchaseUseCase handles the business logic for recording a
// permanent purchase grant
type RecordPurchaseUseCase struct {
	entitlementRepo entitlement.Repository
	policy          *entitlement.AccessPolicy
	logger          logger.Interface
}

// NewRecordPurchaseUseCase creates a new record purchase use case
func NewRecordPurchaseUseCase(
	entitlementRepo entitlement.Repository,
	policy *entitlement.AccessPolicy,
	logger logger.Interface,
) *RecordPurchaseUseCase {
	return &RecordPurchaseUseCase{
		entitlementRepo: entitlementRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute executes the record purchase use case
func (uc *RecordPurchaseUseCase) Execute(
	ctx context.Context,
	req *dto.RecordPurchaseRequest,
) (*dto.EntitlementResponse, error) {
	uc.logger.Infow("executing record purchase use case",
		"user_id", req.UserID,
		"product_slug", req.ProductSlug)

	sid, err := id.NewEntitlementID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entitlement ID: %w", err)
	}

	e, err := entitlement.NewPurchase(sid, req.UserID, req.ProductSlug)
	if err != nil {
		uc.logger.Warnw("invalid purchase request",
			"user_id", req.UserID,
			"product_slug", req.ProductSlug,
			"error", err)
		return nil, errors.NewValidationError(err.Error())
	}
	for k, v := range req.Metadata {
		e.Metadata()[k] = v
	}

	if err := uc.entitlementRepo.Create(ctx, e); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("purchase already recorded",
				"user_id", req.UserID,
				"product_slug", req.ProductSlug)
			return nil, errors.NewConflictError("product is already purchased")
		}
		return nil, err
	}

	uc.logger.Infow("purchase recorded",
		"entitlement_id", e.SID(),
		"user_id", req.UserID,
		"product_slug", req.ProductSlug)

	return toEntitlementResponse(e, time.Now(), uc.policy.TrialDuration()), nil
}
