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

// ActivateTrialUseCase handles the business logic for activating a trial.
// Two rules gate activation: a user may never trial the same product twice,
// and at most a fixed number of trials may be live at once. The per-product
// rule is lifetime, so expired trials still block reactivation; the cap only
// counts trials whose window is still open.
type ActivateTrialUseCase struct {
	entitlementRepo entitlement.Repository
	policy          *entitlement.AccessPolicy
	logger          logger.Interface
}

// NewActivateTrialUseCase creates a new activate trial use case
func NewActivateTrialUseCase(
	entitlementRepo entitlement.Repository,
	policy *entitlement.AccessPolicy,
	logger logger.Interface,
) *ActivateTrialUseCase {
	return &ActivateTrialUseCase{
		entitlementRepo: entitlementRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute executes the activate trial use case
func (uc *ActivateTrialUseCase) Execute(
	ctx context.Context,
	req *dto.ActivateTrialRequest,
) (*dto.EntitlementResponse, error) {
	uc.logger.Infow("executing activate trial use case",
		"user_id", req.UserID,
		"product_slug", req.ProductSlug)

	now := time.Now()

	grants, err := uc.entitlementRepo.GetByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.policy.CanActivateTrial(grants, req.ProductSlug, now); err != nil {
		uc.logger.Warnw("trial activation rejected",
			"user_id", req.UserID,
			"product_slug", req.ProductSlug,
			"reason", err)
		return nil, errors.NewConflictError(err.Error())
	}

	sid, err := id.NewEntitlementID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entitlement ID: %w", err)
	}

	e, err := entitlement.NewTrial(sid, req.UserID, req.ProductSlug)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The store re-checks both rules transactionally, so the pre-check
	// above only exists for precise error messages.
	if err := uc.entitlementRepo.CreateWithTrialCap(ctx, e, uc.policy.MaxConcurrentTrials(), uc.policy.TrialDuration()); err != nil {
		return nil, err
	}

	uc.logger.Infow("trial activated",
		"entitlement_id", e.SID(),
		"user_id", req.UserID,
		"product_slug", req.ProductSlug)

	return toEntitlementResponse(e, now, uc.policy.TrialDuration()), nil
}
