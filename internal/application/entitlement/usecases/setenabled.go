package usecases

import (
	"context"
	"time"

	"storecore/internal/application/entitlement/dto"
	"storecore/internal/domain/entitlement"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
)

// SetEnabledUseCase handles soft-disabling and re-enabling a grant.
// Disabling is reversible and dominates every other state.
type SetEnabledUseCase struct {
	entitlementRepo entitlement.Repository
	policy          *entitlement.AccessPolicy
	logger          logger.Interface
}

// NewSetEnabledUseCase creates a new set enabled use case
func NewSetEnabledUseCase(
	entitlementRepo entitlement.Repository,
	policy *entitlement.AccessPolicy,
	logger logger.Interface,
) *SetEnabledUseCase {
	return &SetEnabledUseCase{
		entitlementRepo: entitlementRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute executes the set enabled use case
func (uc *SetEnabledUseCase) Execute(
	ctx context.Context,
	sid string,
	req *dto.SetEnabledRequest,
) (*dto.EntitlementResponse, error) {
	uc.logger.Infow("executing set enabled use case",
		"entitlement_id", sid,
		"enabled", req.Enabled)

	if sid == "" {
		return nil, errors.NewValidationError("entitlement ID is required")
	}

	e, err := uc.entitlementRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}

	before := e.Version()
	if req.Enabled {
		e.Enable()
	} else {
		e.Disable()
	}

	// Flipping to the current value is a no-op; skip the write.
	if e.Version() != before {
		if err := uc.entitlementRepo.Update(ctx, e); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("entitlement enabled flag set",
		"entitlement_id", sid,
		"enabled", req.Enabled)

	return toEntitlementResponse(e, time.Now(), uc.policy.TrialDuration()), nil
}
