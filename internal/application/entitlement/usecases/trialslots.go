package usecases

import (
	"context"
	"time"

	"storecore/internal/application/entitlement/dto"
	"storecore/internal/domain/entitlement"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
)

// TrialSlotsUseCase reports how many concurrent trial slots a user has left.
type TrialSlotsUseCase struct {
	entitlementRepo entitlement.Repository
	policy          *entitlement.AccessPolicy
	logger          logger.Interface
}

// NewTrialSlotsUseCase creates a new trial slots use case
func NewTrialSlotsUseCase(
	entitlementRepo entitlement.Repository,
	policy *entitlement.AccessPolicy,
	logger logger.Interface,
) *TrialSlotsUseCase {
	return &TrialSlotsUseCase{
		entitlementRepo: entitlementRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute executes the trial slots use case
func (uc *TrialSlotsUseCase) Execute(
	ctx context.Context,
	userID string,
) (*dto.TrialSlotsResponse, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	grants, err := uc.entitlementRepo.GetByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user grants for trial slots",
			"user_id", userID,
			"error", err)
		return nil, err
	}

	remaining := uc.policy.RemainingTrialSlots(grants, time.Now())

	uc.logger.Debugw("trial slots computed",
		"user_id", userID,
		"remaining", remaining)

	return &dto.TrialSlotsResponse{
		UserID:         userID,
		RemainingSlots: remaining,
		MaxConcurrent:  uc.policy.MaxConcurrentTrials(),
	}, nil
}
