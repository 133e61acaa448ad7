package usecases

import (
	"context"
	"time"

	"storecore/internal/application/entitlement/dto"
	"storecore/internal/domain/entitlement"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
)

// ListUserEntitlementsUseCase handles listing every grant a user holds,
// with the derived state materialized at response time.
type ListUserEntitlementsUseCase struct {
	entitlementRepo entitlement.Repository
	policy          *entitlement.AccessPolicy
	logger          logger.Interface
}

// NewListUserEntitlementsUseCase creates a new list user entitlements use case
func NewListUserEntitlementsUseCase(
	entitlementRepo entitlement.Repository,
	policy *entitlement.AccessPolicy,
	logger logger.Interface,
) *ListUserEntitlementsUseCase {
	return &ListUserEntitlementsUseCase{
		entitlementRepo: entitlementRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute executes the list user entitlements use case
func (uc *ListUserEntitlementsUseCase) Execute(
	ctx context.Context,
	userID string,
) (*dto.ListEntitlementsResponse, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	grants, err := uc.entitlementRepo.GetByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list user grants", "user_id", userID, "error", err)
		return nil, err
	}

	now := time.Now()
	responses := make([]*dto.EntitlementResponse, 0, len(grants))
	for _, g := range grants {
		responses = append(responses, toEntitlementResponse(g, now, uc.policy.TrialDuration()))
	}

	return &dto.ListEntitlementsResponse{
		Entitlements: responses,
		Total:        len(responses),
	}, nil
}
