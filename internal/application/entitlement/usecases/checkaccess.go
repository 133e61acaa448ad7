package usecases

import (
	"context"
	"time"

	"storecore/internal/application/entitlement/dto"
	"storecore/internal/domain/entitlement"
	"storecore/internal/shared/errors"
	"storecore/internal/shared/logger"
)

// CheckAccessUseCase handles the business logic for deciding whether a
// user currently has access to a product. The check fails closed: a store
// error surfaces as an error, never as a granted-access answer.
type CheckAccessUseCase struct {
	entitlementRepo entitlement.Repository
	policy          *entitlement.AccessPolicy
	logger          logger.Interface
}

// NewCheckAccessUseCase creates a new check access use case
func NewCheckAccessUseCase(
	entitlementRepo entitlement.Repository,
	policy *entitlement.AccessPolicy,
	logger logger.Interface,
) *CheckAccessUseCase {
	return &CheckAccessUseCase{
		entitlementRepo: entitlementRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute executes the check access use case
func (uc *CheckAccessUseCase) Execute(
	ctx context.Context,
	userID, productSlug string,
) (*dto.AccessResponse, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}
	if productSlug == "" {
		return nil, errors.NewValidationError("product slug is required")
	}

	grants, err := uc.entitlementRepo.GetByUserAndProduct(ctx, userID, productSlug)
	if err != nil {
		uc.logger.Errorw("access check failed",
			"user_id", userID,
			"product_slug", productSlug,
			"error", err)
		return nil, err
	}

	hasAccess := uc.policy.Decide(grants, time.Now())

	uc.logger.Debugw("access decided",
		"user_id", userID,
		"product_slug", productSlug,
		"has_access", hasAccess,
		"grants", len(grants))

	return &dto.AccessResponse{
		UserID:      userID,
		ProductSlug: productSlug,
		HasAccess:   hasAccess,
	}, nil
}
