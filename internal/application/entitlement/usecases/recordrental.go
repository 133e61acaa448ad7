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

// RecordRentalUseCase handles the business logic for recording a rental
// grant. A repeat checkout for the same user-product pair renews the
// existing rental row instead of creating a second one.
type RecordRentalUseCase struct {
	entitlementRepo entitlement.Repository
	policy          *entitlement.AccessPolicy
	logger          logger.Interface
}

// NewRecordRentalUseCase creates a new record rental use case
func NewRecordRentalUseCase(
	entitlementRepo entitlement.Repository,
	policy *entitlement.AccessPolicy,
	logger logger.Interface,
) *RecordRentalUseCase {
	return &RecordRentalUseCase{
		entitlementRepo: entitlementRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute executes the record rental use case
func (uc *RecordRentalUseCase) Execute(
	ctx context.Context,
	req *dto.RecordRentalRequest,
) (*dto.EntitlementResponse, error) {
	uc.logger.Infow("executing record rental use case",
		"user_id", req.UserID,
		"product_slug", req.ProductSlug,
		"rental_end", req.RentalEnd)

	status := entitlement.PaymentStatus(req.PaymentStatus)
	if !status.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid payment status: %s", req.PaymentStatus))
	}

	grants, err := uc.entitlementRepo.GetByUserAndProduct(ctx, req.UserID, req.ProductSlug)
	if err != nil {
		return nil, err
	}
	for _, g := range grants {
		if g.Acquisition() != entitlement.AcquisitionRental {
			continue
		}
		if err := g.RenewRental(req.RentalStart, req.RentalEnd, status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.entitlementRepo.Update(ctx, g); err != nil {
			return nil, err
		}
		uc.logger.Infow("rental renewed",
			"entitlement_id", g.SID(),
			"user_id", req.UserID,
			"product_slug", req.ProductSlug,
			"rental_end", req.RentalEnd)
		return toEntitlementResponse(g, time.Now(), uc.policy.TrialDuration()), nil
	}

	sid, err := id.NewEntitlementID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entitlement ID: %w", err)
	}

	e, err := entitlement.NewRental(sid, req.UserID, req.ProductSlug, req.RentalStart, req.RentalEnd, status)
	if err != nil {
		uc.logger.Warnw("invalid rental request",
			"user_id", req.UserID,
			"product_slug", req.ProductSlug,
			"error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.entitlementRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	uc.logger.Infow("rental recorded",
		"entitlement_id", e.SID(),
		"user_id", req.UserID,
		"product_slug", req.ProductSlug,
		"rental_end", req.RentalEnd)

	return toEntitlementResponse(e, time.Now(), uc.policy.TrialDuration()), nil
}
