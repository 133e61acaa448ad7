package usecases

import (
	"time"

	"storecore/internal/application/entitlement/dto"
	"storecore/internal/domain/entitlement"
)

func toEntitlementResponse(e *entitlement.Entitlement, now time.Time, trialDuration time.Duration) *dto.EntitlementResponse {
	resp := &dto.EntitlementResponse{
		SID:         e.SID(),
		UserID:      e.UserID(),
		ProductSlug: e.ProductSlug(),
		Acquisition: e.Acquisition().String(),
		State:       e.State(now, trialDuration).String(),
		GrantedAt:   e.GrantedAt(),
		ExpiresAt:   e.ExpiresAt(),
		RentalStart: e.RentalStart(),
		RentalEnd:   e.RentalEnd(),
		Enabled:     e.Enabled(),
		Metadata:    e.Metadata(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
	if e.Acquisition() == entitlement.AcquisitionRental {
		resp.PaymentStatus = e.PaymentStatus().String()
	}
	return resp
}
