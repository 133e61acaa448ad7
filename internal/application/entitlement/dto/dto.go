package dto

import (
	"time"
)

// RecordPurchaseRequest represents the request to record a permanent purchase
type RecordPurchaseRequest struct {
	UserID      string         `json:"user_id" binding:"required"`
	ProductSlug string         `json:"product_slug" binding:"required,slug"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// RecordRentalRequest represents the request to record or renew a rental
type RecordRentalRequest struct {
	UserID        string    `json:"user_id" binding:"required"`
	ProductSlug   string    `json:"product_slug" binding:"required,slug"`
	RentalStart   time.Time `json:"rental_start" binding:"required"`
	RentalEnd     time.Time `json:"rental_end" binding:"required"`
	PaymentStatus string    `json:"payment_status" binding:"required,oneof=active pending failed"`
}

// ActivateTrialRequest represents the request to activate a trial
type ActivateTrialRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	ProductSlug string `json:"product_slug" binding:"required,slug"`
}

// UpdatePaymentStatusRequest represents a payment-status callback for a rental
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=active pending failed"`
}

// SetEnabledRequest represents the request to soft-disable or re-enable a grant
type SetEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// EntitlementResponse represents the response for a single grant
type EntitlementResponse struct {
	SID           string         `json:"id"`     // Prefixed short ID (ent_...)
	UserID        string         `json:"user_id"`
	ProductSlug   string         `json:"product_slug"`
	Acquisition   string         `json:"acquisition"`   // "purchase" | "rental" | "trial"
	State         string         `json:"state"`         // Derived state at response time
	GrantedAt     time.Time      `json:"granted_at"`
	ExpiresAt     *time.Time     `json:"expires_at,omitempty"`
	RentalStart   *time.Time     `json:"rental_start,omitempty"`
	RentalEnd     *time.Time     `json:"rental_end,omitempty"`
	PaymentStatus string         `json:"payment_status,omitempty"`
	Enabled       bool           `json:"enabled"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// AccessResponse represents the response for an access check
type AccessResponse struct {
	UserID      string `json:"user_id"`
	ProductSlug string `json:"product_slug"`
	HasAccess   bool   `json:"has_access"`
}

// TrialSlotsResponse represents the response for remaining trial capacity
type TrialSlotsResponse struct {
	UserID         string `json:"user_id"`
	RemainingSlots int    `json:"remaining_slots"`
	MaxConcurrent  int    `json:"max_concurrent"`
}

// ListEntitlementsResponse represents the response for listing a user's grants
type ListEntitlementsResponse struct {
	Entitlements []*EntitlementResponse `json:"entitlements"`
	Total        int                    `json:"total"`
}
