// Package entitlement provides domain models and business logic for product
// access grants. A grant records that a user acquired access to a product by
// purchase, rental, or time-boxed trial; whether it currently grants access
// is derived from stored timestamps at read time, never by a background job.
package entitlement

// AcquisitionType represents how the grant was acquired
type AcquisitionType string

const (
	// AcquisitionPurchase represents a one-time purchase with permanent access
	AcquisitionPurchase AcquisitionType = "purchase"
	// AcquisitionRental represents a time-boxed rental with its own payment status
	AcquisitionRental AcquisitionType = "rental"
	// AcquisitionTrial represents a time-boxed free trial
	AcquisitionTrial AcquisitionType = "trial"
)

// IsValid checks if the acquisition type is valid
func (at AcquisitionType) IsValid() bool {
	switch at {
	case AcquisitionPurchase, AcquisitionRental, AcquisitionTrial:
		return true
	default:
		return false
	}
}

// String returns the string representation of the acquisition type
func (at AcquisitionType) String() string {
	return string(at)
}

// PaymentStatus represents the payment state of a rental grant.
// It gates access independently of the rental window.
type PaymentStatus string

const (
	// PaymentStatusActive indicates payment is current
	PaymentStatusActive PaymentStatus = "active"
	// PaymentStatusPending indicates payment has not settled yet
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusFailed indicates payment failed
	PaymentStatusFailed PaymentStatus = "failed"
)

// IsValid checks if the payment status is valid
func (ps PaymentStatus) IsValid() bool {
	switch ps {
	case PaymentStatusActive, PaymentStatusPending, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the payment status
func (ps PaymentStatus) String() string {
	return string(ps)
}

// State is the derived state of a grant at a point in time
type State string

const (
	// StateDisabled indicates the grant was soft-disabled by an admin;
	// it overrides every other condition
	StateDisabled State = "disabled"
	// StatePurchased indicates a permanent purchase grant
	StatePurchased State = "purchased"
	// StateRentalActive indicates a rental within its window with payment current
	StateRentalActive State = "rental_active"
	// StateRentalLapsed indicates a rental past its window or with payment not current
	StateRentalLapsed State = "rental_lapsed"
	// StateTrialActive indicates a trial within its window
	StateTrialActive State = "trial_active"
	// StateTrialExpired indicates a trial past its window
	StateTrialExpired State = "trial_expired"
)

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// GrantsAccess reports whether a grant in this state allows product access
func (s State) GrantsAccess() bool {
	switch s {
	case StatePurchased, StateRentalActive, StateTrialActive:
		return true
	default:
		return false
	}
}
