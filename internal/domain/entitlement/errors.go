package entitlement

import "errors"

var (
	// ErrEntitlementNotFound is returned when an entitlement is not found
	ErrEntitlementNotFound = errors.New("entitlement not found")

	// ErrUserIDRequired is returned when the user ID is missing
	ErrUserIDRequired = errors.New("user ID is required")

	// ErrProductSlugRequired is returned when the product slug is missing
	ErrProductSlugRequired = errors.New("product slug is required")

	// ErrInvalidAcquisitionType is returned when an invalid acquisition type is provided
	ErrInvalidAcquisitionType = errors.New("invalid acquisition type")

	// ErrInvalidPaymentStatus is returned when an invalid payment status is provided
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrRentalWindowRequired is returned when a rental is missing its window
	ErrRentalWindowRequired = errors.New("rental start and end are required")

	// ErrInvalidRentalWindow is returned when the rental end precedes its start
	ErrInvalidRentalWindow = errors.New("rental end must be after rental start")

	// ErrNotARental is returned when a payment-status update targets a non-rental grant
	ErrNotARental = errors.New("payment status applies only to rental grants")

	// ErrTrialAlreadyUsed is returned when the user already held a trial for
	// the product; trials are one per product per user, lifetime
	ErrTrialAlreadyUsed = errors.New("trial already used for this product")

	// ErrTrialLimitReached is returned when the user already holds the
	// maximum number of concurrently active trials
	ErrTrialLimitReached = errors.New("active trial limit reached")

	// ErrDuplicateGrant is returned when an active purchase or rental grant
	// already exists for the user-product pair
	ErrDuplicateGrant = errors.New("an active grant already exists for this product")
)
