package entitlement

import (
	"fmt"
	"time"
)

const (
	// DefaultTrialDuration is the trial access window measured from grant time
	DefaultTrialDuration = 48 * time.Hour

	// DefaultMaxConcurrentTrials caps simultaneously active trials per user
	// across the whole catalog
	DefaultMaxConcurrentTrials = 2
)

// Entitlement represents the grant aggregate root. One entitlement grants
// one user access to one product through a purchase, rental, or trial.
// Grants are never physically deleted; expiry is derived from timestamps
// and admin removal flips the enabled flag, preserving audit history.
type Entitlement struct {
	id            uint
	sid           string
	userID        string
	productSlug   string
	acquisition   AcquisitionType
	grantedAt     time.Time
	expiresAt     *time.Time
	rentalStart   *time.Time
	rentalEnd     *time.Time
	paymentStatus PaymentStatus
	enabled       bool
	metadata      map[string]any
	createdAt     time.Time
	updatedAt     time.Time
	version       int
}

// NewPurchase creates a permanent purchase grant. Purchases carry no
// expiration; expiresAt stays nil.
func NewPurchase(sid, userID, productSlug string) (*Entitlement, error) {
	if err := validateIdentity(sid, userID, productSlug); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Entitlement{
		sid:         sid,
		userID:      userID,
		productSlug: productSlug,
		acquisition: AcquisitionPurchase,
		grantedAt:   now,
		enabled:     true,
		metadata:    make(map[string]any),
		createdAt:   now,
		updatedAt:   now,
		version:     1,
	}, nil
}

// NewRental creates a rental grant with an access window and payment status.
func NewRental(sid, userID, productSlug string, rentalStart, rentalEnd time.Time, paymentStatus PaymentStatus) (*Entitlement, error) {
	if err := validateIdentity(sid, userID, productSlug); err != nil {
		return nil, err
	}
	if rentalStart.IsZero() || rentalEnd.IsZero() {
		return nil, ErrRentalWindowRequired
	}
	if !rentalEnd.After(rentalStart) {
		return nil, ErrInvalidRentalWindow
	}
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentStatus, paymentStatus)
	}

	now := time.Now()
	return &Entitlement{
		sid:           sid,
		userID:        userID,
		productSlug:   productSlug,
		acquisition:   AcquisitionRental,
		grantedAt:     now,
		rentalStart:   &rentalStart,
		rentalEnd:     &rentalEnd,
		paymentStatus: paymentStatus,
		enabled:       true,
		metadata:      make(map[string]any),
		createdAt:     now,
		updatedAt:     now,
		version:       1,
	}, nil
}

// NewTrial creates a time-boxed trial grant. The access window is derived
// from grantedAt at read time.
func NewTrial(sid, userID, productSlug string) (*Entitlement, error) {
	if err := validateIdentity(sid, userID, productSlug); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Entitlement{
		sid:         sid,
		userID:      userID,
		productSlug: productSlug,
		acquisition: AcquisitionTrial,
		grantedAt:   now,
		enabled:     true,
		metadata:    make(map[string]any),
		createdAt:   now,
		updatedAt:   now,
		version:     1,
	}, nil
}

func validateIdentity(sid, userID, productSlug string) error {
	if sid == "" {
		return fmt.Errorf("entitlement SID is required")
	}
	if userID == "" {
		return ErrUserIDRequired
	}
	if productSlug == "" {
		return ErrProductSlugRequired
	}
	return nil
}

// ReconstructParams carries the fields needed to rebuild an entitlement
// from persistence.
type ReconstructParams struct {
	ID            uint
	SID           string
	UserID        string
	ProductSlug   string
	Acquisition   AcquisitionType
	GrantedAt     time.Time
	ExpiresAt     *time.Time
	RentalStart   *time.Time
	RentalEnd     *time.Time
	PaymentStatus PaymentStatus
	Enabled       bool
	Metadata      map[string]any
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int
}

// Reconstruct reconstructs an entitlement from persistence
func Reconstruct(p ReconstructParams) (*Entitlement, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("entitlement ID cannot be zero")
	}
	if err := validateIdentity(p.SID, p.UserID, p.ProductSlug); err != nil {
		return nil, err
	}
	if !p.Acquisition.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAcquisitionType, p.Acquisition)
	}
	if p.Acquisition == AcquisitionRental && !p.PaymentStatus.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentStatus, p.PaymentStatus)
	}
	if p.Metadata == nil {
		p.Metadata = make(map[string]any)
	}

	return &Entitlement{
		id:            p.ID,
		sid:           p.SID,
		userID:        p.UserID,
		productSlug:   p.ProductSlug,
		acquisition:   p.Acquisition,
		grantedAt:     p.GrantedAt,
		expiresAt:     p.ExpiresAt,
		rentalStart:   p.RentalStart,
		rentalEnd:     p.RentalEnd,
		paymentStatus: p.PaymentStatus,
		enabled:       p.Enabled,
		metadata:      p.Metadata,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		version:       p.Version,
	}, nil
}

// ID returns the entitlement ID
func (e *Entitlement) ID() uint {
	return e.id
}

// SID returns the entitlement short ID
func (e *Entitlement) SID() string {
	return e.sid
}

// UserID returns the granted user's ID
func (e *Entitlement) UserID() string {
	return e.userID
}

// ProductSlug returns the granted product's slug
func (e *Entitlement) ProductSlug() string {
	return e.productSlug
}

// Acquisition returns how the grant was acquired
func (e *Entitlement) Acquisition() AcquisitionType {
	return e.acquisition
}

// GrantedAt returns when the grant was created
func (e *Entitlement) GrantedAt() time.Time {
	return e.grantedAt
}

// ExpiresAt returns the explicit expiration time, nil for permanent grants
func (e *Entitlement) ExpiresAt() *time.Time {
	return e.expiresAt
}

// RentalStart returns the rental window start, nil for non-rentals
func (e *Entitlement) RentalStart() *time.Time {
	return e.rentalStart
}

// RentalEnd returns the rental window end, nil for non-rentals
func (e *Entitlement) RentalEnd() *time.Time {
	return e.rentalEnd
}

// PaymentStatus returns the rental payment status
func (e *Entitlement) PaymentStatus() PaymentStatus {
	return e.paymentStatus
}

// Enabled returns false if an admin soft-disabled the grant
func (e *Entitlement) Enabled() bool {
	return e.enabled
}

// Metadata returns the entitlement metadata
func (e *Entitlement) Metadata() map[string]any {
	return e.metadata
}

// CreatedAt returns when the entitlement was created
func (e *Entitlement) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns when the entitlement was last updated
func (e *Entitlement) UpdatedAt() time.Time {
	return e.updatedAt
}

// Version returns the aggregate version for optimistic locking
func (e *Entitlement) Version() int {
	return e.version
}

// SetID sets the entitlement ID (only for persistence layer use)
func (e *Entitlement) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entitlement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entitlement ID cannot be zero")
	}
	e.id = id
	return nil
}

// Disable soft-disables the grant. A disabled grant never grants access
// regardless of purchase, rental, or trial state.
func (e *Entitlement) Disable() {
	if !e.enabled {
		return
	}
	e.enabled = false
	e.updatedAt = time.Now()
	e.version++
}

// Enable re-enables a soft-disabled grant. Time-based expiry still applies.
func (e *Entitlement) Enable() {
	if e.enabled {
		return
	}
	e.enabled = true
	e.updatedAt = time.Now()
	e.version++
}

// UpdatePaymentStatus records a payment-status callback for a rental grant.
func (e *Entitlement) UpdatePaymentStatus(status PaymentStatus) error {
	if e.acquisition != AcquisitionRental {
		return ErrNotARental
	}
	if !status.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidPaymentStatus, status)
	}
	if e.paymentStatus == status {
		return nil
	}

	e.paymentStatus = status
	e.updatedAt = time.Now()
	e.version++
	return nil
}

// RenewRental replaces the access window of a rental grant. A repeat
// checkout renews the existing row instead of growing a second one, so
// the store keeps at most one rental per user-product pair.
func (e *Entitlement) RenewRental(rentalStart, rentalEnd time.Time, paymentStatus PaymentStatus) error {
	if e.acquisition != AcquisitionRental {
		return ErrNotARental
	}
	if rentalStart.IsZero() || rentalEnd.IsZero() {
		return ErrRentalWindowRequired
	}
	if !rentalEnd.After(rentalStart) {
		return ErrInvalidRentalWindow
	}
	if !paymentStatus.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidPaymentStatus, paymentStatus)
	}

	e.rentalStart = &rentalStart
	e.rentalEnd = &rentalEnd
	e.paymentStatus = paymentStatus
	e.updatedAt = time.Now()
	e.version++
	return nil
}

// State computes the grant's derived state at the given instant. Disabled
// dominates everything; the remaining states follow from the acquisition
// type and stored timestamps.
func (e *Entitlement) State(now time.Time, trialDuration time.Duration) State {
	if !e.enabled {
		return StateDisabled
	}

	switch e.acquisition {
	case AcquisitionPurchase:
		// Purchases are permanent baseline access; expiresAt stays nil.
		return StatePurchased
	case AcquisitionRental:
		if e.rentalEnd == nil || now.After(*e.rentalEnd) || e.paymentStatus != PaymentStatusActive {
			return StateRentalLapsed
		}
		// The window has a start bound too; a pre-booked rental grants
		// nothing until it opens.
		if e.rentalStart != nil && now.Before(*e.rentalStart) {
			return StateRentalLapsed
		}
		return StateRentalActive
	case AcquisitionTrial:
		if now.After(e.grantedAt.Add(trialDuration)) {
			return StateTrialExpired
		}
		return StateTrialActive
	default:
		return StateDisabled
	}
}

// GrantsAccess reports whether this grant allows access at the given instant.
func (e *Entitlement) GrantsAccess(now time.Time, trialDuration time.Duration) bool {
	return e.State(now, trialDuration).GrantsAccess()
}
