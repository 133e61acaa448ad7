package entitlement

import (
	"context"
	"time"
)

// Repository defines the interface for entitlement persistence operations
type Repository interface {
	// Create creates a new entitlement. The store enforces at most one
	// lifetime trial row per (user, product), turning a concurrent double
	// activation into one winner and one conflict error.
	Create(ctx context.Context, e *Entitlement) error

	// CreateWithTrialCap creates a trial entitlement after re-checking the
	// concurrent-trial cap inside a single transaction with the insert.
	// A trial counts against the cap while now is within trialDuration of
	// its grant time.
	CreateWithTrialCap(ctx context.Context, e *Entitlement, maxConcurrentTrials int, trialDuration time.Duration) error

	// Update persists mutated aggregate state (enabled flag, payment status)
	Update(ctx context.Context, e *Entitlement) error

	// GetBySID retrieves an entitlement by its short ID
	GetBySID(ctx context.Context, sid string) (*Entitlement, error)

	// GetByUserAndProduct retrieves all grants for a user-product pair
	GetByUserAndProduct(ctx context.Context, userID, productSlug string) ([]*Entitlement, error)

	// GetByUser retrieves all grants for a user across the catalog
	GetByUser(ctx context.Context, userID string) ([]*Entitlement, error)
}
