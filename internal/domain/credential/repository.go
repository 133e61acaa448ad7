package credential

import "context"

// Repository defines the interface for credential persistence operations
type Repository interface {
	// Create creates a new credential. Returns a conflict error if a live
	// credential already exists for the owner.
	Create(ctx context.Context, c *Credential) error

	// UpdateToken atomically replaces the token value of the owner's live
	// credential. The store must guarantee no window in which both the old
	// and new token resolve.
	UpdateToken(ctx context.Context, c *Credential) error

	// GetByOwner retrieves the live credential for an owner
	GetByOwner(ctx context.Context, ownerID string) (*Credential, error)

	// GetByToken resolves a presented token to its credential.
	// Resolution is an indexed lookup by token value, never a scan.
	GetByToken(ctx context.Context, token string) (*Credential, error)
}
