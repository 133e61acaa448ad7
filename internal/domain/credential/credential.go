// Package credential provides domain models and business logic for webhook
// credentials. A credential binds one opaque bearer token to one owning
// resource and authorizes ledger mutations scoped to that owner.
package credential

import (
	"fmt"
	"time"
)

// Credential represents the webhook credential aggregate root.
// At most one live credential exists per owning resource; rotating it
// replaces the token value so the previous token stops authorizing
// requests the instant the rotation commits.
type Credential struct {
	id        uint
	sid       string
	ownerID   string
	token     string
	createdAt time.Time
	rotatedAt *time.Time
}

// NewCredential creates a new credential for the given owner with a freshly
// generated token value.
func NewCredential(sid, ownerID, token string) (*Credential, error) {
	if sid == "" {
		return nil, fmt.Errorf("credential SID is required")
	}
	if ownerID == "" {
		return nil, ErrOwnerIDRequired
	}
	if token == "" {
		return nil, ErrTokenRequired
	}

	return &Credential{
		sid:       sid,
		ownerID:   ownerID,
		token:     token,
		createdAt: time.Now(),
	}, nil
}

// ReconstructCredential reconstructs a credential from persistence.
func ReconstructCredential(
	id uint,
	sid string,
	ownerID string,
	token string,
	createdAt time.Time,
	rotatedAt *time.Time,
) (*Credential, error) {
	if id == 0 {
		return nil, fmt.Errorf("credential ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("credential SID is required")
	}
	if ownerID == "" {
		return nil, ErrOwnerIDRequired
	}
	if token == "" {
		return nil, ErrTokenRequired
	}

	return &Credential{
		id:        id,
		sid:       sid,
		ownerID:   ownerID,
		token:     token,
		createdAt: createdAt,
		rotatedAt: rotatedAt,
	}, nil
}

// ID returns the credential ID
func (c *Credential) ID() uint {
	return c.id
}

// SID returns the credential short ID
func (c *Credential) SID() string {
	return c.sid
}

// OwnerID returns the owning resource ID
func (c *Credential) OwnerID() string {
	return c.ownerID
}

// Token returns the live opaque token value
func (c *Credential) Token() string {
	return c.token
}

// CreatedAt returns when the credential was first issued
func (c *Credential) CreatedAt() time.Time {
	return c.createdAt
}

// RotatedAt returns when the credential was last rotated, nil if never
func (c *Credential) RotatedAt() *time.Time {
	return c.rotatedAt
}

// SetID sets the credential ID (only for persistence layer use)
func (c *Credential) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("credential ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("credential ID cannot be zero")
	}
	c.id = id
	return nil
}

// Rotate replaces the live token value. The previous token must be rejected
// by verification immediately after the rotation is persisted.
func (c *Credential) Rotate(newToken string) error {
	if newToken == "" {
		return ErrTokenRequired
	}
	if newToken == c.token {
		return ErrTokenUnchanged
	}

	now := time.Now()
	c.token = newToken
	c.rotatedAt = &now
	return nil
}
