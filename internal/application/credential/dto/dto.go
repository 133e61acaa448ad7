package dto

import (
	"time"
)

// TokenResponse represents the response carrying a webhook token.
// The full token value is only returned to the admin surface; request
// logs always use the masked form.
type TokenResponse struct {
	OwnerID   string     `json:"owner_id"`
	Token     string     `json:"token"`
	Created   bool       `json:"created"` // true when this call minted the token
	CreatedAt time.Time  `json:"created_at"`
	RotatedAt *time.Time `json:"rotated_at,omitempty"`
}
