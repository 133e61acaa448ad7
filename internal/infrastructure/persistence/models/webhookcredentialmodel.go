package models

import (
	"time"

	"storecore/internal/shared/constants"
)

// WebhookCredentialModel represents the database persistence model for
// webhook credentials. The unique index on owner_id keeps at most one live
// credential per owning resource; the unique index on token makes
// verification an indexed equality lookup.
type WebhookCredentialModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"column:sid;not null;size:20;uniqueIndex:idx_whc_sid"`
	OwnerID   string `gorm:"not null;size:64;uniqueIndex:idx_whc_owner"`
	Token     string `gorm:"not null;size:128;uniqueIndex:idx_whc_token"`
	CreatedAt time.Time
	RotatedAt *time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (WebhookCredentialModel) TableName() string {
	return constants.TableWebhookCredentials
}
