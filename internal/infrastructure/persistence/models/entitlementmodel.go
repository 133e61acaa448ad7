package models

import (
	"time"

	"gorm.io/datatypes"

	"storecore/internal/shared/constants"
)

// EntitlementModel represents the database persistence model for entitlements
// This is the anti-corruption layer between domain and database
// The unique index on (user, product, acquisition) enforces one grant row
// per acquisition type: the lifetime one-trial rule for trials, and a
// single renewable row for purchases and rentals.
type EntitlementModel struct {
	ID            uint      `gorm:"primarykey"`
	SID           string    `gorm:"column:sid;not null;size:20;uniqueIndex:idx_ent_sid"`
	UserID        string    `gorm:"not null;size:64;uniqueIndex:idx_user_product_acq,priority:1;index:idx_ent_user"`
	ProductSlug   string    `gorm:"not null;size:128;uniqueIndex:idx_user_product_acq,priority:2"`
	Acquisition   string    `gorm:"not null;size:20;uniqueIndex:idx_user_product_acq,priority:3"`
	GrantedAt     time.Time `gorm:"not null"`
	ExpiresAt     *time.Time
	RentalStart   *time.Time
	RentalEnd     *time.Time
	PaymentStatus string `gorm:"size:20"`
	Enabled       bool   `gorm:"not null;default:true"`
	Metadata      datatypes.JSON
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM
func (EntitlementModel) TableName() string {
	return constants.TableEntitlements
}
