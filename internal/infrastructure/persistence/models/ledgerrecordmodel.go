package models

import (
	"time"

	"storecore/internal/shared/constants"
)

// LedgerRecordModel represents the database persistence model for ledger records
// This is the anti-corruption layer between domain and database
// All queries against this table are scoped to owner_id; the composite
// index supports the category-scoped bulk operations.
type LedgerRecordModel struct {
	ID          uint      `gorm:"primarykey"`
	SID         string    `gorm:"column:sid;not null;size:20;uniqueIndex:idx_lr_sid"`
	OwnerID     string    `gorm:"not null;size:64;index:idx_owner_category,priority:1"`
	Kind        string    `gorm:"not null;size:20"`
	Category    string    `gorm:"not null;size:128;index:idx_owner_category,priority:2"`
	AmountCents int64     `gorm:"not null"`
	OccurredOn  time.Time `gorm:"not null"`
	Description string    `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (LedgerRecordModel) TableName() string {
	return constants.TableLedgerRecords
}
