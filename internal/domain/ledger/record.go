package ledger

import (
	"fmt"
	"time"
)

// Record represents one line item in an owner's private ledger.
// Records are only ever added or removed as whole rows; there is no
// in-place amount or category update, which keeps the mutation
// operations easy to reason about.
type Record struct {
	id          uint
	sid         string
	ownerID     string
	kind        Kind
	category    string
	amountCents int64
	occurredOn  time.Time
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRecord creates a new ledger record
func NewRecord(
	sid string,
	ownerID string,
	kind Kind,
	category string,
	amountCents int64,
	occurredOn time.Time,
	description string,
) (*Record, error) {
	if sid == "" {
		return nil, fmt.Errorf("record SID is required")
	}
	if ownerID == "" {
		return nil, ErrOwnerIDRequired
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	if category == "" {
		return nil, ErrCategoryRequired
	}
	if occurredOn.IsZero() {
		occurredOn = time.Now()
	}

	now := time.Now()
	return &Record{
		sid:         sid,
		ownerID:     ownerID,
		kind:        kind,
		category:    category,
		amountCents: amountCents,
		occurredOn:  occurredOn,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructRecord reconstructs a ledger record from persistence
func ReconstructRecord(
	id uint,
	sid string,
	ownerID string,
	kind Kind,
	category string,
	amountCents int64,
	occurredOn time.Time,
	description string,
	createdAt, updatedAt time.Time,
) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("record ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("record SID is required")
	}
	if ownerID == "" {
		return nil, ErrOwnerIDRequired
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	if category == "" {
		return nil, ErrCategoryRequired
	}

	return &Record{
		id:          id,
		sid:         sid,
		ownerID:     ownerID,
		kind:        kind,
		category:    category,
		amountCents: amountCents,
		occurredOn:  occurredOn,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the record ID
func (r *Record) ID() uint {
	return r.id
}

// SID returns the record short ID
func (r *Record) SID() string {
	return r.sid
}

// OwnerID returns the owning resource ID
func (r *Record) OwnerID() string {
	return r.ownerID
}

// Kind returns the record kind
func (r *Record) Kind() Kind {
	return r.kind
}

// Category returns the record category
func (r *Record) Category() string {
	return r.category
}

// AmountCents returns the amount in minor currency units
func (r *Record) AmountCents() int64 {
	return r.amountCents
}

// OccurredOn returns the date the record is attributed to
func (r *Record) OccurredOn() time.Time {
	return r.occurredOn
}

// Description returns the record description
func (r *Record) Description() string {
	return r.description
}

// CreatedAt returns when the record was created
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the record was last updated
func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}

// SetID sets the record ID (only for persistence layer use)
func (r *Record) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("record ID cannot be zero")
	}
	r.id = id
	return nil
}
