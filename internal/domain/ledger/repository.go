package ledger

import "context"

// Repository defines the interface for ledger persistence operations.
// Every method is scoped to one owner; there are no global mutations.
type Repository interface {
	// Insert inserts one new record
	Insert(ctx context.Context, r *Record) error

	// ReplaceCategory removes all records in (ownerID, category) and inserts
	// the replacement record in a single transaction. Returns the number of
	// removed records.
	ReplaceCategory(ctx context.Context, ownerID, category string, replacement *Record) (int, error)

	// ZeroCategory removes all records in (ownerID, category) in a single
	// transaction. Returns the number of removed records; zero is success.
	ZeroCategory(ctx context.Context, ownerID, category string) (int, error)

	// DeleteBySID removes the record with the given SID if it belongs to
	// ownerID. A missing record and a record owned by another tenant both
	// report not found, so existence never leaks across tenants.
	DeleteBySID(ctx context.Context, ownerID, sid string) error

	// ListByOwner returns all records for an owner, optionally filtered by kind
	ListByOwner(ctx context.Context, ownerID string, kind *Kind) ([]*Record, error)

	// ListByCategory returns all records in (ownerID, category)
	ListByCategory(ctx context.Context, ownerID, category string) ([]*Record, error)
}
