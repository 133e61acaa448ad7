package ledger

import (
	"fmt"
	"time"
)

// Operation is one tenant-scoped ledger mutation. The concrete type carries
// exactly the fields its semantics need, so required-field checks are an
// exhaustive switch instead of a runtime if chain over an open envelope.
type Operation interface {
	// Type returns the operation discriminant
	Type() OperationType
	// Validate checks the operation's required fields
	Validate() error
}

// AddOperation inserts one new record into the owner's ledger.
type AddOperation struct {
	Kind        Kind
	Category    string
	AmountCents int64
	OccurredOn  time.Time
	Description string
}

// Type returns the operation discriminant
func (op AddOperation) Type() OperationType { return OperationAdd }

// Validate checks the operation's required fields
func (op AddOperation) Validate() error {
	if !op.Kind.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidKind, op.Kind)
	}
	if op.Category == "" {
		return ErrCategoryRequired
	}
	return nil
}

// ReplaceOperation atomically removes every record in the owner's category
// and inserts exactly one record with the replacement amount.
type ReplaceOperation struct {
	Kind        Kind
	Category    string
	AmountCents int64
	OccurredOn  time.Time
	Description string
}

// Type returns the operation discriminant
func (op ReplaceOperation) Type() OperationType { return OperationReplace }

// Validate checks the operation's required fields
func (op ReplaceOperation) Validate() error {
	if !op.Kind.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidKind, op.Kind)
	}
	if op.Category == "" {
		return ErrCategoryRequired
	}
	return nil
}

// ZeroOperation atomically removes every record in the owner's category.
// Zeroing an already-empty category is a successful no-op.
type ZeroOperation struct {
	Category string
}

// Type returns the operation discriminant
func (op ZeroOperation) Type() OperationType { return OperationZero }

// Validate checks the operation's required fields
func (op ZeroOperation) Validate() error {
	if op.Category == "" {
		return ErrCategoryRequired
	}
	return nil
}

// DeleteByIDOperation removes one record by its SID, if it exists and
// belongs to the owner. A record owned by another tenant is reported as
// not found, never as a permission failure.
type DeleteByIDOperation struct {
	SID string
}

// Type returns the operation discriminant
func (op DeleteByIDOperation) Type() OperationType { return OperationDeleteByID }

// Validate checks the operation's required fields
func (op DeleteByIDOperation) Validate() error {
	if op.SID == "" {
		return ErrRecordIDRequired
	}
	return nil
}

// MutationResult summarizes a successfully applied operation.
type MutationResult struct {
	Operation OperationType
	Affected  int
}
