// Package ledger provides domain models and business logic for the private
// financial/billing ledger. Every record belongs to exactly one owning
// resource, and every mutation is scoped to that owner.
package ledger

// Kind represents the kind of ledger record
type Kind string

const (
	// KindIncome represents an income line item
	KindIncome Kind = "income"
	// KindExpense represents an expense line item
	KindExpense Kind = "expense"
	// KindInvoice represents a billing invoice row
	KindInvoice Kind = "invoice"
)

// IsValid checks if the kind is valid
func (k Kind) IsValid() bool {
	switch k {
	case KindIncome, KindExpense, KindInvoice:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// OperationType discriminates ledger mutation operations
type OperationType string

const (
	// OperationAdd inserts one new record
	OperationAdd OperationType = "add"
	// OperationReplace replaces all records in a category with a single record
	OperationReplace OperationType = "replace"
	// OperationZero removes all records in a category
	OperationZero OperationType = "zero"
	// OperationDeleteByID removes one record by its ID
	OperationDeleteByID OperationType = "delete_by_id"
)

// IsValid checks if the operation type is valid
func (ot OperationType) IsValid() bool {
	switch ot {
	case OperationAdd, OperationReplace, OperationZero, OperationDeleteByID:
		return true
	default:
		return false
	}
}

// String returns the string representation of the operation type
func (ot OperationType) String() string {
	return string(ot)
}
