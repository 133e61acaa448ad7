package ledger

import "errors"

var (
	// ErrRecordNotFound is returned when a ledger record is not found
	ErrRecordNotFound = errors.New("ledger record not found")

	// ErrOwnerIDRequired is returned when the owner ID is missing
	ErrOwnerIDRequired = errors.New("owner ID is required")

	// ErrCategoryRequired is returned when the category is missing
	ErrCategoryRequired = errors.New("category is required")

	// ErrRecordIDRequired is returned when the record ID is missing
	ErrRecordIDRequired = errors.New("record ID is required")

	// ErrInvalidKind is returned when an invalid record kind is provided
	ErrInvalidKind = errors.New("invalid record kind")

	// ErrInvalidOperation is returned when an unknown operation is requested
	ErrInvalidOperation = errors.New("invalid ledger operation")

	// ErrInvalidAmount is returned when the amount is missing or not a finite number
	ErrInvalidAmount = errors.New("amount must be a finite number")
)
