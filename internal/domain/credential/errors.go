package credential

import "errors"

var (
	// ErrCredentialNotFound is returned when a credential is not found
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrOwnerIDRequired is returned when the owner ID is missing
	ErrOwnerIDRequired = errors.New("owner ID is required")

	// ErrTokenRequired is returned when the token value is missing
	ErrTokenRequired = errors.New("token is required")

	// ErrTokenUnchanged is returned when a rotation produced the same token value
	ErrTokenUnchanged = errors.New("rotated token must differ from the current token")

	// ErrDuplicateCredential is returned when a credential already exists for the owner
	ErrDuplicateCredential = errors.New("credential already exists for this owner")
)
