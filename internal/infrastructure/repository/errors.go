package repository

import (
	"fmt"

	"storecore/internal/shared/errors"
)

// mapStoreError converts a raw storage error into an application error so
// no gorm error ever escapes a repository. Timeouts become transient
// (retryable) failures; everything else wraps with context.
func mapStoreError(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.IsTimeoutError(err) {
		return errors.NewTransientError("store temporarily unavailable, try again", err.Error())
	}
	if errors.IsDuplicateError(err) {
		return errors.NewConflictError(message)
	}
	return fmt.Errorf("%s: %w", message, err)
}
