package taxonomy

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an operation targets a key or id that does
// not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed input, tied to the offending field so
// callers can render a per-field message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ConflictError reports a uniqueness violation or a referential guard
// refusing an operation.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Field + ": " + e.Message
}

// TranslateDuplicate converts the storage layer's duplicate-key error into a
// ConflictError on the given field, so the losing side of a write race gets
// the same answer the pre-check would have given. Other errors pass through.
func TranslateDuplicate(err error, field, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConflictError{Field: field, Message: message}
	}
	return err
}
