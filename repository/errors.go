package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError reports a schema violation (missing or mistyped
// required field, malformed reference). The message comes from the
// validator and is safe to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation on create.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func validationError(err error) error {
	return &ValidationError{Message: err.Error()}
}

// translateWriteError maps storage-level uniqueness violations into the
// typed taxonomy; everything else passes through untouched.
func translateWriteError(err error, conflictMsg string) error {
	if mongo.IsDuplicateKeyError(err) {
		return &ConflictError{Message: conflictMsg}
	}
	return err
}
