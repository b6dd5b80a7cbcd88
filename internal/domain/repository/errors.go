package repository

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("record not found")
var ErrInvalidCursor = errors.New("invalid cursor")

// ConflictError reports a uniqueness violation and always names the field the
// caller can change to recover.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("an item with the same %s '%s' already exists", e.Field, e.Value)
}

func Conflict(field, value string) *ConflictError {
	return &ConflictError{Field: field, Value: value}
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// ValidationError covers malformed input that slipped past upstream form
// validation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validation(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
