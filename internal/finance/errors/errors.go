package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError carries field-keyed messages rendered as an HTTP 422 body.
type ValidationError struct {
	Msg    string
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Msg
	}
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, "; ")))
	}
	return fmt.Sprintf("%s (%s)", e.Msg, strings.Join(parts, ", "))
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// NewFieldValidationError builds a validation error for a single offending field.
func NewFieldValidationError(field, msg string) error {
	return &ValidationError{
		Msg:    "The given data was invalid.",
		Fields: map[string][]string{field: {msg}},
	}
}

// NewFieldsValidationError builds a validation error covering several fields at once.
func NewFieldsValidationError(fields map[string][]string) error {
	return &ValidationError{
		Msg:    "The given data was invalid.",
		Fields: fields,
	}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// AsValidationError unwraps err into a *ValidationError, or nil.
func AsValidationError(err error) *ValidationError {
	var validationError *ValidationError
	if errors.As(err, &validationError) {
		return validationError
	}
	return nil
}

// NotFoundError marks a missing entity, or one not owned by the caller.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

var (
	ErrInvalidTransactionType = NewFieldValidationError("type", "The type must be income or expense.")
	ErrInvalidCategory        = NewFieldValidationError("category_id", "The selected category id is invalid.")
	ErrCategoryNotFound       = NewNotFoundError("Category not found")
	ErrTransactionNotFound    = NewNotFoundError("Transaction not found")
)
