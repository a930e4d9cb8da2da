package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrReferenceNotFound = errors.New("reference not found")
	ErrVersionConflict   = errors.New("version conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ReferenceNotFoundError reports a missing foreign entity, e.g. "customer".
type ReferenceNotFoundError struct {
	Kind string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("reference not found: %s", e.Kind)
}

func (e *ReferenceNotFoundError) Unwrap() error { return ErrReferenceNotFound }

// NewReferenceNotFound creates a ReferenceNotFoundError for the given entity kind.
func NewReferenceNotFound(kind string) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Kind: kind}
}

// VersionConflictError is returned when an update was based on a stale version.
type VersionConflictError struct {
	Expected int
	Actual   int
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("version conflict: expected %d, stored %d", e.Expected, e.Actual)
}

func (e *VersionConflictError) Unwrap() error { return ErrVersionConflict }
