package engine

import (
	"errors"
	"fmt"

	"github.com/heartmarshall/insurance-crm/internal/domain"
)

// Code is the machine-readable outcome of an engine operation.
type Code string

const (
	CodeOK                Code = "OK"
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeReferenceNotFound Code = "REFERENCE_NOT_FOUND"
	CodeValidationFailed  Code = "VALIDATION_FAILED"
	CodeVersionConflict   Code = "VERSION_CONFLICT"
	CodeStoreFailure      Code = "STORE_FAILURE"
)

func (c Code) String() string { return string(c) }

// storeFailureMessage is all callers learn about unexpected errors.
const storeFailureMessage = "internal error"

// Result is what every engine operation returns. Errors never cross the
// engine boundary; they are folded into Code, Message and Fields.
type Result[T any] struct {
	OK      bool
	Code    Code
	Message string
	Fields  []domain.FieldError
	Data    T
}

func success[T any](data T) Result[T] {
	return Result[T]{OK: true, Code: CodeOK, Data: data}
}

func failure[T any](code Code, msg string, fields []domain.FieldError) Result[T] {
	return Result[T]{Code: code, Message: msg, Fields: fields}
}

// classify maps an error to its result code and public message.
func classify(kind domain.EntityKind, err error) (Code, string, []domain.FieldError) {
	var (
		ve  *domain.ValidationError
		rnf *domain.ReferenceNotFoundError
		vc  *domain.VersionConflictError
	)

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return CodeUnauthorized, "unauthorized", nil
	case errors.As(err, &ve):
		return CodeValidationFailed, ve.Error(), ve.Errors
	case errors.As(err, &rnf):
		return CodeReferenceNotFound, fmt.Sprintf("%s not found", rnf.Kind), nil
	case errors.Is(err, domain.ErrReferenceNotFound):
		return CodeReferenceNotFound, "reference not found", nil
	case errors.As(err, &vc):
		return CodeVersionConflict, vc.Error(), nil
	case errors.Is(err, domain.ErrVersionConflict):
		return CodeVersionConflict, "version conflict", nil
	case errors.Is(err, domain.ErrNotFound):
		return CodeNotFound, fmt.Sprintf("%s not found", kind), nil
	case errors.Is(err, domain.ErrAlreadyExists):
		return CodeValidationFailed, fmt.Sprintf("%s already exists", kind), nil
	case errors.Is(err, domain.ErrValidation):
		return CodeValidationFailed, "validation failed", nil
	default:
		return CodeStoreFailure, storeFailureMessage, nil
	}
}
