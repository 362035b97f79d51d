// Package errors defines the typed application errors used across the
// analysis pipeline. Every failure path in the loaders, joins, and
// aggregation steps surfaces one of these types so that the CLI layer can
// report a precise diagnostic and exit non-zero without partial output.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	// ErrTypeConfig covers dataset-directory problems and missing files that
	// a requested analysis requires.
	ErrTypeConfig ErrorType = "CONFIG"

	// ErrTypeSchema indicates a required column is absent from a file header.
	ErrTypeSchema ErrorType = "SCHEMA"

	// ErrTypeEmptyResult indicates a filter, join, or grouping step yielded
	// zero rows or groups.
	ErrTypeEmptyResult ErrorType = "EMPTY_RESULT"

	// ErrTypeParameter indicates a numeric CLI parameter violates a
	// precondition.
	ErrTypeParameter ErrorType = "PARAMETER"

	// ErrTypeNotFound indicates an input file path does not exist.
	ErrTypeNotFound ErrorType = "NOT_FOUND"
)

// AppError is an application error with a type, message, and optional cause.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *AppError) Unwrap() error { return e.Cause }

// New constructs an AppError.
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{Type: errType, Message: message, Cause: cause}
}

// NewConfigError reports a dataset-directory or required-file problem.
func NewConfigError(message string, cause error) *AppError {
	return New(ErrTypeConfig, message, cause)
}

// NewSchemaError reports a missing required column.
func NewSchemaError(message string, cause error) *AppError {
	return New(ErrTypeSchema, message, cause)
}

// NewEmptyResultError reports an empty filter/join/grouping result.
func NewEmptyResultError(message string) *AppError {
	return New(ErrTypeEmptyResult, message, nil)
}

// NewParameterError reports an invalid numeric parameter.
func NewParameterError(message string) *AppError {
	return New(ErrTypeParameter, message, nil)
}

// NewNotFoundError reports a missing input file.
func NewNotFoundError(message string, cause error) *AppError {
	return New(ErrTypeNotFound, message, cause)
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}
