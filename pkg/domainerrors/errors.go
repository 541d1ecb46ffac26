// Package domainerrors defines the coded error taxonomy used across service
// boundaries. Handlers translate codes to HTTP statuses; services and stores
// create or wrap errors without knowing about HTTP.
package domainerrors

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal_error"
)

// Issue is one field-level validation failure, surfaced to API callers as a
// structured list alongside the top-level error code.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a coded error. Issues is populated only for validation failures.
type Error struct {
	Code    Code
	Message string
	Issues  []Issue
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error with a caller-facing message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error, preserving the
// cause for errors.Is/As chains.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// Validation creates a bad-request error carrying field-level issues.
func Validation(message string, issues []Issue) *Error {
	return &Error{Code: CodeBadRequest, Message: message, Issues: issues}
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in this taxonomy.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// IssuesOf extracts field-level issues, or nil when err carries none.
func IssuesOf(err error) []Issue {
	var de *Error
	if errors.As(err, &de) {
		return de.Issues
	}
	return nil
}
