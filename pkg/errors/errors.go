// Package errors provides structured error types for swotboard.
//
// Every user-facing failure carries a machine-readable [Code] so the CLI,
// the terminal editor and the HTTP server can react to it the same way:
// the action that failed is abandoned, but the process keeps running.
//
// # Error Codes
//
//   - EMPTY_INPUT: all four SWOT categories were empty at generate time
//   - LOAD_FAILURE: an initial-state document was missing or malformed
//   - CONFIRMATION_REQUIRED: a destructive action was not confirmed
//   - INVALID_KEY: a strategy key is not of the form X{n}-Y{m}
//   - NOT_GENERATED: an export was requested before any SWOT was generated
//
// # Usage
//
//	err := errors.New(errors.ErrCodeEmptyInput, "please enter at least one item in any category")
//	if errors.Is(err, errors.ErrCodeEmptyInput) {
//	    // show the message, keep the previous state
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeLoadFailure, origErr, "could not load %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeEmptyInput    Code = "EMPTY_INPUT"
	ErrCodeInvalidKey    Code = "INVALID_KEY"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Document errors
	ErrCodeLoadFailure Code = "LOAD_FAILURE"

	// State errors
	ErrCodeConfirmationRequired Code = "CONFIRMATION_REQUIRED"
	ErrCodeNotGenerated         Code = "NOT_GENERATED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Detail returns the user message followed by the underlying cause, if any.
// Load failures surface this so the user can see why a document was rejected.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Cause != nil {
		return fmt.Sprintf("%s (%v)", e.Message, e.Cause)
	}
	return UserMessage(err)
}
