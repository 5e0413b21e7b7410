// Package errors provides coded error types shared by the CLI, the TUI and
// the command layer.
//
// Codes let callers decide how to surface a failure without string matching:
// file and parse errors are shown to the user with detail, path failures
// inside edit and delete are swallowed, and invalid or cancelled input aborts
// quietly.
//
//	err := errors.New(errors.ErrCodePathNotFound, "no value at %s", p)
//	if errors.Is(err, errors.ErrCodePathNotFound) {
//	    // no-op
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeParse           Code = "PARSE_ERROR"
	ErrCodePathNotFound    Code = "PATH_NOT_FOUND"
	ErrCodeTypeMismatch    Code = "TYPE_MISMATCH"
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeNothingSelected Code = "NOTHING_SELECTED"
	ErrCodeIO              Code = "IO_ERROR"
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

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the chain holds neither an *Error nor a *ParseError.
func GetCode(err error) Code {
	var pe *ParseError
	if errors.As(err, &pe) {
		return ErrCodeParse
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Detail()
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
