// Package errors provides structured error types for the aoc2018 solvers.
//
// Every failure that reaches the operator carries a machine-readable [Code]
// so the CLI and tests can tell a malformed input line apart from an
// unsatisfiable step graph without matching on message text.
//
// # Error Codes
//
//   - INVALID_*: the input or configuration could not be used
//   - MALFORMED_LINE: a puzzle line did not match its expected grammar
//   - INCOMPLETE_SCHEDULE: a dependency graph could not be fully ordered
//   - UNKNOWN_DAY: no solver is registered for the requested day
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedLine, "line %d: %q", n, line)
//	if errors.Is(err, errors.ErrCodeMalformedLine) {
//	    // Report the offending line
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIncompleteSchedule, cause, "scheduled %d of %d steps", got, want)
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeMalformedLine Code = "MALFORMED_LINE"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidDay    Code = "INVALID_DAY"

	// Solver errors
	ErrCodeIncompleteSchedule Code = "INCOMPLETE_SCHEDULE"
	ErrCodeNoSolution         Code = "NO_SOLUTION"

	// Lookup errors
	ErrCodeUnknownDay   Code = "UNKNOWN_DAY"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// LineError reports a puzzle input line that does not match the grammar a
// solver expects. Line is 1-based.
type LineError struct {
	Line    int
	Content string
	Want    string // expected shape, e.g. "#<id> @ <left>,<top>: <w>x<h>"
}

// Error implements the error interface.
func (e *LineError) Error() string {
	if e.Want != "" {
		return fmt.Sprintf("line %d: %q does not match %q", e.Line, e.Content, e.Want)
	}
	return fmt.Sprintf("line %d: %q is malformed", e.Line, e.Content)
}

// Code returns the error code for this error type.
func (e *LineError) Code() Code {
	return ErrCodeMalformedLine
}

// Malformed returns a MALFORMED_LINE error wrapping a [LineError] for the
// given 0-based index into the input lines.
func Malformed(index int, content, want string) *Error {
	le := &LineError{Line: index + 1, Content: content, Want: want}
	return &Error{Code: ErrCodeMalformedLine, Message: le.Error(), Cause: le}
}
