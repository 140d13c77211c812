// Released under an MIT license. See LICENSE.

// Package failure provides classeditor's structured error type.
package failure

import (
	"errors"
	"fmt"
)

// Code identifies the kind of failure. Codes are stable.
type Code string

const (
	// DuplicateName is a construct or attribute name collision.
	DuplicateName Code = "DUPLICATE_NAME"
	// NotFound is a missing construct, type or method.
	NotFound Code = "NOT_FOUND"
	// InvalidRelation is an illegal extend or implement.
	InvalidRelation Code = "INVALID_RELATION"
	// FinalViolation is an override of a final method or a final interface method.
	FinalViolation Code = "FINAL_VIOLATION"
	// ParseFailure is an unrecognized modifier or type token.
	ParseFailure Code = "PARSE_FAILURE"
	// Cycle is raised while walking the ancestor graph. It never leaves the core.
	Cycle Code = "CYCLE"
)

// T (failure) is an error with a Code.
type T struct {
	Code    Code
	Message string
	cause   error
}

type failure = T

// New creates a failure with code and message.
func New(code Code, message string) *failure {
	return &failure{Code: code, Message: message}
}

// Newf creates a failure with code and a formatted message.
func Newf(code Code, format string, args ...interface{}) *failure {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a failure with code and message caused by err.
func Wrap(code Code, message string, err error) *failure {
	return &failure{Code: code, Message: message, cause: err}
}

// Error implements the error interface.
func (f *failure) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", f.Code, f.Message, f.cause)
	}

	return fmt.Sprintf("[%s] %s", f.Code, f.Message)
}

// Unwrap returns the underlying error, if any.
func (f *failure) Unwrap() error {
	return f.cause
}

// Is reports whether err is, or wraps, a failure with code.
func Is(err error, code Code) bool {
	var f *failure
	for err != nil {
		if !errors.As(err, &f) {
			return false
		}

		if f.Code == code {
			return true
		}

		err = f.cause
	}

	return false
}

// CodeOf returns the code of the outermost failure in err, or "" if there is none.
func CodeOf(err error) Code {
	var f *failure
	if errors.As(err, &f) {
		return f.Code
	}

	return ""
}

// Message returns the message of the outermost failure in err.
// For other errors it returns err.Error().
func Message(err error) string {
	var f *failure
	if errors.As(err, &f) {
		return f.Message
	}

	return err.Error()
}
