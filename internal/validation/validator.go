// =============================================================================
// Performance Index Calculator - Validation Errors
// =============================================================================
//
// This package defines the error taxonomy shared by the collector, the index
// calculators and the session orchestrator. Every user-facing failure is a
// *Error tagged with a Kind, so the CLI can tell a rejected input apart from
// an operational failure (unreadable config, broken stream).
//
// ERROR KINDS:
//   - zero_courses          : The course count was zero
//   - invalid_configuration : Inputs cannot produce an index (zero total
//                             credits, zero semesters, mismatched lengths)
//   - invalid_input         : A token could not be read as a number
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// Kind classifies a validation failure.
type Kind string

const (
	// KindZeroCourses is returned when the semester has no courses.
	KindZeroCourses Kind = "zero_courses"

	// KindInvalidConfiguration is returned when the collected values cannot
	// produce an index.
	KindInvalidConfiguration Kind = "invalid_configuration"

	// KindInvalidInput is returned when a token is not a usable number.
	KindInvalidInput Kind = "invalid_input"
)

// =============================================================================
// VALIDATION ERROR
// =============================================================================

// Error represents a single validation failure.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Field is the name of the value being read or checked
	// (e.g. "course credits").
	Field string

	// Value is the offending raw token, if any.
	Value string

	// Message is the human-readable message shown to the user.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("[%s] %s (field: '%s', value: '%s')", e.Kind, e.Message, e.Field, e.Value)
	}
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: '%s')", e.Kind, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// New creates a validation error of the given kind.
func New(kind Kind, field, message string) *Error {
	return &Error{
		Kind:    kind,
		Field:   field,
		Message: message,
	}
}

// Wrap creates a validation error that wraps cause.
func Wrap(kind Kind, field, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Field:   field,
		Message: message,
		Err:     cause,
	}
}

// InvalidInput creates an error for a token that could not be parsed.
func InvalidInput(field, value string, cause error) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("Invalid value for %s: %q is not a valid number", field, value),
		Err:     cause,
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// IsValidationError reports whether err (or anything it wraps) is a *Error.
func IsValidationError(err error) bool {
	var vErr *Error
	return errors.As(err, &vErr)
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Kind
	}
	return ""
}

// MessageOf returns the user-facing message of the first *Error in err's
// chain, falling back to err.Error().
func MessageOf(err error) string {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return err.Error()
}
