// Package util provides logging, interface-name helpers and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	ErrMissingInput     = errors.New("missing input report")
	ErrReadFailed       = errors.New("reading input failed")
	ErrInvalidJob       = errors.New("invalid job file")
	ErrValidationFailed = errors.New("validation failed")
	ErrCollectFailed    = errors.New("collecting from switch failed")
)

// InputError reports a problem with one of the three input reports
type InputError struct {
	Report string // "running-config", "interface-status", "cdp-neighbors"
	Path   string
	Err    error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Report, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Report, e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewMissingInputError creates an InputError for a report that was not supplied
func NewMissingInputError(report string) *InputError {
	return &InputError{Report: report, Err: ErrMissingInput}
}

// NewReadError creates an InputError wrapping a read failure. Both
// ErrReadFailed and the underlying cause are reachable via errors.Is.
func NewReadError(report, path string, cause error) *InputError {
	return &InputError{Report: report, Path: path, Err: fmt.Errorf("%w: %w", ErrReadFailed, cause)}
}

// ValidationError represents one or more validation failures
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0]
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error from messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

// ValidationBuilder helps accumulate validation errors
type ValidationBuilder struct {
	errors []string
}

// Add adds an error message if condition is false
func (v *ValidationBuilder) Add(condition bool, message string) *ValidationBuilder {
	if !condition {
		v.errors = append(v.errors, message)
	}
	return v
}

// AddError adds an error message unconditionally
func (v *ValidationBuilder) AddError(message string) *ValidationBuilder {
	v.errors = append(v.errors, message)
	return v
}

// AddErrorf adds a formatted error message
func (v *ValidationBuilder) AddErrorf(format string, args ...interface{}) *ValidationBuilder {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
	return v
}

// HasErrors returns true if there are validation errors
func (v *ValidationBuilder) HasErrors() bool {
	return len(v.errors) > 0
}

// Build returns the validation error or nil if no errors
func (v *ValidationBuilder) Build() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &ValidationError{Errors: v.errors}
}
