// Package apperrors holds the typed failures returned by the conversion and
// exchange-rate engine. Callers inspect them with errors.As.
package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed input. It never reaches the network.
type ValidationError struct {
	Field  string // Name of the offending input
	Reason string // Human readable cause
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// MissingRateError reports currencies absent from an otherwise successful rate table.
type MissingRateError struct {
	Currencies []string
}

func (e *MissingRateError) Error() string {
	return "missing exchange rate for " + strings.Join(e.Currencies, ", ")
}

// DomainError reports a mathematically undefined conversion.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// UpstreamError reports a failed call to the rate provider.
// StatusCode is zero when the request never got a response.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("rate provider unavailable: %v", e.Err)
	}
	return fmt.Sprintf("rate provider returned status %d: %v", e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
