// Package errors provides centralized error definitions and error handling
// utilities for the storefront codebase. It defines sentinel errors for the
// checkout flow, view, and link subsystems, typed errors carrying context,
// and classification helpers used by the render pipeline to decide whether
// an error aborts the page or may be retried on a later render.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo Severity = iota
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention,
	// such as a misconfigured checkout flow that blocks every render.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Checkout-flow sentinel errors
var (
	// ErrNoSteps indicates that a checkout flow was configured without steps.
	ErrNoSteps = New("checkout flow has no steps")
	// ErrDuplicateStep indicates that a step name appears more than once in a flow.
	ErrDuplicateStep = New("duplicate step in checkout flow")
	// ErrEmptyPipeline indicates that no steps remain after one-page collapsing.
	ErrEmptyPipeline = New("no steps remain after one-page collapsing")
	// ErrStepNotInFlow indicates that a referenced step is not part of the flow.
	ErrStepNotInFlow = New("step is not part of the checkout flow")
	// ErrFlowNotFound indicates that a named flow is not present in the registry.
	ErrFlowNotFound = New("checkout flow not found")
)

// View sentinel errors
var (
	// ErrClientFailed indicates that a view client failed to gather its data.
	ErrClientFailed = New("view client failed")
	// ErrNoClients indicates that a page was assembled without any view clients.
	ErrNoClients = New("page has no view clients")
)

// Link sentinel errors
var (
	// ErrBadBaseURL indicates that the configured shop base URL cannot be parsed.
	ErrBadBaseURL = New("invalid shop base URL")
)

// -----------------------------------------------------------------------------
// Configuration Errors
// -----------------------------------------------------------------------------

// ConfigurationError indicates a fatal misconfiguration: an operator must
// correct the flow or shop configuration before the affected page can render.
// Configuration errors are never retryable and abort the render.
type ConfigurationError struct {
	message string
	field   string
	cause   error
}

// NewConfigurationError creates a ConfigurationError wrapping an optional cause.
func NewConfigurationError(message string, cause error) *ConfigurationError {
	return &ConfigurationError{message: message, cause: cause}
}

// WithField returns a copy of the error annotated with the config field path
// (e.g. "checkout.default_step") that triggered it.
func (e *ConfigurationError) WithField(field string) *ConfigurationError {
	c := *e
	c.field = field
	return &c
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	msg := "configuration error: " + e.message
	if e.field != "" {
		msg += " (field: " + e.field + ")"
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error, if any.
func (e *ConfigurationError) Unwrap() error { return e.cause }

// Is reports whether this error matches the target error.
func (e *ConfigurationError) Is(target error) bool {
	return errors.Is(e.cause, target)
}

// Field returns the annotated config field path, or "" if none was set.
func (e *ConfigurationError) Field() string { return e.field }

// Severity returns SeverityCritical; a misconfigured flow blocks every render.
func (e *ConfigurationError) Severity() Severity { return SeverityCritical }

// IsRetryable always returns false: configuration does not fix itself.
func (e *ConfigurationError) IsRetryable() bool { return false }

// IsUserFacing always returns false: configuration details stay internal.
func (e *ConfigurationError) IsUserFacing() bool { return false }

// -----------------------------------------------------------------------------
// View Errors
// -----------------------------------------------------------------------------

// ViewError indicates that a view client failed while gathering data for a
// page. It records which client failed so the render log can attribute it.
type ViewError struct {
	client  string
	message string
	cause   error
}

// NewViewError creates a ViewError for the named view client.
func NewViewError(client, message string, cause error) *ViewError {
	return &ViewError{client: client, message: message, cause: cause}
}

// Error implements the error interface.
func (e *ViewError) Error() string {
	msg := fmt.Sprintf("view %q: %s", e.client, e.message)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error, if any.
func (e *ViewError) Unwrap() error { return e.cause }

// Is reports whether this error matches the target error.
func (e *ViewError) Is(target error) bool {
	return target == ErrClientFailed || errors.Is(e.cause, target)
}

// Client returns the name of the view client that failed.
func (e *ViewError) Client() string { return e.client }

// Severity returns SeverityError.
func (e *ViewError) Severity() Severity { return SeverityError }

// IsRetryable returns true: a failed gather may succeed on the next render.
func (e *ViewError) IsRetryable() bool { return true }

// IsUserFacing always returns false.
func (e *ViewError) IsUserFacing() bool { return false }

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsConfiguration returns true if err is (or wraps) a ConfigurationError.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return As(err, &ce)
}

// IsRetryable returns true if the error is transient and the operation may
// succeed on a later render. Unknown errors are treated as non-retryable.
func IsRetryable(err error) bool {
	var r interface{ IsRetryable() bool }
	if As(err, &r) {
		return r.IsRetryable()
	}
	return false
}

// SeverityOf returns the severity of the error, or SeverityError for errors
// that carry no classification.
func SeverityOf(err error) Severity {
	var s interface{ Severity() Severity }
	if As(err, &s) {
		return s.Severity()
	}
	return SeverityError
}
