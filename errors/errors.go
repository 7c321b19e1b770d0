package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// ERROR CODES
// =============================================================================

// Error code constants for structured errors.
const (
	CodeOverrideConflict = "OVERRIDE_CONFLICT"
	CodeNotVisible       = "DEFINITION_NOT_VISIBLE"
	CodeNotFound         = "DEFINITION_NOT_FOUND"
	CodeAmbiguous        = "AMBIGUOUS_DEFINITION"
)

// =============================================================================
// BIND ERROR (STRUCTURED ERROR)
// =============================================================================

// BindError represents a structured registry error with context.
// All registry failures are terminal outcomes of a single call; none are
// transient or retryable.
type BindError struct {
	Code      string
	Message   string
	Cause     error
	Timestamp time.Time
	Context   map[string]interface{}
}

func (e *BindError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *BindError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for BindError.
// Compares by error code, allowing matching against sentinel errors.
func (e *BindError) Is(target error) bool {
	t, ok := target.(*BindError)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithContext adds context to the error.
func (e *BindError) WithContext(key string, value interface{}) *BindError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithCause attaches an underlying cause to the error.
func (e *BindError) WithCause(cause error) *BindError {
	e.Cause = cause
	return e
}

// ErrOverrideConflict creates an override conflict error. It carries both the
// existing and the incoming definition for diagnostics.
func ErrOverrideConflict(existing, incoming interface{}) *BindError {
	return &BindError{
		Code:      CodeOverrideConflict,
		Message:   fmt.Sprintf("cannot declare %v: %v occupies the same slot and override is not allowed", incoming, existing),
		Timestamp: time.Now(),
		Context: map[string]interface{}{
			"existing": existing,
			"incoming": incoming,
		},
	}
}

// ErrNotVisibleFromRequester creates a visibility error for the case where
// candidates for a query exist but none pass the requesting definition's
// visibility check. This indicates a scoping mistake, not a missing
// declaration.
func ErrNotVisibleFromRequester(query string, requester interface{}, candidates int) *BindError {
	return &BindError{
		Code:      CodeNotVisible,
		Message:   fmt.Sprintf("%d candidate(s) for '%s' exist but none are visible from %v", candidates, query, requester),
		Timestamp: time.Now(),
		Context: map[string]interface{}{
			"query":      query,
			"requester":  requester,
			"candidates": candidates,
		},
	}
}

// ErrNotVisibleFromPath creates a visibility error for the case where a single
// candidate remains but its declaring module path is not visible from the
// requesting module path. Same code as ErrNotVisibleFromRequester, distinct
// message and payload.
func ErrNotVisibleFromPath(query string, declaredAt, requestedFrom interface{}) *BindError {
	return &BindError{
		Code:      CodeNotVisible,
		Message:   fmt.Sprintf("definition for '%s' declared at module path '%v' is not visible from '%v'", query, declaredAt, requestedFrom),
		Timestamp: time.Now(),
		Context: map[string]interface{}{
			"query":          query,
			"declared_at":    declaredAt,
			"requested_from": requestedFrom,
		},
	}
}

// ErrDefinitionNotFound creates a not-found error for a query that matched no
// candidate at all.
func ErrDefinitionNotFound(query string) *BindError {
	return &BindError{
		Code:      CodeNotFound,
		Message:   fmt.Sprintf("no definition found for '%s'", query),
		Timestamp: time.Now(),
		Context:   map[string]interface{}{"query": query},
	}
}

// ErrAmbiguousDefinition creates an ambiguity error. The payload lists every
// candidate remaining after filtering and deduplication so the caller can
// disambiguate, e.g. by supplying a name.
func ErrAmbiguousDefinition(query string, candidates []string) *BindError {
	return &BindError{
		Code:      CodeAmbiguous,
		Message:   fmt.Sprintf("%d definitions match '%s': %s", len(candidates), query, strings.Join(candidates, ", ")),
		Timestamp: time.Now(),
		Context: map[string]interface{}{
			"query":      query,
			"candidates": candidates,
		},
	}
}

// =============================================================================
// STANDARD ERRORS PACKAGE INTEGRATION
// =============================================================================

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, and if so,
// sets target to that error value and returns true.
// This is a convenience wrapper around errors.As from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
// This is a convenience wrapper around errors.Unwrap from the standard library.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New returns an error that formats as the given text.
// This is a convenience wrapper around errors.New from the standard library.
func New(text string) error {
	return errors.New(text)
}

// =============================================================================
// SENTINEL ERRORS (for use with Is)
// =============================================================================

// Sentinel errors that can be used with errors.Is comparisons.
var (
	// ErrOverrideConflictSentinel is a sentinel error for override conflicts.
	ErrOverrideConflictSentinel = &BindError{Code: CodeOverrideConflict}

	// ErrNotVisibleSentinel is a sentinel error for visibility failures.
	ErrNotVisibleSentinel = &BindError{Code: CodeNotVisible}

	// ErrNotFoundSentinel is a sentinel error for missing definitions.
	ErrNotFoundSentinel = &BindError{Code: CodeNotFound}

	// ErrAmbiguousSentinel is a sentinel error for ambiguous resolutions.
	ErrAmbiguousSentinel = &BindError{Code: CodeAmbiguous}
)

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsOverrideConflict checks if the error is an override conflict error.
func IsOverrideConflict(err error) bool {
	return Is(err, ErrOverrideConflictSentinel)
}

// IsNotVisible checks if the error is a visibility error.
func IsNotVisible(err error) bool {
	return Is(err, ErrNotVisibleSentinel)
}

// IsNotFound checks if the error is a definition-not-found error.
func IsNotFound(err error) bool {
	return Is(err, ErrNotFoundSentinel)
}

// IsAmbiguous checks if the error is an ambiguous-definition error.
func IsAmbiguous(err error) bool {
	return Is(err, ErrAmbiguousSentinel)
}
