// Package services implements the orchestration kernel: spawn, join,
// cancellation, policy, and workload identity over the run store.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a run, group, or target agent is missing
	ErrNotFound = errors.New("entity not found")

	// ErrFeatureDisabled is returned when the orchestration surface is
	// gated off for the caller's tenant
	ErrFeatureDisabled = errors.New("orchestration surface is disabled for this tenant")

	// ErrTenantMismatch is returned when the caller's tenant does not match
	// the caller run's tenant
	ErrTenantMismatch = errors.New("caller tenant does not match run tenant")

	// ErrTerminalStatus is returned when a status update would move a run
	// out of a terminal status
	ErrTerminalStatus = errors.New("run is already in a terminal status")

	// ErrStoreConflict is returned for integrity violations other than
	// idempotent spawn replays; callers may retry safely because
	// idempotency keys are stable
	ErrStoreConflict = errors.New("store conflict")
)

// Policy error reasons (machine-readable).
const (
	ReasonTargetNotPublished  = "target_not_published"
	ReasonTargetNotAllowed    = "target_not_allowlisted"
	ReasonAllowlistEmpty      = "allowlist_empty"
	ReasonScopeSubsetEmpty    = "scope_subset_empty"
	ReasonScopeOutOfRange     = "scope_out_of_range"
	ReasonScopeOutsidePolicy  = "scope_outside_policy"
	ReasonInvalidScope        = "invalid_scope"
	ReasonMaxDepthExceeded    = "max_depth_exceeded"
	ReasonMaxFanoutExceeded   = "max_fanout_exceeded"
	ReasonMaxChildrenExceeded = "max_children_total_exceeded"
)

// PolicyError is returned when a spawn violates the orchestrator policy:
// limits, allowlist, published-only, or scope attenuation.
type PolicyError struct {
	Reason  string
	Message string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("policy violation (%s): %s", e.Reason, e.Message)
}

// NewPolicyError creates a policy error with a machine-readable reason.
func NewPolicyError(reason, format string, args ...any) error {
	return &PolicyError{
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsPolicyError checks if an error is a policy error.
func IsPolicyError(err error) bool {
	var pe *PolicyError
	return errors.As(err, &pe)
}

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
