// Package models defines the request and result payloads of the
// orchestration kernel's public operations.
package models

// JoinMode is the completion rule evaluated over an orchestration group.
type JoinMode string

const (
	// JoinModeAll completes when every member is terminal
	JoinModeAll JoinMode = "all"
	// JoinModeQuorum completes when quorum_threshold members succeeded,
	// or fails as soon as quorum becomes impossible
	JoinModeQuorum JoinMode = "quorum"
	// JoinModeFirstSuccess completes on the first successful member and
	// cancels the rest
	JoinModeFirstSuccess JoinMode = "first_success"
	// JoinModeBestEffort completes when every member is terminal,
	// succeeding if at least one member succeeded
	JoinModeBestEffort JoinMode = "best_effort"
	// JoinModeFailFast fails on the first failed member and cancels the rest
	JoinModeFailFast JoinMode = "fail_fast"
)

// IsValid checks if the join mode is valid
func (m JoinMode) IsValid() bool {
	switch m {
	case JoinModeAll, JoinModeQuorum, JoinModeFirstSuccess, JoinModeBestEffort, JoinModeFailFast:
		return true
	default:
		return false
	}
}

// FailurePolicy is the per-group hint influencing default join behavior.
type FailurePolicy string

const (
	// FailurePolicyBestEffort lets remaining members run after a failure
	FailurePolicyBestEffort FailurePolicy = "best_effort"
	// FailurePolicyFailFast cancels remaining members after a failure
	FailurePolicyFailFast FailurePolicy = "fail_fast"
)

// IsValid checks if the failure policy is valid
func (p FailurePolicy) IsValid() bool {
	return p == FailurePolicyBestEffort || p == FailurePolicyFailFast
}
