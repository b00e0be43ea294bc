package models

// JoinRequest is the input of the join operation. Mode, threshold, and
// timeout default to the group's stored values when omitted.
type JoinRequest struct {
	CallerRunID          string   `json:"caller_run_id"`
	OrchestrationGroupID string   `json:"orchestration_group_id"`
	Mode                 JoinMode `json:"mode,omitempty"`
	QuorumThreshold      *int     `json:"quorum_threshold,omitempty"`
	TimeoutS             *int     `json:"timeout_s,omitempty"`
}

// MemberResult summarizes one group member in a join result.
type MemberResult struct {
	RunID   string         `json:"run_id"`
	Ordinal int            `json:"ordinal"`
	Status  string         `json:"status"`
	Output  map[string]any `json:"output,omitempty"`
}

// CancellationPropagated reports how many members were cancelled as a
// side effect of the join decision.
type CancellationPropagated struct {
	Count int `json:"count"`
}

// JoinResult is the output of the join operation.
type JoinResult struct {
	Complete               bool                   `json:"complete"`
	Status                 string                 `json:"status"`
	Mode                   JoinMode               `json:"mode"`
	Results                []MemberResult         `json:"results,omitempty"`
	CancellationPropagated CancellationPropagated `json:"cancellation_propagated"`
}
