package models

// SpawnTarget identifies one agent to spawn, by id or slug (exactly one
// must be set), with the input mapped for that child.
type SpawnTarget struct {
	TargetAgentID   string         `json:"target_agent_id,omitempty"`
	TargetAgentSlug string         `json:"target_agent_slug,omitempty"`
	Input           map[string]any `json:"mapped_input_payload,omitempty"`
}

// SpawnRunRequest is the input of the spawn_run operation.
type SpawnRunRequest struct {
	CallerRunID     string         `json:"caller_run_id"`
	ParentNodeID    string         `json:"parent_node_id,omitempty"`
	TargetAgentID   string         `json:"target_agent_id,omitempty"`
	TargetAgentSlug string         `json:"target_agent_slug,omitempty"`
	Input           map[string]any `json:"mapped_input_payload,omitempty"`
	FailurePolicy   FailurePolicy  `json:"failure_policy,omitempty"`
	TimeoutS        *int           `json:"timeout_s,omitempty"`
	ScopeSubset     []string       `json:"scope_subset"`
	IdempotencyKey  string         `json:"idempotency_key"`
	StartBackground bool           `json:"start_background,omitempty"`
}

// SpawnRunResult is the output of the spawn_run operation.
type SpawnRunResult struct {
	SpawnedRunIDs []string `json:"spawned_run_ids"`
	Idempotent    bool     `json:"idempotent"`
}

// SpawnGroupRequest is the input of the spawn_group operation.
type SpawnGroupRequest struct {
	CallerRunID          string        `json:"caller_run_id"`
	ParentNodeID         string        `json:"parent_node_id,omitempty"`
	Targets              []SpawnTarget `json:"targets"`
	FailurePolicy        FailurePolicy `json:"failure_policy,omitempty"`
	JoinMode             JoinMode      `json:"join_mode"`
	QuorumThreshold      *int          `json:"quorum_threshold,omitempty"`
	TimeoutS             *int          `json:"timeout_s,omitempty"`
	ScopeSubset          []string      `json:"scope_subset"`
	IdempotencyKeyPrefix string        `json:"idempotency_key_prefix"`
	StartBackground      bool          `json:"start_background,omitempty"`
}

// SpawnGroupResult is the output of the spawn_group operation.
type SpawnGroupResult struct {
	OrchestrationGroupID string   `json:"orchestration_group_id"`
	SpawnedRunIDs        []string `json:"spawned_run_ids"`
	Idempotent           bool     `json:"idempotent"`
}
