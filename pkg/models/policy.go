package models

// PolicySnapshot is the effective orchestrator policy captured at spawn
// time. All limit checks for a spawn call — and for the whole group it
// creates — are evaluated against one snapshot, and the snapshot is
// embedded in the OrchestrationGroup row for auditability.
type PolicySnapshot struct {
	TenantID             string   `json:"tenant_id"`
	OrchestratorAgentID  string   `json:"orchestrator_agent_id"`
	EnforcePublishedOnly bool     `json:"enforce_published_only"`
	DefaultFailurePolicy string   `json:"default_failure_policy"`
	MaxDepth             int      `json:"max_depth"`
	MaxFanout            int      `json:"max_fanout"`
	MaxChildrenTotal     int      `json:"max_children_total"`
	JoinTimeoutS         int      `json:"join_timeout_s"`
	AllowedScopeSubset   []string `json:"allowed_scope_subset,omitempty"`
	CapabilityManifest   string   `json:"capability_manifest_version,omitempty"`

	// Defaulted is true when no policy row existed and built-in
	// defaults were applied.
	Defaulted bool `json:"defaulted"`
}

// Caller identifies the authenticated principal invoking a kernel
// operation: its tenant and the scopes usable on this call.
type Caller struct {
	TenantID string
	UserID   string
	Scopes   []string
}
