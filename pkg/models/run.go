package models

// CreateRunRequest is the input for creating a root run (no parent).
// Child runs are only ever created through spawn_run / spawn_group.
type CreateRunRequest struct {
	TenantID        string         `json:"tenant_id"`
	AgentID         string         `json:"agent_id,omitempty"`
	AgentSlug       string         `json:"agent_slug,omitempty"`
	InitiatorUserID string         `json:"initiator_user_id"`
	RequestedScopes []string       `json:"requested_scopes"`
	Input           map[string]any `json:"input,omitempty"`
	GrantTTLSeconds int            `json:"grant_ttl_seconds,omitempty"`
}
