package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrchestratorTarget holds the schema definition for the OrchestratorTarget
// entity — one allowlist row naming an agent an orchestrator may spawn, by
// id or slug. An orchestrator with no rows may spawn nothing (fail-closed).
type OrchestratorTarget struct {
	ent.Schema
}

// Fields of the OrchestratorTarget.
func (OrchestratorTarget) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("target_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("orchestrator_agent_id").
			Immutable(),
		field.String("target_agent_id").
			Optional().
			Nillable(),
		field.String("target_agent_slug").
			Optional().
			Nillable(),
		field.String("tag").
			Optional(),
	}
}

// Indexes of the OrchestratorTarget.
func (OrchestratorTarget) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "orchestrator_agent_id"),
	}
}
