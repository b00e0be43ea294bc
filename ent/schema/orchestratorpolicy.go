package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrchestratorPolicy holds the schema definition for the OrchestratorPolicy
// entity — per-tenant, per-orchestrator limits on what spawn may do. When no
// row exists for an orchestrator, the policy service falls back to defaults.
type OrchestratorPolicy struct {
	ent.Schema
}

// Fields of the OrchestratorPolicy.
func (OrchestratorPolicy) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("policy_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("orchestrator_agent_id").
			Immutable(),
		field.Bool("enforce_published_only").
			Default(true),
		field.Enum("default_failure_policy").
			Values("best_effort", "fail_fast").
			Default("best_effort"),
		field.Int("max_depth").
			Default(3),
		field.Int("max_fanout").
			Default(8).
			Comment("Per-parent and per-call child limit"),
		field.Int("max_children_total").
			Default(32).
			Comment("Whole-subtree limit, counted from the root run"),
		field.Int("join_timeout_s").
			Default(60),
		field.JSON("allowed_scope_subset", []string{}).
			Optional().
			Comment("Empty means no scope attenuation beyond the caller's grant"),
		field.String("capability_manifest_version").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the OrchestratorPolicy.
func (OrchestratorPolicy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "orchestrator_agent_id").
			Unique(),
	}
}
