package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrchestrationGroup holds the schema definition for the OrchestrationGroup
// entity — a sibling set of runs produced by one spawn_group call. The join
// engine evaluates completion over the group's members and transitions the
// group to a terminal status exactly once.
type OrchestrationGroup struct {
	ent.Schema
}

// Fields of the OrchestrationGroup.
func (OrchestrationGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("group_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("orchestrator_run_id").
			Immutable().
			Comment("Parent run whose graph spawned this group"),
		field.String("parent_node_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("failure_policy").
			Values("best_effort", "fail_fast").
			Default("best_effort"),
		field.Enum("join_mode").
			Values("all", "quorum", "first_success", "best_effort", "fail_fast").
			Default("all"),
		field.Int("quorum_threshold").
			Optional().
			Nillable().
			Comment("Required iff join_mode=quorum"),
		field.Int("timeout_s").
			Default(60).
			Comment("Wall-clock join timeout from started_at"),
		field.Enum("status").
			Values("running", "completed", "completed_with_errors", "failed", "timed_out", "cancelled").
			Default("running"),
		field.Int("cancellation_propagated").
			Default(0).
			Comment("Members cancelled by the join decision; lets replays return the deciding payload"),
		field.JSON("policy_snapshot", map[string]interface{}{}).
			Comment("Effective orchestrator policy at creation time"),
		field.String("idempotency_key_prefix").
			Optional().
			Nillable().
			Immutable().
			Comment("Replays with the same prefix return this group"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the OrchestrationGroup.
// Note: group-level idempotency on (orchestrator_run_id, parent_node_id,
// idempotency_key_prefix) needs partial unique indexes that Ent cannot
// express; they are created in pkg/database/migrations.go.
func (OrchestrationGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("orchestrator_run_id"),
		index.Fields("tenant_id"),
		index.Fields("status"),
	}
}
