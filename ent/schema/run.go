package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity — one execution of an
// agent graph. Runs form a tree: every run carries its parent and root ids
// so subtree walks are explicit queries over the lineage indexes.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("agent_id").
			Immutable().
			Comment("Agent whose graph this run executes"),
		field.String("initiator_user_id").
			Immutable().
			Comment("End user on whose behalf the run acts"),
		field.String("workload_principal_id").
			Immutable(),
		field.String("delegation_grant_id").
			Immutable(),
		field.Enum("status").
			Values("queued", "running", "paused", "completed", "failed", "cancelled", "timed_out").
			Default("queued"),

		// Lineage
		field.String("root_run_id").
			Immutable().
			Comment("Equals id for root runs; shared by the whole subtree"),
		field.String("parent_run_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("parent_node_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Graph node in the parent that spawned this run"),
		field.Int("depth").
			Default(0).
			Immutable().
			Comment("Root is 0; child = parent + 1"),
		field.String("spawn_key").
			Optional().
			Nillable().
			Immutable().
			Comment("Idempotency key, unique within a parent when set"),
		field.String("orchestration_group_id").
			Optional().
			Nillable().
			Immutable(),

		field.JSON("input", map[string]interface{}{}).
			Optional(),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.Int("timeout_s").
			Optional().
			Nillable().
			Comment("Interpreter deadline hint; not enforced by the kernel"),
		field.String("status_reason").
			Optional().
			Nillable().
			Comment("Why the run reached its current status (e.g. cancellation reason)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		// Idempotent spawn: at most one child per (parent, spawn_key).
		// Postgres treats NULL spawn keys as distinct, which is what we want.
		index.Fields("parent_run_id", "spawn_key").
			Unique(),

		// Lineage walks
		index.Fields("root_run_id"),
		index.Fields("parent_run_id", "created_at"),

		index.Fields("tenant_id"),
		index.Fields("orchestration_group_id"),

		// Queue claiming (FOR UPDATE SKIP LOCKED over queued runs)
		index.Fields("status", "created_at"),
	}
}
