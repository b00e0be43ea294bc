package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkloadPrincipal holds the schema definition for the WorkloadPrincipal
// entity — the non-human identity (agent, tool, or system workload) that a
// run executes as. Its usable scopes come from the associated scope policy.
type WorkloadPrincipal struct {
	ent.Schema
}

// Fields of the WorkloadPrincipal.
func (WorkloadPrincipal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("principal_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("slug").
			Immutable(),
		field.Enum("type").
			Values("agent", "tool", "system").
			Default("agent"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WorkloadPrincipal.
func (WorkloadPrincipal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "slug").
			Unique(),
	}
}
