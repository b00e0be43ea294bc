package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkloadScopePolicy holds the schema definition for the
// WorkloadScopePolicy entity — the requested vs approved scope sets of one
// workload principal. Approval bumps version; SYSTEM principals may be
// auto-approved at creation.
type WorkloadScopePolicy struct {
	ent.Schema
}

// Fields of the WorkloadScopePolicy.
func (WorkloadScopePolicy) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scope_policy_id").
			Unique().
			Immutable(),
		field.String("principal_id").
			Immutable(),
		field.JSON("requested_scopes", []string{}),
		field.JSON("approved_scopes", []string{}).
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.Int("version").
			Default(1),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the WorkloadScopePolicy.
func (WorkloadScopePolicy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("principal_id").
			Unique(),
	}
}
