package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DelegationGrant holds the schema definition for the DelegationGrant
// entity — a scoped, time-bounded authorization for a run to act on behalf
// of a user through a workload principal. Child runs inherit grants whose
// effective scopes are attenuated from the parent grant.
type DelegationGrant struct {
	ent.Schema
}

// Fields of the DelegationGrant.
func (DelegationGrant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("grant_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("principal_id").
			Immutable(),
		field.String("initiator_user_id").
			Immutable(),
		field.String("run_id").
			Optional().
			Nillable().
			Comment("Set once the run row exists; grant is created first in the same transaction"),
		field.String("parent_grant_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Grant of the spawning run, for derived child grants"),
		field.JSON("effective_scopes", []string{}),
		field.Enum("status").
			Values("active", "revoked", "expired").
			Default("active"),
		field.String("revocation_reason").
			Optional().
			Nillable(),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DelegationGrant.
func (DelegationGrant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("principal_id"),
		index.Fields("run_id"),
		index.Fields("tenant_id"),
	}
}
