package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenJTI holds the schema definition for the TokenJTI entity — the
// registry of issued bearer-token ids per delegation grant. Revoking a
// grant inserts revocation rows here so token checks fail fast.
type TokenJTI struct {
	ent.Schema
}

// Annotations of the TokenJTI.
func (TokenJTI) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "token_jti_registry"},
	}
}

// Fields of the TokenJTI.
func (TokenJTI) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("jti").
			Unique().
			Immutable(),
		field.String("grant_id").
			Immutable(),
		field.Time("expires_at"),
		field.Time("revoked_at").
			Optional().
			Nillable(),
		field.String("revocation_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TokenJTI.
func (TokenJTI) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("grant_id"),
		// Sweeper support
		index.Fields("expires_at"),
	}
}
