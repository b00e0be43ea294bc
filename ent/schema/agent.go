package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity — a tenant-scoped
// agent definition (graph of nodes) that runs execute. Spawn targets are
// resolved against this catalog by id or slug.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("slug"),
		field.String("name").
			Optional(),
		field.Enum("status").
			Values("draft", "published", "archived").
			Default("draft"),
		field.JSON("graph_spec", map[string]interface{}{}).
			Optional().
			Comment("Node/edge DAG; validated before runs start"),
		field.String("spec_version").
			Default("1.0"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "slug").
			Unique(),
		index.Fields("tenant_id", "status"),
	}
}
