package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GroupMember associates a run with an orchestration group at a fixed
// ordinal. Members are always read and evaluated in ordinal order.
type GroupMember struct {
	ent.Schema
}

// Fields of the GroupMember.
func (GroupMember) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("member_id").
			Unique().
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("ordinal").
			Immutable().
			Comment("Position within the group; tie-breaks join evaluation"),
		field.Enum("status").
			Values("pending", "completed", "failed", "cancelled", "timed_out").
			Default("pending"),
	}
}

// Indexes of the GroupMember.
func (GroupMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "run_id").
			Unique(),
		index.Fields("group_id", "ordinal").
			Unique(),
	}
}
