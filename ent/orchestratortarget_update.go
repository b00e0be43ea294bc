// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/orchestratortarget"
	"github.com/agentforge/arc/ent/predicate"
)

// OrchestratorTargetUpdate is the builder for updating OrchestratorTarget entities.
type OrchestratorTargetUpdate struct {
	config
	hooks    []Hook
	mutation *OrchestratorTargetMutation
}

// Where appends a list predicates to the OrchestratorTargetUpdate builder.
func (_u *OrchestratorTargetUpdate) Where(ps ...predicate.OrchestratorTarget) *OrchestratorTargetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTargetAgentID sets the "target_agent_id" field.
func (_u *OrchestratorTargetUpdate) SetTargetAgentID(v string) *OrchestratorTargetUpdate {
	_u.mutation.SetTargetAgentID(v)
	return _u
}

// SetNillableTargetAgentID sets the "target_agent_id" field if the given value is not nil.
func (_u *OrchestratorTargetUpdate) SetNillableTargetAgentID(v *string) *OrchestratorTargetUpdate {
	if v != nil {
		_u.SetTargetAgentID(*v)
	}
	return _u
}

// ClearTargetAgentID clears the value of the "target_agent_id" field.
func (_u *OrchestratorTargetUpdate) ClearTargetAgentID() *OrchestratorTargetUpdate {
	_u.mutation.ClearTargetAgentID()
	return _u
}

// SetTargetAgentSlug sets the "target_agent_slug" field.
func (_u *OrchestratorTargetUpdate) SetTargetAgentSlug(v string) *OrchestratorTargetUpdate {
	_u.mutation.SetTargetAgentSlug(v)
	return _u
}

// SetNillableTargetAgentSlug sets the "target_agent_slug" field if the given value is not nil.
func (_u *OrchestratorTargetUpdate) SetNillableTargetAgentSlug(v *string) *OrchestratorTargetUpdate {
	if v != nil {
		_u.SetTargetAgentSlug(*v)
	}
	return _u
}

// ClearTargetAgentSlug clears the value of the "target_agent_slug" field.
func (_u *OrchestratorTargetUpdate) ClearTargetAgentSlug() *OrchestratorTargetUpdate {
	_u.mutation.ClearTargetAgentSlug()
	return _u
}

// SetTag sets the "tag" field.
func (_u *OrchestratorTargetUpdate) SetTag(v string) *OrchestratorTargetUpdate {
	_u.mutation.SetTag(v)
	return _u
}

// SetNillableTag sets the "tag" field if the given value is not nil.
func (_u *OrchestratorTargetUpdate) SetNillableTag(v *string) *OrchestratorTargetUpdate {
	if v != nil {
		_u.SetTag(*v)
	}
	return _u
}

// ClearTag clears the value of the "tag" field.
func (_u *OrchestratorTargetUpdate) ClearTag() *OrchestratorTargetUpdate {
	_u.mutation.ClearTag()
	return _u
}

// Mutation returns the OrchestratorTargetMutation object of the builder.
func (_u *OrchestratorTargetUpdate) Mutation() *OrchestratorTargetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrchestratorTargetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorTargetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrchestratorTargetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorTargetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrchestratorTargetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(orchestratortarget.Table, orchestratortarget.Columns, sqlgraph.NewFieldSpec(orchestratortarget.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TargetAgentID(); ok {
		_spec.SetField(orchestratortarget.FieldTargetAgentID, field.TypeString, value)
	}
	if _u.mutation.TargetAgentIDCleared() {
		_spec.ClearField(orchestratortarget.FieldTargetAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.TargetAgentSlug(); ok {
		_spec.SetField(orchestratortarget.FieldTargetAgentSlug, field.TypeString, value)
	}
	if _u.mutation.TargetAgentSlugCleared() {
		_spec.ClearField(orchestratortarget.FieldTargetAgentSlug, field.TypeString)
	}
	if value, ok := _u.mutation.Tag(); ok {
		_spec.SetField(orchestratortarget.FieldTag, field.TypeString, value)
	}
	if _u.mutation.TagCleared() {
		_spec.ClearField(orchestratortarget.FieldTag, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestratortarget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrchestratorTargetUpdateOne is the builder for updating a single OrchestratorTarget entity.
type OrchestratorTargetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrchestratorTargetMutation
}

// SetTargetAgentID sets the "target_agent_id" field.
func (_u *OrchestratorTargetUpdateOne) SetTargetAgentID(v string) *OrchestratorTargetUpdateOne {
	_u.mutation.SetTargetAgentID(v)
	return _u
}

// SetNillableTargetAgentID sets the "target_agent_id" field if the given value is not nil.
func (_u *OrchestratorTargetUpdateOne) SetNillableTargetAgentID(v *string) *OrchestratorTargetUpdateOne {
	if v != nil {
		_u.SetTargetAgentID(*v)
	}
	return _u
}

// ClearTargetAgentID clears the value of the "target_agent_id" field.
func (_u *OrchestratorTargetUpdateOne) ClearTargetAgentID() *OrchestratorTargetUpdateOne {
	_u.mutation.ClearTargetAgentID()
	return _u
}

// SetTargetAgentSlug sets the "target_agent_slug" field.
func (_u *OrchestratorTargetUpdateOne) SetTargetAgentSlug(v string) *OrchestratorTargetUpdateOne {
	_u.mutation.SetTargetAgentSlug(v)
	return _u
}

// SetNillableTargetAgentSlug sets the "target_agent_slug" field if the given value is not nil.
func (_u *OrchestratorTargetUpdateOne) SetNillableTargetAgentSlug(v *string) *OrchestratorTargetUpdateOne {
	if v != nil {
		_u.SetTargetAgentSlug(*v)
	}
	return _u
}

// ClearTargetAgentSlug clears the value of the "target_agent_slug" field.
func (_u *OrchestratorTargetUpdateOne) ClearTargetAgentSlug() *OrchestratorTargetUpdateOne {
	_u.mutation.ClearTargetAgentSlug()
	return _u
}

// SetTag sets the "tag" field.
func (_u *OrchestratorTargetUpdateOne) SetTag(v string) *OrchestratorTargetUpdateOne {
	_u.mutation.SetTag(v)
	return _u
}

// SetNillableTag sets the "tag" field if the given value is not nil.
func (_u *OrchestratorTargetUpdateOne) SetNillableTag(v *string) *OrchestratorTargetUpdateOne {
	if v != nil {
		_u.SetTag(*v)
	}
	return _u
}

// ClearTag clears the value of the "tag" field.
func (_u *OrchestratorTargetUpdateOne) ClearTag() *OrchestratorTargetUpdateOne {
	_u.mutation.ClearTag()
	return _u
}

// Mutation returns the OrchestratorTargetMutation object of the builder.
func (_u *OrchestratorTargetUpdateOne) Mutation() *OrchestratorTargetMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrchestratorTargetUpdate builder.
func (_u *OrchestratorTargetUpdateOne) Where(ps ...predicate.OrchestratorTarget) *OrchestratorTargetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrchestratorTargetUpdateOne) Select(field string, fields ...string) *OrchestratorTargetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrchestratorTarget entity.
func (_u *OrchestratorTargetUpdateOne) Save(ctx context.Context) (*OrchestratorTarget, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorTargetUpdateOne) SaveX(ctx context.Context) *OrchestratorTarget {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrchestratorTargetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorTargetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrchestratorTargetUpdateOne) sqlSave(ctx context.Context) (_node *OrchestratorTarget, err error) {
	_spec := sqlgraph.NewUpdateSpec(orchestratortarget.Table, orchestratortarget.Columns, sqlgraph.NewFieldSpec(orchestratortarget.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrchestratorTarget.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orchestratortarget.FieldID)
		for _, f := range fields {
			if !orchestratortarget.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orchestratortarget.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TargetAgentID(); ok {
		_spec.SetField(orchestratortarget.FieldTargetAgentID, field.TypeString, value)
	}
	if _u.mutation.TargetAgentIDCleared() {
		_spec.ClearField(orchestratortarget.FieldTargetAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.TargetAgentSlug(); ok {
		_spec.SetField(orchestratortarget.FieldTargetAgentSlug, field.TypeString, value)
	}
	if _u.mutation.TargetAgentSlugCleared() {
		_spec.ClearField(orchestratortarget.FieldTargetAgentSlug, field.TypeString)
	}
	if value, ok := _u.mutation.Tag(); ok {
		_spec.SetField(orchestratortarget.FieldTag, field.TypeString, value)
	}
	if _u.mutation.TagCleared() {
		_spec.ClearField(orchestratortarget.FieldTag, field.TypeString)
	}
	_node = &OrchestratorTarget{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestratortarget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
