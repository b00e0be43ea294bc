// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/orchestratortarget"
)

// OrchestratorTargetCreate is the builder for creating a OrchestratorTarget entity.
type OrchestratorTargetCreate struct {
	config
	mutation *OrchestratorTargetMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *OrchestratorTargetCreate) SetTenantID(v string) *OrchestratorTargetCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetOrchestratorAgentID sets the "orchestrator_agent_id" field.
func (_c *OrchestratorTargetCreate) SetOrchestratorAgentID(v string) *OrchestratorTargetCreate {
	_c.mutation.SetOrchestratorAgentID(v)
	return _c
}

// SetTargetAgentID sets the "target_agent_id" field.
func (_c *OrchestratorTargetCreate) SetTargetAgentID(v string) *OrchestratorTargetCreate {
	_c.mutation.SetTargetAgentID(v)
	return _c
}

// SetNillableTargetAgentID sets the "target_agent_id" field if the given value is not nil.
func (_c *OrchestratorTargetCreate) SetNillableTargetAgentID(v *string) *OrchestratorTargetCreate {
	if v != nil {
		_c.SetTargetAgentID(*v)
	}
	return _c
}

// SetTargetAgentSlug sets the "target_agent_slug" field.
func (_c *OrchestratorTargetCreate) SetTargetAgentSlug(v string) *OrchestratorTargetCreate {
	_c.mutation.SetTargetAgentSlug(v)
	return _c
}

// SetNillableTargetAgentSlug sets the "target_agent_slug" field if the given value is not nil.
func (_c *OrchestratorTargetCreate) SetNillableTargetAgentSlug(v *string) *OrchestratorTargetCreate {
	if v != nil {
		_c.SetTargetAgentSlug(*v)
	}
	return _c
}

// SetTag sets the "tag" field.
func (_c *OrchestratorTargetCreate) SetTag(v string) *OrchestratorTargetCreate {
	_c.mutation.SetTag(v)
	return _c
}

// SetNillableTag sets the "tag" field if the given value is not nil.
func (_c *OrchestratorTargetCreate) SetNillableTag(v *string) *OrchestratorTargetCreate {
	if v != nil {
		_c.SetTag(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrchestratorTargetCreate) SetID(v string) *OrchestratorTargetCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OrchestratorTargetMutation object of the builder.
func (_c *OrchestratorTargetCreate) Mutation() *OrchestratorTargetMutation {
	return _c.mutation
}

// Save creates the OrchestratorTarget in the database.
func (_c *OrchestratorTargetCreate) Save(ctx context.Context) (*OrchestratorTarget, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrchestratorTargetCreate) SaveX(ctx context.Context) *OrchestratorTarget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorTargetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorTargetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrchestratorTargetCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "OrchestratorTarget.tenant_id"`)}
	}
	if _, ok := _c.mutation.OrchestratorAgentID(); !ok {
		return &ValidationError{Name: "orchestrator_agent_id", err: errors.New(`ent: missing required field "OrchestratorTarget.orchestrator_agent_id"`)}
	}
	return nil
}

func (_c *OrchestratorTargetCreate) sqlSave(ctx context.Context) (*OrchestratorTarget, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected OrchestratorTarget.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrchestratorTargetCreate) createSpec() (*OrchestratorTarget, *sqlgraph.CreateSpec) {
	var (
		_node = &OrchestratorTarget{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orchestratortarget.Table, sqlgraph.NewFieldSpec(orchestratortarget.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(orchestratortarget.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.OrchestratorAgentID(); ok {
		_spec.SetField(orchestratortarget.FieldOrchestratorAgentID, field.TypeString, value)
		_node.OrchestratorAgentID = value
	}
	if value, ok := _c.mutation.TargetAgentID(); ok {
		_spec.SetField(orchestratortarget.FieldTargetAgentID, field.TypeString, value)
		_node.TargetAgentID = &value
	}
	if value, ok := _c.mutation.TargetAgentSlug(); ok {
		_spec.SetField(orchestratortarget.FieldTargetAgentSlug, field.TypeString, value)
		_node.TargetAgentSlug = &value
	}
	if value, ok := _c.mutation.Tag(); ok {
		_spec.SetField(orchestratortarget.FieldTag, field.TypeString, value)
		_node.Tag = value
	}
	return _node, _spec
}

// OrchestratorTargetCreateBulk is the builder for creating many OrchestratorTarget entities in bulk.
type OrchestratorTargetCreateBulk struct {
	config
	err      error
	builders []*OrchestratorTargetCreate
}

// Save creates the OrchestratorTarget entities in the database.
func (_c *OrchestratorTargetCreateBulk) Save(ctx context.Context) ([]*OrchestratorTarget, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrchestratorTarget, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrchestratorTargetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OrchestratorTargetCreateBulk) SaveX(ctx context.Context) []*OrchestratorTarget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorTargetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorTargetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
