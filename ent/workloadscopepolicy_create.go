// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/workloadscopepolicy"
)

// WorkloadScopePolicyCreate is the builder for creating a WorkloadScopePolicy entity.
type WorkloadScopePolicyCreate struct {
	config
	mutation *WorkloadScopePolicyMutation
	hooks    []Hook
}

// SetPrincipalID sets the "principal_id" field.
func (_c *WorkloadScopePolicyCreate) SetPrincipalID(v string) *WorkloadScopePolicyCreate {
	_c.mutation.SetPrincipalID(v)
	return _c
}

// SetRequestedScopes sets the "requested_scopes" field.
func (_c *WorkloadScopePolicyCreate) SetRequestedScopes(v []string) *WorkloadScopePolicyCreate {
	_c.mutation.SetRequestedScopes(v)
	return _c
}

// SetApprovedScopes sets the "approved_scopes" field.
func (_c *WorkloadScopePolicyCreate) SetApprovedScopes(v []string) *WorkloadScopePolicyCreate {
	_c.mutation.SetApprovedScopes(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkloadScopePolicyCreate) SetStatus(v workloadscopepolicy.Status) *WorkloadScopePolicyCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkloadScopePolicyCreate) SetNillableStatus(v *workloadscopepolicy.Status) *WorkloadScopePolicyCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *WorkloadScopePolicyCreate) SetVersion(v int) *WorkloadScopePolicyCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *WorkloadScopePolicyCreate) SetNillableVersion(v *int) *WorkloadScopePolicyCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkloadScopePolicyCreate) SetUpdatedAt(v time.Time) *WorkloadScopePolicyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkloadScopePolicyCreate) SetNillableUpdatedAt(v *time.Time) *WorkloadScopePolicyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkloadScopePolicyCreate) SetID(v string) *WorkloadScopePolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorkloadScopePolicyMutation object of the builder.
func (_c *WorkloadScopePolicyCreate) Mutation() *WorkloadScopePolicyMutation {
	return _c.mutation
}

// Save creates the WorkloadScopePolicy in the database.
func (_c *WorkloadScopePolicyCreate) Save(ctx context.Context) (*WorkloadScopePolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkloadScopePolicyCreate) SaveX(ctx context.Context) *WorkloadScopePolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkloadScopePolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkloadScopePolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkloadScopePolicyCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workloadscopepolicy.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := workloadscopepolicy.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workloadscopepolicy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkloadScopePolicyCreate) check() error {
	if _, ok := _c.mutation.PrincipalID(); !ok {
		return &ValidationError{Name: "principal_id", err: errors.New(`ent: missing required field "WorkloadScopePolicy.principal_id"`)}
	}
	if _, ok := _c.mutation.RequestedScopes(); !ok {
		return &ValidationError{Name: "requested_scopes", err: errors.New(`ent: missing required field "WorkloadScopePolicy.requested_scopes"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkloadScopePolicy.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workloadscopepolicy.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkloadScopePolicy.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "WorkloadScopePolicy.version"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkloadScopePolicy.updated_at"`)}
	}
	return nil
}

func (_c *WorkloadScopePolicyCreate) sqlSave(ctx context.Context) (*WorkloadScopePolicy, error) {
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
			return nil, fmt.Errorf("unexpected WorkloadScopePolicy.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkloadScopePolicyCreate) createSpec() (*WorkloadScopePolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkloadScopePolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workloadscopepolicy.Table, sqlgraph.NewFieldSpec(workloadscopepolicy.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PrincipalID(); ok {
		_spec.SetField(workloadscopepolicy.FieldPrincipalID, field.TypeString, value)
		_node.PrincipalID = value
	}
	if value, ok := _c.mutation.RequestedScopes(); ok {
		_spec.SetField(workloadscopepolicy.FieldRequestedScopes, field.TypeJSON, value)
		_node.RequestedScopes = value
	}
	if value, ok := _c.mutation.ApprovedScopes(); ok {
		_spec.SetField(workloadscopepolicy.FieldApprovedScopes, field.TypeJSON, value)
		_node.ApprovedScopes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workloadscopepolicy.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(workloadscopepolicy.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workloadscopepolicy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WorkloadScopePolicyCreateBulk is the builder for creating many WorkloadScopePolicy entities in bulk.
type WorkloadScopePolicyCreateBulk struct {
	config
	err      error
	builders []*WorkloadScopePolicyCreate
}

// Save creates the WorkloadScopePolicy entities in the database.
func (_c *WorkloadScopePolicyCreateBulk) Save(ctx context.Context) ([]*WorkloadScopePolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkloadScopePolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkloadScopePolicyMutation)
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
func (_c *WorkloadScopePolicyCreateBulk) SaveX(ctx context.Context) []*WorkloadScopePolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkloadScopePolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkloadScopePolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
