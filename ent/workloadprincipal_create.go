// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/workloadprincipal"
)

// WorkloadPrincipalCreate is the builder for creating a WorkloadPrincipal entity.
type WorkloadPrincipalCreate struct {
	config
	mutation *WorkloadPrincipalMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *WorkloadPrincipalCreate) SetTenantID(v string) *WorkloadPrincipalCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *WorkloadPrincipalCreate) SetSlug(v string) *WorkloadPrincipalCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetType sets the "type" field.
func (_c *WorkloadPrincipalCreate) SetType(v workloadprincipal.Type) *WorkloadPrincipalCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *WorkloadPrincipalCreate) SetNillableType(v *workloadprincipal.Type) *WorkloadPrincipalCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkloadPrincipalCreate) SetCreatedAt(v time.Time) *WorkloadPrincipalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkloadPrincipalCreate) SetNillableCreatedAt(v *time.Time) *WorkloadPrincipalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkloadPrincipalCreate) SetID(v string) *WorkloadPrincipalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorkloadPrincipalMutation object of the builder.
func (_c *WorkloadPrincipalCreate) Mutation() *WorkloadPrincipalMutation {
	return _c.mutation
}

// Save creates the WorkloadPrincipal in the database.
func (_c *WorkloadPrincipalCreate) Save(ctx context.Context) (*WorkloadPrincipal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkloadPrincipalCreate) SaveX(ctx context.Context) *WorkloadPrincipal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkloadPrincipalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkloadPrincipalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkloadPrincipalCreate) defaults() {
	if _, ok := _c.mutation.GetType(); !ok {
		v := workloadprincipal.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workloadprincipal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkloadPrincipalCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "WorkloadPrincipal.tenant_id"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "WorkloadPrincipal.slug"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "WorkloadPrincipal.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := workloadprincipal.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "WorkloadPrincipal.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkloadPrincipal.created_at"`)}
	}
	return nil
}

func (_c *WorkloadPrincipalCreate) sqlSave(ctx context.Context) (*WorkloadPrincipal, error) {
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
			return nil, fmt.Errorf("unexpected WorkloadPrincipal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkloadPrincipalCreate) createSpec() (*WorkloadPrincipal, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkloadPrincipal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workloadprincipal.Table, sqlgraph.NewFieldSpec(workloadprincipal.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(workloadprincipal.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(workloadprincipal.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(workloadprincipal.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workloadprincipal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WorkloadPrincipalCreateBulk is the builder for creating many WorkloadPrincipal entities in bulk.
type WorkloadPrincipalCreateBulk struct {
	config
	err      error
	builders []*WorkloadPrincipalCreate
}

// Save creates the WorkloadPrincipal entities in the database.
func (_c *WorkloadPrincipalCreateBulk) Save(ctx context.Context) ([]*WorkloadPrincipal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkloadPrincipal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkloadPrincipalMutation)
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
func (_c *WorkloadPrincipalCreateBulk) SaveX(ctx context.Context) []*WorkloadPrincipal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkloadPrincipalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkloadPrincipalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
