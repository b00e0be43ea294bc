// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/tokenjti"
)

// TokenJTICreate is the builder for creating a TokenJTI entity.
type TokenJTICreate struct {
	config
	mutation *TokenJTIMutation
	hooks    []Hook
}

// SetGrantID sets the "grant_id" field.
func (_c *TokenJTICreate) SetGrantID(v string) *TokenJTICreate {
	_c.mutation.SetGrantID(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *TokenJTICreate) SetExpiresAt(v time.Time) *TokenJTICreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *TokenJTICreate) SetRevokedAt(v time.Time) *TokenJTICreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *TokenJTICreate) SetNillableRevokedAt(v *time.Time) *TokenJTICreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// SetRevocationReason sets the "revocation_reason" field.
func (_c *TokenJTICreate) SetRevocationReason(v string) *TokenJTICreate {
	_c.mutation.SetRevocationReason(v)
	return _c
}

// SetNillableRevocationReason sets the "revocation_reason" field if the given value is not nil.
func (_c *TokenJTICreate) SetNillableRevocationReason(v *string) *TokenJTICreate {
	if v != nil {
		_c.SetRevocationReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenJTICreate) SetCreatedAt(v time.Time) *TokenJTICreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TokenJTICreate) SetNillableCreatedAt(v *time.Time) *TokenJTICreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TokenJTICreate) SetID(v string) *TokenJTICreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TokenJTIMutation object of the builder.
func (_c *TokenJTICreate) Mutation() *TokenJTIMutation {
	return _c.mutation
}

// Save creates the TokenJTI in the database.
func (_c *TokenJTICreate) Save(ctx context.Context) (*TokenJTI, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenJTICreate) SaveX(ctx context.Context) *TokenJTI {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenJTICreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenJTICreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenJTICreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tokenjti.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenJTICreate) check() error {
	if _, ok := _c.mutation.GrantID(); !ok {
		return &ValidationError{Name: "grant_id", err: errors.New(`ent: missing required field "TokenJTI.grant_id"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "TokenJTI.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TokenJTI.created_at"`)}
	}
	return nil
}

func (_c *TokenJTICreate) sqlSave(ctx context.Context) (*TokenJTI, error) {
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
			return nil, fmt.Errorf("unexpected TokenJTI.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TokenJTICreate) createSpec() (*TokenJTI, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenJTI{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokenjti.Table, sqlgraph.NewFieldSpec(tokenjti.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GrantID(); ok {
		_spec.SetField(tokenjti.FieldGrantID, field.TypeString, value)
		_node.GrantID = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(tokenjti.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(tokenjti.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	if value, ok := _c.mutation.RevocationReason(); ok {
		_spec.SetField(tokenjti.FieldRevocationReason, field.TypeString, value)
		_node.RevocationReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokenjti.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TokenJTICreateBulk is the builder for creating many TokenJTI entities in bulk.
type TokenJTICreateBulk struct {
	config
	err      error
	builders []*TokenJTICreate
}

// Save creates the TokenJTI entities in the database.
func (_c *TokenJTICreateBulk) Save(ctx context.Context) ([]*TokenJTI, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenJTI, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenJTIMutation)
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
func (_c *TokenJTICreateBulk) SaveX(ctx context.Context) []*TokenJTI {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenJTICreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenJTICreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
