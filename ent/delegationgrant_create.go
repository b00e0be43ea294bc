// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/delegationgrant"
)

// DelegationGrantCreate is the builder for creating a DelegationGrant entity.
type DelegationGrantCreate struct {
	config
	mutation *DelegationGrantMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *DelegationGrantCreate) SetTenantID(v string) *DelegationGrantCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPrincipalID sets the "principal_id" field.
func (_c *DelegationGrantCreate) SetPrincipalID(v string) *DelegationGrantCreate {
	_c.mutation.SetPrincipalID(v)
	return _c
}

// SetInitiatorUserID sets the "initiator_user_id" field.
func (_c *DelegationGrantCreate) SetInitiatorUserID(v string) *DelegationGrantCreate {
	_c.mutation.SetInitiatorUserID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *DelegationGrantCreate) SetRunID(v string) *DelegationGrantCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *DelegationGrantCreate) SetNillableRunID(v *string) *DelegationGrantCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetParentGrantID sets the "parent_grant_id" field.
func (_c *DelegationGrantCreate) SetParentGrantID(v string) *DelegationGrantCreate {
	_c.mutation.SetParentGrantID(v)
	return _c
}

// SetNillableParentGrantID sets the "parent_grant_id" field if the given value is not nil.
func (_c *DelegationGrantCreate) SetNillableParentGrantID(v *string) *DelegationGrantCreate {
	if v != nil {
		_c.SetParentGrantID(*v)
	}
	return _c
}

// SetEffectiveScopes sets the "effective_scopes" field.
func (_c *DelegationGrantCreate) SetEffectiveScopes(v []string) *DelegationGrantCreate {
	_c.mutation.SetEffectiveScopes(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DelegationGrantCreate) SetStatus(v delegationgrant.Status) *DelegationGrantCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DelegationGrantCreate) SetNillableStatus(v *delegationgrant.Status) *DelegationGrantCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRevocationReason sets the "revocation_reason" field.
func (_c *DelegationGrantCreate) SetRevocationReason(v string) *DelegationGrantCreate {
	_c.mutation.SetRevocationReason(v)
	return _c
}

// SetNillableRevocationReason sets the "revocation_reason" field if the given value is not nil.
func (_c *DelegationGrantCreate) SetNillableRevocationReason(v *string) *DelegationGrantCreate {
	if v != nil {
		_c.SetRevocationReason(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *DelegationGrantCreate) SetExpiresAt(v time.Time) *DelegationGrantCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DelegationGrantCreate) SetCreatedAt(v time.Time) *DelegationGrantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DelegationGrantCreate) SetNillableCreatedAt(v *time.Time) *DelegationGrantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DelegationGrantCreate) SetID(v string) *DelegationGrantCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DelegationGrantMutation object of the builder.
func (_c *DelegationGrantCreate) Mutation() *DelegationGrantMutation {
	return _c.mutation
}

// Save creates the DelegationGrant in the database.
func (_c *DelegationGrantCreate) Save(ctx context.Context) (*DelegationGrant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DelegationGrantCreate) SaveX(ctx context.Context) *DelegationGrant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DelegationGrantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DelegationGrantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DelegationGrantCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := delegationgrant.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := delegationgrant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DelegationGrantCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "DelegationGrant.tenant_id"`)}
	}
	if _, ok := _c.mutation.PrincipalID(); !ok {
		return &ValidationError{Name: "principal_id", err: errors.New(`ent: missing required field "DelegationGrant.principal_id"`)}
	}
	if _, ok := _c.mutation.InitiatorUserID(); !ok {
		return &ValidationError{Name: "initiator_user_id", err: errors.New(`ent: missing required field "DelegationGrant.initiator_user_id"`)}
	}
	if _, ok := _c.mutation.EffectiveScopes(); !ok {
		return &ValidationError{Name: "effective_scopes", err: errors.New(`ent: missing required field "DelegationGrant.effective_scopes"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DelegationGrant.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := delegationgrant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DelegationGrant.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "DelegationGrant.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DelegationGrant.created_at"`)}
	}
	return nil
}

func (_c *DelegationGrantCreate) sqlSave(ctx context.Context) (*DelegationGrant, error) {
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
			return nil, fmt.Errorf("unexpected DelegationGrant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DelegationGrantCreate) createSpec() (*DelegationGrant, *sqlgraph.CreateSpec) {
	var (
		_node = &DelegationGrant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(delegationgrant.Table, sqlgraph.NewFieldSpec(delegationgrant.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(delegationgrant.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.PrincipalID(); ok {
		_spec.SetField(delegationgrant.FieldPrincipalID, field.TypeString, value)
		_node.PrincipalID = value
	}
	if value, ok := _c.mutation.InitiatorUserID(); ok {
		_spec.SetField(delegationgrant.FieldInitiatorUserID, field.TypeString, value)
		_node.InitiatorUserID = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(delegationgrant.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.ParentGrantID(); ok {
		_spec.SetField(delegationgrant.FieldParentGrantID, field.TypeString, value)
		_node.ParentGrantID = &value
	}
	if value, ok := _c.mutation.EffectiveScopes(); ok {
		_spec.SetField(delegationgrant.FieldEffectiveScopes, field.TypeJSON, value)
		_node.EffectiveScopes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(delegationgrant.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RevocationReason(); ok {
		_spec.SetField(delegationgrant.FieldRevocationReason, field.TypeString, value)
		_node.RevocationReason = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(delegationgrant.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(delegationgrant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DelegationGrantCreateBulk is the builder for creating many DelegationGrant entities in bulk.
type DelegationGrantCreateBulk struct {
	config
	err      error
	builders []*DelegationGrantCreate
}

// Save creates the DelegationGrant entities in the database.
func (_c *DelegationGrantCreateBulk) Save(ctx context.Context) ([]*DelegationGrant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DelegationGrant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DelegationGrantMutation)
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
func (_c *DelegationGrantCreateBulk) SaveX(ctx context.Context) []*DelegationGrant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DelegationGrantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DelegationGrantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
