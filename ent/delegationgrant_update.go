// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/delegationgrant"
	"github.com/agentforge/arc/ent/predicate"
)

// DelegationGrantUpdate is the builder for updating DelegationGrant entities.
type DelegationGrantUpdate struct {
	config
	hooks    []Hook
	mutation *DelegationGrantMutation
}

// Where appends a list predicates to the DelegationGrantUpdate builder.
func (_u *DelegationGrantUpdate) Where(ps ...predicate.DelegationGrant) *DelegationGrantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *DelegationGrantUpdate) SetRunID(v string) *DelegationGrantUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *DelegationGrantUpdate) SetNillableRunID(v *string) *DelegationGrantUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *DelegationGrantUpdate) ClearRunID() *DelegationGrantUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetEffectiveScopes sets the "effective_scopes" field.
func (_u *DelegationGrantUpdate) SetEffectiveScopes(v []string) *DelegationGrantUpdate {
	_u.mutation.SetEffectiveScopes(v)
	return _u
}

// AppendEffectiveScopes appends value to the "effective_scopes" field.
func (_u *DelegationGrantUpdate) AppendEffectiveScopes(v []string) *DelegationGrantUpdate {
	_u.mutation.AppendEffectiveScopes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DelegationGrantUpdate) SetStatus(v delegationgrant.Status) *DelegationGrantUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DelegationGrantUpdate) SetNillableStatus(v *delegationgrant.Status) *DelegationGrantUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRevocationReason sets the "revocation_reason" field.
func (_u *DelegationGrantUpdate) SetRevocationReason(v string) *DelegationGrantUpdate {
	_u.mutation.SetRevocationReason(v)
	return _u
}

// SetNillableRevocationReason sets the "revocation_reason" field if the given value is not nil.
func (_u *DelegationGrantUpdate) SetNillableRevocationReason(v *string) *DelegationGrantUpdate {
	if v != nil {
		_u.SetRevocationReason(*v)
	}
	return _u
}

// ClearRevocationReason clears the value of the "revocation_reason" field.
func (_u *DelegationGrantUpdate) ClearRevocationReason() *DelegationGrantUpdate {
	_u.mutation.ClearRevocationReason()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *DelegationGrantUpdate) SetExpiresAt(v time.Time) *DelegationGrantUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *DelegationGrantUpdate) SetNillableExpiresAt(v *time.Time) *DelegationGrantUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the DelegationGrantMutation object of the builder.
func (_u *DelegationGrantUpdate) Mutation() *DelegationGrantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DelegationGrantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DelegationGrantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DelegationGrantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DelegationGrantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DelegationGrantUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := delegationgrant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DelegationGrant.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DelegationGrantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(delegationgrant.Table, delegationgrant.Columns, sqlgraph.NewFieldSpec(delegationgrant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(delegationgrant.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(delegationgrant.FieldRunID, field.TypeString)
	}
	if _u.mutation.ParentGrantIDCleared() {
		_spec.ClearField(delegationgrant.FieldParentGrantID, field.TypeString)
	}
	if value, ok := _u.mutation.EffectiveScopes(); ok {
		_spec.SetField(delegationgrant.FieldEffectiveScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEffectiveScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, delegationgrant.FieldEffectiveScopes, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(delegationgrant.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RevocationReason(); ok {
		_spec.SetField(delegationgrant.FieldRevocationReason, field.TypeString, value)
	}
	if _u.mutation.RevocationReasonCleared() {
		_spec.ClearField(delegationgrant.FieldRevocationReason, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(delegationgrant.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{delegationgrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DelegationGrantUpdateOne is the builder for updating a single DelegationGrant entity.
type DelegationGrantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DelegationGrantMutation
}

// SetRunID sets the "run_id" field.
func (_u *DelegationGrantUpdateOne) SetRunID(v string) *DelegationGrantUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *DelegationGrantUpdateOne) SetNillableRunID(v *string) *DelegationGrantUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *DelegationGrantUpdateOne) ClearRunID() *DelegationGrantUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetEffectiveScopes sets the "effective_scopes" field.
func (_u *DelegationGrantUpdateOne) SetEffectiveScopes(v []string) *DelegationGrantUpdateOne {
	_u.mutation.SetEffectiveScopes(v)
	return _u
}

// AppendEffectiveScopes appends value to the "effective_scopes" field.
func (_u *DelegationGrantUpdateOne) AppendEffectiveScopes(v []string) *DelegationGrantUpdateOne {
	_u.mutation.AppendEffectiveScopes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DelegationGrantUpdateOne) SetStatus(v delegationgrant.Status) *DelegationGrantUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DelegationGrantUpdateOne) SetNillableStatus(v *delegationgrant.Status) *DelegationGrantUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRevocationReason sets the "revocation_reason" field.
func (_u *DelegationGrantUpdateOne) SetRevocationReason(v string) *DelegationGrantUpdateOne {
	_u.mutation.SetRevocationReason(v)
	return _u
}

// SetNillableRevocationReason sets the "revocation_reason" field if the given value is not nil.
func (_u *DelegationGrantUpdateOne) SetNillableRevocationReason(v *string) *DelegationGrantUpdateOne {
	if v != nil {
		_u.SetRevocationReason(*v)
	}
	return _u
}

// ClearRevocationReason clears the value of the "revocation_reason" field.
func (_u *DelegationGrantUpdateOne) ClearRevocationReason() *DelegationGrantUpdateOne {
	_u.mutation.ClearRevocationReason()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *DelegationGrantUpdateOne) SetExpiresAt(v time.Time) *DelegationGrantUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *DelegationGrantUpdateOne) SetNillableExpiresAt(v *time.Time) *DelegationGrantUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the DelegationGrantMutation object of the builder.
func (_u *DelegationGrantUpdateOne) Mutation() *DelegationGrantMutation {
	return _u.mutation
}

// Where appends a list predicates to the DelegationGrantUpdate builder.
func (_u *DelegationGrantUpdateOne) Where(ps ...predicate.DelegationGrant) *DelegationGrantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DelegationGrantUpdateOne) Select(field string, fields ...string) *DelegationGrantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DelegationGrant entity.
func (_u *DelegationGrantUpdateOne) Save(ctx context.Context) (*DelegationGrant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DelegationGrantUpdateOne) SaveX(ctx context.Context) *DelegationGrant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DelegationGrantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DelegationGrantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DelegationGrantUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := delegationgrant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DelegationGrant.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DelegationGrantUpdateOne) sqlSave(ctx context.Context) (_node *DelegationGrant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(delegationgrant.Table, delegationgrant.Columns, sqlgraph.NewFieldSpec(delegationgrant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DelegationGrant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, delegationgrant.FieldID)
		for _, f := range fields {
			if !delegationgrant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != delegationgrant.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(delegationgrant.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(delegationgrant.FieldRunID, field.TypeString)
	}
	if _u.mutation.ParentGrantIDCleared() {
		_spec.ClearField(delegationgrant.FieldParentGrantID, field.TypeString)
	}
	if value, ok := _u.mutation.EffectiveScopes(); ok {
		_spec.SetField(delegationgrant.FieldEffectiveScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEffectiveScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, delegationgrant.FieldEffectiveScopes, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(delegationgrant.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RevocationReason(); ok {
		_spec.SetField(delegationgrant.FieldRevocationReason, field.TypeString, value)
	}
	if _u.mutation.RevocationReasonCleared() {
		_spec.ClearField(delegationgrant.FieldRevocationReason, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(delegationgrant.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &DelegationGrant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{delegationgrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
