// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/predicate"
	"github.com/agentforge/arc/ent/tokenjti"
)

// TokenJTIUpdate is the builder for updating TokenJTI entities.
type TokenJTIUpdate struct {
	config
	hooks    []Hook
	mutation *TokenJTIMutation
}

// Where appends a list predicates to the TokenJTIUpdate builder.
func (_u *TokenJTIUpdate) Where(ps ...predicate.TokenJTI) *TokenJTIUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *TokenJTIUpdate) SetExpiresAt(v time.Time) *TokenJTIUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *TokenJTIUpdate) SetNillableExpiresAt(v *time.Time) *TokenJTIUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *TokenJTIUpdate) SetRevokedAt(v time.Time) *TokenJTIUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *TokenJTIUpdate) SetNillableRevokedAt(v *time.Time) *TokenJTIUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *TokenJTIUpdate) ClearRevokedAt() *TokenJTIUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// SetRevocationReason sets the "revocation_reason" field.
func (_u *TokenJTIUpdate) SetRevocationReason(v string) *TokenJTIUpdate {
	_u.mutation.SetRevocationReason(v)
	return _u
}

// SetNillableRevocationReason sets the "revocation_reason" field if the given value is not nil.
func (_u *TokenJTIUpdate) SetNillableRevocationReason(v *string) *TokenJTIUpdate {
	if v != nil {
		_u.SetRevocationReason(*v)
	}
	return _u
}

// ClearRevocationReason clears the value of the "revocation_reason" field.
func (_u *TokenJTIUpdate) ClearRevocationReason() *TokenJTIUpdate {
	_u.mutation.ClearRevocationReason()
	return _u
}

// Mutation returns the TokenJTIMutation object of the builder.
func (_u *TokenJTIUpdate) Mutation() *TokenJTIMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenJTIUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenJTIUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenJTIUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenJTIUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TokenJTIUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tokenjti.Table, tokenjti.Columns, sqlgraph.NewFieldSpec(tokenjti.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(tokenjti.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(tokenjti.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(tokenjti.FieldRevokedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RevocationReason(); ok {
		_spec.SetField(tokenjti.FieldRevocationReason, field.TypeString, value)
	}
	if _u.mutation.RevocationReasonCleared() {
		_spec.ClearField(tokenjti.FieldRevocationReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenjti.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenJTIUpdateOne is the builder for updating a single TokenJTI entity.
type TokenJTIUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenJTIMutation
}

// SetExpiresAt sets the "expires_at" field.
func (_u *TokenJTIUpdateOne) SetExpiresAt(v time.Time) *TokenJTIUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *TokenJTIUpdateOne) SetNillableExpiresAt(v *time.Time) *TokenJTIUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *TokenJTIUpdateOne) SetRevokedAt(v time.Time) *TokenJTIUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *TokenJTIUpdateOne) SetNillableRevokedAt(v *time.Time) *TokenJTIUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *TokenJTIUpdateOne) ClearRevokedAt() *TokenJTIUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// SetRevocationReason sets the "revocation_reason" field.
func (_u *TokenJTIUpdateOne) SetRevocationReason(v string) *TokenJTIUpdateOne {
	_u.mutation.SetRevocationReason(v)
	return _u
}

// SetNillableRevocationReason sets the "revocation_reason" field if the given value is not nil.
func (_u *TokenJTIUpdateOne) SetNillableRevocationReason(v *string) *TokenJTIUpdateOne {
	if v != nil {
		_u.SetRevocationReason(*v)
	}
	return _u
}

// ClearRevocationReason clears the value of the "revocation_reason" field.
func (_u *TokenJTIUpdateOne) ClearRevocationReason() *TokenJTIUpdateOne {
	_u.mutation.ClearRevocationReason()
	return _u
}

// Mutation returns the TokenJTIMutation object of the builder.
func (_u *TokenJTIUpdateOne) Mutation() *TokenJTIMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenJTIUpdate builder.
func (_u *TokenJTIUpdateOne) Where(ps ...predicate.TokenJTI) *TokenJTIUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenJTIUpdateOne) Select(field string, fields ...string) *TokenJTIUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenJTI entity.
func (_u *TokenJTIUpdateOne) Save(ctx context.Context) (*TokenJTI, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenJTIUpdateOne) SaveX(ctx context.Context) *TokenJTI {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenJTIUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenJTIUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TokenJTIUpdateOne) sqlSave(ctx context.Context) (_node *TokenJTI, err error) {
	_spec := sqlgraph.NewUpdateSpec(tokenjti.Table, tokenjti.Columns, sqlgraph.NewFieldSpec(tokenjti.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenJTI.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenjti.FieldID)
		for _, f := range fields {
			if !tokenjti.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenjti.FieldID {
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
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(tokenjti.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(tokenjti.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(tokenjti.FieldRevokedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RevocationReason(); ok {
		_spec.SetField(tokenjti.FieldRevocationReason, field.TypeString, value)
	}
	if _u.mutation.RevocationReasonCleared() {
		_spec.ClearField(tokenjti.FieldRevocationReason, field.TypeString)
	}
	_node = &TokenJTI{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenjti.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
