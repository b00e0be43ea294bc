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
	"github.com/agentforge/arc/ent/predicate"
	"github.com/agentforge/arc/ent/workloadscopepolicy"
)

// WorkloadScopePolicyUpdate is the builder for updating WorkloadScopePolicy entities.
type WorkloadScopePolicyUpdate struct {
	config
	hooks    []Hook
	mutation *WorkloadScopePolicyMutation
}

// Where appends a list predicates to the WorkloadScopePolicyUpdate builder.
func (_u *WorkloadScopePolicyUpdate) Where(ps ...predicate.WorkloadScopePolicy) *WorkloadScopePolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestedScopes sets the "requested_scopes" field.
func (_u *WorkloadScopePolicyUpdate) SetRequestedScopes(v []string) *WorkloadScopePolicyUpdate {
	_u.mutation.SetRequestedScopes(v)
	return _u
}

// AppendRequestedScopes appends value to the "requested_scopes" field.
func (_u *WorkloadScopePolicyUpdate) AppendRequestedScopes(v []string) *WorkloadScopePolicyUpdate {
	_u.mutation.AppendRequestedScopes(v)
	return _u
}

// SetApprovedScopes sets the "approved_scopes" field.
func (_u *WorkloadScopePolicyUpdate) SetApprovedScopes(v []string) *WorkloadScopePolicyUpdate {
	_u.mutation.SetApprovedScopes(v)
	return _u
}

// AppendApprovedScopes appends value to the "approved_scopes" field.
func (_u *WorkloadScopePolicyUpdate) AppendApprovedScopes(v []string) *WorkloadScopePolicyUpdate {
	_u.mutation.AppendApprovedScopes(v)
	return _u
}

// ClearApprovedScopes clears the value of the "approved_scopes" field.
func (_u *WorkloadScopePolicyUpdate) ClearApprovedScopes() *WorkloadScopePolicyUpdate {
	_u.mutation.ClearApprovedScopes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkloadScopePolicyUpdate) SetStatus(v workloadscopepolicy.Status) *WorkloadScopePolicyUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkloadScopePolicyUpdate) SetNillableStatus(v *workloadscopepolicy.Status) *WorkloadScopePolicyUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *WorkloadScopePolicyUpdate) SetVersion(v int) *WorkloadScopePolicyUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *WorkloadScopePolicyUpdate) SetNillableVersion(v *int) *WorkloadScopePolicyUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *WorkloadScopePolicyUpdate) AddVersion(v int) *WorkloadScopePolicyUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkloadScopePolicyUpdate) SetUpdatedAt(v time.Time) *WorkloadScopePolicyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkloadScopePolicyMutation object of the builder.
func (_u *WorkloadScopePolicyUpdate) Mutation() *WorkloadScopePolicyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkloadScopePolicyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkloadScopePolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkloadScopePolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkloadScopePolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkloadScopePolicyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workloadscopepolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkloadScopePolicyUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workloadscopepolicy.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkloadScopePolicy.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkloadScopePolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workloadscopepolicy.Table, workloadscopepolicy.Columns, sqlgraph.NewFieldSpec(workloadscopepolicy.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestedScopes(); ok {
		_spec.SetField(workloadscopepolicy.FieldRequestedScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workloadscopepolicy.FieldRequestedScopes, value)
		})
	}
	if value, ok := _u.mutation.ApprovedScopes(); ok {
		_spec.SetField(workloadscopepolicy.FieldApprovedScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApprovedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workloadscopepolicy.FieldApprovedScopes, value)
		})
	}
	if _u.mutation.ApprovedScopesCleared() {
		_spec.ClearField(workloadscopepolicy.FieldApprovedScopes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workloadscopepolicy.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(workloadscopepolicy.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(workloadscopepolicy.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workloadscopepolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workloadscopepolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkloadScopePolicyUpdateOne is the builder for updating a single WorkloadScopePolicy entity.
type WorkloadScopePolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkloadScopePolicyMutation
}

// SetRequestedScopes sets the "requested_scopes" field.
func (_u *WorkloadScopePolicyUpdateOne) SetRequestedScopes(v []string) *WorkloadScopePolicyUpdateOne {
	_u.mutation.SetRequestedScopes(v)
	return _u
}

// AppendRequestedScopes appends value to the "requested_scopes" field.
func (_u *WorkloadScopePolicyUpdateOne) AppendRequestedScopes(v []string) *WorkloadScopePolicyUpdateOne {
	_u.mutation.AppendRequestedScopes(v)
	return _u
}

// SetApprovedScopes sets the "approved_scopes" field.
func (_u *WorkloadScopePolicyUpdateOne) SetApprovedScopes(v []string) *WorkloadScopePolicyUpdateOne {
	_u.mutation.SetApprovedScopes(v)
	return _u
}

// AppendApprovedScopes appends value to the "approved_scopes" field.
func (_u *WorkloadScopePolicyUpdateOne) AppendApprovedScopes(v []string) *WorkloadScopePolicyUpdateOne {
	_u.mutation.AppendApprovedScopes(v)
	return _u
}

// ClearApprovedScopes clears the value of the "approved_scopes" field.
func (_u *WorkloadScopePolicyUpdateOne) ClearApprovedScopes() *WorkloadScopePolicyUpdateOne {
	_u.mutation.ClearApprovedScopes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkloadScopePolicyUpdateOne) SetStatus(v workloadscopepolicy.Status) *WorkloadScopePolicyUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkloadScopePolicyUpdateOne) SetNillableStatus(v *workloadscopepolicy.Status) *WorkloadScopePolicyUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *WorkloadScopePolicyUpdateOne) SetVersion(v int) *WorkloadScopePolicyUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *WorkloadScopePolicyUpdateOne) SetNillableVersion(v *int) *WorkloadScopePolicyUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *WorkloadScopePolicyUpdateOne) AddVersion(v int) *WorkloadScopePolicyUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkloadScopePolicyUpdateOne) SetUpdatedAt(v time.Time) *WorkloadScopePolicyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkloadScopePolicyMutation object of the builder.
func (_u *WorkloadScopePolicyUpdateOne) Mutation() *WorkloadScopePolicyMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkloadScopePolicyUpdate builder.
func (_u *WorkloadScopePolicyUpdateOne) Where(ps ...predicate.WorkloadScopePolicy) *WorkloadScopePolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkloadScopePolicyUpdateOne) Select(field string, fields ...string) *WorkloadScopePolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkloadScopePolicy entity.
func (_u *WorkloadScopePolicyUpdateOne) Save(ctx context.Context) (*WorkloadScopePolicy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkloadScopePolicyUpdateOne) SaveX(ctx context.Context) *WorkloadScopePolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkloadScopePolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkloadScopePolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkloadScopePolicyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workloadscopepolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkloadScopePolicyUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workloadscopepolicy.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkloadScopePolicy.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkloadScopePolicyUpdateOne) sqlSave(ctx context.Context) (_node *WorkloadScopePolicy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workloadscopepolicy.Table, workloadscopepolicy.Columns, sqlgraph.NewFieldSpec(workloadscopepolicy.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkloadScopePolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workloadscopepolicy.FieldID)
		for _, f := range fields {
			if !workloadscopepolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workloadscopepolicy.FieldID {
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
	if value, ok := _u.mutation.RequestedScopes(); ok {
		_spec.SetField(workloadscopepolicy.FieldRequestedScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workloadscopepolicy.FieldRequestedScopes, value)
		})
	}
	if value, ok := _u.mutation.ApprovedScopes(); ok {
		_spec.SetField(workloadscopepolicy.FieldApprovedScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApprovedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workloadscopepolicy.FieldApprovedScopes, value)
		})
	}
	if _u.mutation.ApprovedScopesCleared() {
		_spec.ClearField(workloadscopepolicy.FieldApprovedScopes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workloadscopepolicy.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(workloadscopepolicy.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(workloadscopepolicy.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workloadscopepolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkloadScopePolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workloadscopepolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
