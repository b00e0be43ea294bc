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
	"github.com/agentforge/arc/ent/run"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *RunUpdate) SetInput(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *RunUpdate) ClearInput() *RunUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *RunUpdate) SetOutput(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *RunUpdate) ClearOutput() *RunUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetTimeoutS sets the "timeout_s" field.
func (_u *RunUpdate) SetTimeoutS(v int) *RunUpdate {
	_u.mutation.ResetTimeoutS()
	_u.mutation.SetTimeoutS(v)
	return _u
}

// SetNillableTimeoutS sets the "timeout_s" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTimeoutS(v *int) *RunUpdate {
	if v != nil {
		_u.SetTimeoutS(*v)
	}
	return _u
}

// AddTimeoutS adds value to the "timeout_s" field.
func (_u *RunUpdate) AddTimeoutS(v int) *RunUpdate {
	_u.mutation.AddTimeoutS(v)
	return _u
}

// ClearTimeoutS clears the value of the "timeout_s" field.
func (_u *RunUpdate) ClearTimeoutS() *RunUpdate {
	_u.mutation.ClearTimeoutS()
	return _u
}

// SetStatusReason sets the "status_reason" field.
func (_u *RunUpdate) SetStatusReason(v string) *RunUpdate {
	_u.mutation.SetStatusReason(v)
	return _u
}

// SetNillableStatusReason sets the "status_reason" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatusReason(v *string) *RunUpdate {
	if v != nil {
		_u.SetStatusReason(*v)
	}
	return _u
}

// ClearStatusReason clears the value of the "status_reason" field.
func (_u *RunUpdate) ClearStatusReason() *RunUpdate {
	_u.mutation.ClearStatusReason()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ParentRunIDCleared() {
		_spec.ClearField(run.FieldParentRunID, field.TypeString)
	}
	if _u.mutation.ParentNodeIDCleared() {
		_spec.ClearField(run.FieldParentNodeID, field.TypeString)
	}
	if _u.mutation.SpawnKeyCleared() {
		_spec.ClearField(run.FieldSpawnKey, field.TypeString)
	}
	if _u.mutation.OrchestrationGroupIDCleared() {
		_spec.ClearField(run.FieldOrchestrationGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(run.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(run.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(run.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(run.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutS(); ok {
		_spec.SetField(run.FieldTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutS(); ok {
		_spec.AddField(run.FieldTimeoutS, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSCleared() {
		_spec.ClearField(run.FieldTimeoutS, field.TypeInt)
	}
	if value, ok := _u.mutation.StatusReason(); ok {
		_spec.SetField(run.FieldStatusReason, field.TypeString, value)
	}
	if _u.mutation.StatusReasonCleared() {
		_spec.ClearField(run.FieldStatusReason, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *RunUpdateOne) SetInput(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *RunUpdateOne) ClearInput() *RunUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *RunUpdateOne) SetOutput(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *RunUpdateOne) ClearOutput() *RunUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetTimeoutS sets the "timeout_s" field.
func (_u *RunUpdateOne) SetTimeoutS(v int) *RunUpdateOne {
	_u.mutation.ResetTimeoutS()
	_u.mutation.SetTimeoutS(v)
	return _u
}

// SetNillableTimeoutS sets the "timeout_s" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTimeoutS(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetTimeoutS(*v)
	}
	return _u
}

// AddTimeoutS adds value to the "timeout_s" field.
func (_u *RunUpdateOne) AddTimeoutS(v int) *RunUpdateOne {
	_u.mutation.AddTimeoutS(v)
	return _u
}

// ClearTimeoutS clears the value of the "timeout_s" field.
func (_u *RunUpdateOne) ClearTimeoutS() *RunUpdateOne {
	_u.mutation.ClearTimeoutS()
	return _u
}

// SetStatusReason sets the "status_reason" field.
func (_u *RunUpdateOne) SetStatusReason(v string) *RunUpdateOne {
	_u.mutation.SetStatusReason(v)
	return _u
}

// SetNillableStatusReason sets the "status_reason" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatusReason(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetStatusReason(*v)
	}
	return _u
}

// ClearStatusReason clears the value of the "status_reason" field.
func (_u *RunUpdateOne) ClearStatusReason() *RunUpdateOne {
	_u.mutation.ClearStatusReason()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ParentRunIDCleared() {
		_spec.ClearField(run.FieldParentRunID, field.TypeString)
	}
	if _u.mutation.ParentNodeIDCleared() {
		_spec.ClearField(run.FieldParentNodeID, field.TypeString)
	}
	if _u.mutation.SpawnKeyCleared() {
		_spec.ClearField(run.FieldSpawnKey, field.TypeString)
	}
	if _u.mutation.OrchestrationGroupIDCleared() {
		_spec.ClearField(run.FieldOrchestrationGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(run.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(run.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(run.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(run.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutS(); ok {
		_spec.SetField(run.FieldTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutS(); ok {
		_spec.AddField(run.FieldTimeoutS, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSCleared() {
		_spec.ClearField(run.FieldTimeoutS, field.TypeInt)
	}
	if value, ok := _u.mutation.StatusReason(); ok {
		_spec.SetField(run.FieldStatusReason, field.TypeString, value)
	}
	if _u.mutation.StatusReasonCleared() {
		_spec.ClearField(run.FieldStatusReason, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
