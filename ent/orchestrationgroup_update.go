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
	"github.com/agentforge/arc/ent/orchestrationgroup"
	"github.com/agentforge/arc/ent/predicate"
)

// OrchestrationGroupUpdate is the builder for updating OrchestrationGroup entities.
type OrchestrationGroupUpdate struct {
	config
	hooks    []Hook
	mutation *OrchestrationGroupMutation
}

// Where appends a list predicates to the OrchestrationGroupUpdate builder.
func (_u *OrchestrationGroupUpdate) Where(ps ...predicate.OrchestrationGroup) *OrchestrationGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFailurePolicy sets the "failure_policy" field.
func (_u *OrchestrationGroupUpdate) SetFailurePolicy(v orchestrationgroup.FailurePolicy) *OrchestrationGroupUpdate {
	_u.mutation.SetFailurePolicy(v)
	return _u
}

// SetNillableFailurePolicy sets the "failure_policy" field if the given value is not nil.
func (_u *OrchestrationGroupUpdate) SetNillableFailurePolicy(v *orchestrationgroup.FailurePolicy) *OrchestrationGroupUpdate {
	if v != nil {
		_u.SetFailurePolicy(*v)
	}
	return _u
}

// SetJoinMode sets the "join_mode" field.
func (_u *OrchestrationGroupUpdate) SetJoinMode(v orchestrationgroup.JoinMode) *OrchestrationGroupUpdate {
	_u.mutation.SetJoinMode(v)
	return _u
}

// SetNillableJoinMode sets the "join_mode" field if the given value is not nil.
func (_u *OrchestrationGroupUpdate) SetNillableJoinMode(v *orchestrationgroup.JoinMode) *OrchestrationGroupUpdate {
	if v != nil {
		_u.SetJoinMode(*v)
	}
	return _u
}

// SetQuorumThreshold sets the "quorum_threshold" field.
func (_u *OrchestrationGroupUpdate) SetQuorumThreshold(v int) *OrchestrationGroupUpdate {
	_u.mutation.ResetQuorumThreshold()
	_u.mutation.SetQuorumThreshold(v)
	return _u
}

// SetNillableQuorumThreshold sets the "quorum_threshold" field if the given value is not nil.
func (_u *OrchestrationGroupUpdate) SetNillableQuorumThreshold(v *int) *OrchestrationGroupUpdate {
	if v != nil {
		_u.SetQuorumThreshold(*v)
	}
	return _u
}

// AddQuorumThreshold adds value to the "quorum_threshold" field.
func (_u *OrchestrationGroupUpdate) AddQuorumThreshold(v int) *OrchestrationGroupUpdate {
	_u.mutation.AddQuorumThreshold(v)
	return _u
}

// ClearQuorumThreshold clears the value of the "quorum_threshold" field.
func (_u *OrchestrationGroupUpdate) ClearQuorumThreshold() *OrchestrationGroupUpdate {
	_u.mutation.ClearQuorumThreshold()
	return _u
}

// SetTimeoutS sets the "timeout_s" field.
func (_u *OrchestrationGroupUpdate) SetTimeoutS(v int) *OrchestrationGroupUpdate {
	_u.mutation.ResetTimeoutS()
	_u.mutation.SetTimeoutS(v)
	return _u
}

// SetNillableTimeoutS sets the "timeout_s" field if the given value is not nil.
func (_u *OrchestrationGroupUpdate) SetNillableTimeoutS(v *int) *OrchestrationGroupUpdate {
	if v != nil {
		_u.SetTimeoutS(*v)
	}
	return _u
}

// AddTimeoutS adds value to the "timeout_s" field.
func (_u *OrchestrationGroupUpdate) AddTimeoutS(v int) *OrchestrationGroupUpdate {
	_u.mutation.AddTimeoutS(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrchestrationGroupUpdate) SetStatus(v orchestrationgroup.Status) *OrchestrationGroupUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrchestrationGroupUpdate) SetNillableStatus(v *orchestrationgroup.Status) *OrchestrationGroupUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancellationPropagated sets the "cancellation_propagated" field.
func (_u *OrchestrationGroupUpdate) SetCancellationPropagated(v int) *OrchestrationGroupUpdate {
	_u.mutation.ResetCancellationPropagated()
	_u.mutation.SetCancellationPropagated(v)
	return _u
}

// SetNillableCancellationPropagated sets the "cancellation_propagated" field if the given value is not nil.
func (_u *OrchestrationGroupUpdate) SetNillableCancellationPropagated(v *int) *OrchestrationGroupUpdate {
	if v != nil {
		_u.SetCancellationPropagated(*v)
	}
	return _u
}

// AddCancellationPropagated adds value to the "cancellation_propagated" field.
func (_u *OrchestrationGroupUpdate) AddCancellationPropagated(v int) *OrchestrationGroupUpdate {
	_u.mutation.AddCancellationPropagated(v)
	return _u
}

// SetPolicySnapshot sets the "policy_snapshot" field.
func (_u *OrchestrationGroupUpdate) SetPolicySnapshot(v map[string]interface{}) *OrchestrationGroupUpdate {
	_u.mutation.SetPolicySnapshot(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OrchestrationGroupUpdate) SetCompletedAt(v time.Time) *OrchestrationGroupUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OrchestrationGroupUpdate) SetNillableCompletedAt(v *time.Time) *OrchestrationGroupUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OrchestrationGroupUpdate) ClearCompletedAt() *OrchestrationGroupUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the OrchestrationGroupMutation object of the builder.
func (_u *OrchestrationGroupUpdate) Mutation() *OrchestrationGroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrchestrationGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestrationGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrchestrationGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestrationGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrchestrationGroupUpdate) check() error {
	if v, ok := _u.mutation.FailurePolicy(); ok {
		if err := orchestrationgroup.FailurePolicyValidator(v); err != nil {
			return &ValidationError{Name: "failure_policy", err: fmt.Errorf(`ent: validator failed for field "OrchestrationGroup.failure_policy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JoinMode(); ok {
		if err := orchestrationgroup.JoinModeValidator(v); err != nil {
			return &ValidationError{Name: "join_mode", err: fmt.Errorf(`ent: validator failed for field "OrchestrationGroup.join_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := orchestrationgroup.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OrchestrationGroup.status": %w`, err)}
		}
	}
	return nil
}

func (_u *OrchestrationGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orchestrationgroup.Table, orchestrationgroup.Columns, sqlgraph.NewFieldSpec(orchestrationgroup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParentNodeIDCleared() {
		_spec.ClearField(orchestrationgroup.FieldParentNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.FailurePolicy(); ok {
		_spec.SetField(orchestrationgroup.FieldFailurePolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JoinMode(); ok {
		_spec.SetField(orchestrationgroup.FieldJoinMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuorumThreshold(); ok {
		_spec.SetField(orchestrationgroup.FieldQuorumThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuorumThreshold(); ok {
		_spec.AddField(orchestrationgroup.FieldQuorumThreshold, field.TypeInt, value)
	}
	if _u.mutation.QuorumThresholdCleared() {
		_spec.ClearField(orchestrationgroup.FieldQuorumThreshold, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeoutS(); ok {
		_spec.SetField(orchestrationgroup.FieldTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutS(); ok {
		_spec.AddField(orchestrationgroup.FieldTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(orchestrationgroup.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancellationPropagated(); ok {
		_spec.SetField(orchestrationgroup.FieldCancellationPropagated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancellationPropagated(); ok {
		_spec.AddField(orchestrationgroup.FieldCancellationPropagated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PolicySnapshot(); ok {
		_spec.SetField(orchestrationgroup.FieldPolicySnapshot, field.TypeJSON, value)
	}
	if _u.mutation.IdempotencyKeyPrefixCleared() {
		_spec.ClearField(orchestrationgroup.FieldIdempotencyKeyPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(orchestrationgroup.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(orchestrationgroup.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestrationgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrchestrationGroupUpdateOne is the builder for updating a single OrchestrationGroup entity.
type OrchestrationGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrchestrationGroupMutation
}

// SetFailurePolicy sets the "failure_policy" field.
func (_u *OrchestrationGroupUpdateOne) SetFailurePolicy(v orchestrationgroup.FailurePolicy) *OrchestrationGroupUpdateOne {
	_u.mutation.SetFailurePolicy(v)
	return _u
}

// SetNillableFailurePolicy sets the "failure_policy" field if the given value is not nil.
func (_u *OrchestrationGroupUpdateOne) SetNillableFailurePolicy(v *orchestrationgroup.FailurePolicy) *OrchestrationGroupUpdateOne {
	if v != nil {
		_u.SetFailurePolicy(*v)
	}
	return _u
}

// SetJoinMode sets the "join_mode" field.
func (_u *OrchestrationGroupUpdateOne) SetJoinMode(v orchestrationgroup.JoinMode) *OrchestrationGroupUpdateOne {
	_u.mutation.SetJoinMode(v)
	return _u
}

// SetNillableJoinMode sets the "join_mode" field if the given value is not nil.
func (_u *OrchestrationGroupUpdateOne) SetNillableJoinMode(v *orchestrationgroup.JoinMode) *OrchestrationGroupUpdateOne {
	if v != nil {
		_u.SetJoinMode(*v)
	}
	return _u
}

// SetQuorumThreshold sets the "quorum_threshold" field.
func (_u *OrchestrationGroupUpdateOne) SetQuorumThreshold(v int) *OrchestrationGroupUpdateOne {
	_u.mutation.ResetQuorumThreshold()
	_u.mutation.SetQuorumThreshold(v)
	return _u
}

// SetNillableQuorumThreshold sets the "quorum_threshold" field if the given value is not nil.
func (_u *OrchestrationGroupUpdateOne) SetNillableQuorumThreshold(v *int) *OrchestrationGroupUpdateOne {
	if v != nil {
		_u.SetQuorumThreshold(*v)
	}
	return _u
}

// AddQuorumThreshold adds value to the "quorum_threshold" field.
func (_u *OrchestrationGroupUpdateOne) AddQuorumThreshold(v int) *OrchestrationGroupUpdateOne {
	_u.mutation.AddQuorumThreshold(v)
	return _u
}

// ClearQuorumThreshold clears the value of the "quorum_threshold" field.
func (_u *OrchestrationGroupUpdateOne) ClearQuorumThreshold() *OrchestrationGroupUpdateOne {
	_u.mutation.ClearQuorumThreshold()
	return _u
}

// SetTimeoutS sets the "timeout_s" field.
func (_u *OrchestrationGroupUpdateOne) SetTimeoutS(v int) *OrchestrationGroupUpdateOne {
	_u.mutation.ResetTimeoutS()
	_u.mutation.SetTimeoutS(v)
	return _u
}

// SetNillableTimeoutS sets the "timeout_s" field if the given value is not nil.
func (_u *OrchestrationGroupUpdateOne) SetNillableTimeoutS(v *int) *OrchestrationGroupUpdateOne {
	if v != nil {
		_u.SetTimeoutS(*v)
	}
	return _u
}

// AddTimeoutS adds value to the "timeout_s" field.
func (_u *OrchestrationGroupUpdateOne) AddTimeoutS(v int) *OrchestrationGroupUpdateOne {
	_u.mutation.AddTimeoutS(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrchestrationGroupUpdateOne) SetStatus(v orchestrationgroup.Status) *OrchestrationGroupUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrchestrationGroupUpdateOne) SetNillableStatus(v *orchestrationgroup.Status) *OrchestrationGroupUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancellationPropagated sets the "cancellation_propagated" field.
func (_u *OrchestrationGroupUpdateOne) SetCancellationPropagated(v int) *OrchestrationGroupUpdateOne {
	_u.mutation.ResetCancellationPropagated()
	_u.mutation.SetCancellationPropagated(v)
	return _u
}

// SetNillableCancellationPropagated sets the "cancellation_propagated" field if the given value is not nil.
func (_u *OrchestrationGroupUpdateOne) SetNillableCancellationPropagated(v *int) *OrchestrationGroupUpdateOne {
	if v != nil {
		_u.SetCancellationPropagated(*v)
	}
	return _u
}

// AddCancellationPropagated adds value to the "cancellation_propagated" field.
func (_u *OrchestrationGroupUpdateOne) AddCancellationPropagated(v int) *OrchestrationGroupUpdateOne {
	_u.mutation.AddCancellationPropagated(v)
	return _u
}

// SetPolicySnapshot sets the "policy_snapshot" field.
func (_u *OrchestrationGroupUpdateOne) SetPolicySnapshot(v map[string]interface{}) *OrchestrationGroupUpdateOne {
	_u.mutation.SetPolicySnapshot(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OrchestrationGroupUpdateOne) SetCompletedAt(v time.Time) *OrchestrationGroupUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OrchestrationGroupUpdateOne) SetNillableCompletedAt(v *time.Time) *OrchestrationGroupUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OrchestrationGroupUpdateOne) ClearCompletedAt() *OrchestrationGroupUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the OrchestrationGroupMutation object of the builder.
func (_u *OrchestrationGroupUpdateOne) Mutation() *OrchestrationGroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrchestrationGroupUpdate builder.
func (_u *OrchestrationGroupUpdateOne) Where(ps ...predicate.OrchestrationGroup) *OrchestrationGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrchestrationGroupUpdateOne) Select(field string, fields ...string) *OrchestrationGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrchestrationGroup entity.
func (_u *OrchestrationGroupUpdateOne) Save(ctx context.Context) (*OrchestrationGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestrationGroupUpdateOne) SaveX(ctx context.Context) *OrchestrationGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrchestrationGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestrationGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrchestrationGroupUpdateOne) check() error {
	if v, ok := _u.mutation.FailurePolicy(); ok {
		if err := orchestrationgroup.FailurePolicyValidator(v); err != nil {
			return &ValidationError{Name: "failure_policy", err: fmt.Errorf(`ent: validator failed for field "OrchestrationGroup.failure_policy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JoinMode(); ok {
		if err := orchestrationgroup.JoinModeValidator(v); err != nil {
			return &ValidationError{Name: "join_mode", err: fmt.Errorf(`ent: validator failed for field "OrchestrationGroup.join_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := orchestrationgroup.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OrchestrationGroup.status": %w`, err)}
		}
	}
	return nil
}

func (_u *OrchestrationGroupUpdateOne) sqlSave(ctx context.Context) (_node *OrchestrationGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orchestrationgroup.Table, orchestrationgroup.Columns, sqlgraph.NewFieldSpec(orchestrationgroup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrchestrationGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orchestrationgroup.FieldID)
		for _, f := range fields {
			if !orchestrationgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orchestrationgroup.FieldID {
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
	if _u.mutation.ParentNodeIDCleared() {
		_spec.ClearField(orchestrationgroup.FieldParentNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.FailurePolicy(); ok {
		_spec.SetField(orchestrationgroup.FieldFailurePolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JoinMode(); ok {
		_spec.SetField(orchestrationgroup.FieldJoinMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuorumThreshold(); ok {
		_spec.SetField(orchestrationgroup.FieldQuorumThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuorumThreshold(); ok {
		_spec.AddField(orchestrationgroup.FieldQuorumThreshold, field.TypeInt, value)
	}
	if _u.mutation.QuorumThresholdCleared() {
		_spec.ClearField(orchestrationgroup.FieldQuorumThreshold, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeoutS(); ok {
		_spec.SetField(orchestrationgroup.FieldTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutS(); ok {
		_spec.AddField(orchestrationgroup.FieldTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(orchestrationgroup.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancellationPropagated(); ok {
		_spec.SetField(orchestrationgroup.FieldCancellationPropagated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancellationPropagated(); ok {
		_spec.AddField(orchestrationgroup.FieldCancellationPropagated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PolicySnapshot(); ok {
		_spec.SetField(orchestrationgroup.FieldPolicySnapshot, field.TypeJSON, value)
	}
	if _u.mutation.IdempotencyKeyPrefixCleared() {
		_spec.ClearField(orchestrationgroup.FieldIdempotencyKeyPrefix, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(orchestrationgroup.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(orchestrationgroup.FieldCompletedAt, field.TypeTime)
	}
	_node = &OrchestrationGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestrationgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
