// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/orchestrationgroup"
)

// OrchestrationGroupCreate is the builder for creating a OrchestrationGroup entity.
type OrchestrationGroupCreate struct {
	config
	mutation *OrchestrationGroupMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *OrchestrationGroupCreate) SetTenantID(v string) *OrchestrationGroupCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetOrchestratorRunID sets the "orchestrator_run_id" field.
func (_c *OrchestrationGroupCreate) SetOrchestratorRunID(v string) *OrchestrationGroupCreate {
	_c.mutation.SetOrchestratorRunID(v)
	return _c
}

// SetParentNodeID sets the "parent_node_id" field.
func (_c *OrchestrationGroupCreate) SetParentNodeID(v string) *OrchestrationGroupCreate {
	_c.mutation.SetParentNodeID(v)
	return _c
}

// SetNillableParentNodeID sets the "parent_node_id" field if the given value is not nil.
func (_c *OrchestrationGroupCreate) SetNillableParentNodeID(v *string) *OrchestrationGroupCreate {
	if v != nil {
		_c.SetParentNodeID(*v)
	}
	return _c
}

// SetFailurePolicy sets the "failure_policy" field.
func (_c *OrchestrationGroupCreate) SetFailurePolicy(v orchestrationgroup.FailurePolicy) *OrchestrationGroupCreate {
	_c.mutation.SetFailurePolicy(v)
	return _c
}

// SetNillableFailurePolicy sets the "failure_policy" field if the given value is not nil.
func (_c *OrchestrationGroupCreate) SetNillableFailurePolicy(v *orchestrationgroup.FailurePolicy) *OrchestrationGroupCreate {
	if v != nil {
		_c.SetFailurePolicy(*v)
	}
	return _c
}

// SetJoinMode sets the "join_mode" field.
func (_c *OrchestrationGroupCreate) SetJoinMode(v orchestrationgroup.JoinMode) *OrchestrationGroupCreate {
	_c.mutation.SetJoinMode(v)
	return _c
}

// SetNillableJoinMode sets the "join_mode" field if the given value is not nil.
func (_c *OrchestrationGroupCreate) SetNillableJoinMode(v *orchestrationgroup.JoinMode) *OrchestrationGroupCreate {
	if v != nil {
		_c.SetJoinMode(*v)
	}
	return _c
}

// SetQuorumThreshold sets the "quorum_threshold" field.
func (_c *OrchestrationGroupCreate) SetQuorumThreshold(v int) *OrchestrationGroupCreate {
	_c.mutation.SetQuorumThreshold(v)
	return _c
}

// SetNillableQuorumThreshold sets the "quorum_threshold" field if the given value is not nil.
func (_c *OrchestrationGroupCreate) SetNillableQuorumThreshold(v *int) *OrchestrationGroupCreate {
	if v != nil {
		_c.SetQuorumThreshold(*v)
	}
	return _c
}

// SetTimeoutS sets the "timeout_s" field.
func (_c *OrchestrationGroupCreate) SetTimeoutS(v int) *OrchestrationGroupCreate {
	_c.mutation.SetTimeoutS(v)
	return _c
}

// SetNillableTimeoutS sets the "timeout_s" field if the given value is not nil.
func (_c *OrchestrationGroupCreate) SetNillableTimeoutS(v *int) *OrchestrationGroupCreate {
	if v != nil {
		_c.SetTimeoutS(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *OrchestrationGroupCreate) SetStatus(v orchestrationgroup.Status) *OrchestrationGroupCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OrchestrationGroupCreate) SetNillableStatus(v *orchestrationgroup.Status) *OrchestrationGroupCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCancellationPropagated sets the "cancellation_propagated" field.
func (_c *OrchestrationGroupCreate) SetCancellationPropagated(v int) *OrchestrationGroupCreate {
	_c.mutation.SetCancellationPropagated(v)
	return _c
}

// SetNillableCancellationPropagated sets the "cancellation_propagated" field if the given value is not nil.
func (_c *OrchestrationGroupCreate) SetNillableCancellationPropagated(v *int) *OrchestrationGroupCreate {
	if v != nil {
		_c.SetCancellationPropagated(*v)
	}
	return _c
}

// SetPolicySnapshot sets the "policy_snapshot" field.
func (_c *OrchestrationGroupCreate) SetPolicySnapshot(v map[string]interface{}) *OrchestrationGroupCreate {
	_c.mutation.SetPolicySnapshot(v)
	return _c
}

// SetIdempotencyKeyPrefix sets the "idempotency_key_prefix" field.
func (_c *OrchestrationGroupCreate) SetIdempotencyKeyPrefix(v string) *OrchestrationGroupCreate {
	_c.mutation.SetIdempotencyKeyPrefix(v)
	return _c
}

// SetNillableIdempotencyKeyPrefix sets the "idempotency_key_prefix" field if the given value is not nil.
func (_c *OrchestrationGroupCreate) SetNillableIdempotencyKeyPrefix(v *string) *OrchestrationGroupCreate {
	if v != nil {
		_c.SetIdempotencyKeyPrefix(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *OrchestrationGroupCreate) SetStartedAt(v time.Time) *OrchestrationGroupCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *OrchestrationGroupCreate) SetNillableStartedAt(v *time.Time) *OrchestrationGroupCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *OrchestrationGroupCreate) SetCompletedAt(v time.Time) *OrchestrationGroupCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *OrchestrationGroupCreate) SetNillableCompletedAt(v *time.Time) *OrchestrationGroupCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrchestrationGroupCreate) SetID(v string) *OrchestrationGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OrchestrationGroupMutation object of the builder.
func (_c *OrchestrationGroupCreate) Mutation() *OrchestrationGroupMutation {
	return _c.mutation
}

// Save creates the OrchestrationGroup in the database.
func (_c *OrchestrationGroupCreate) Save(ctx context.Context) (*OrchestrationGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrchestrationGroupCreate) SaveX(ctx context.Context) *OrchestrationGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestrationGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestrationGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrchestrationGroupCreate) defaults() {
	if _, ok := _c.mutation.FailurePolicy(); !ok {
		v := orchestrationgroup.DefaultFailurePolicy
		_c.mutation.SetFailurePolicy(v)
	}
	if _, ok := _c.mutation.JoinMode(); !ok {
		v := orchestrationgroup.DefaultJoinMode
		_c.mutation.SetJoinMode(v)
	}
	if _, ok := _c.mutation.TimeoutS(); !ok {
		v := orchestrationgroup.DefaultTimeoutS
		_c.mutation.SetTimeoutS(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := orchestrationgroup.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CancellationPropagated(); !ok {
		v := orchestrationgroup.DefaultCancellationPropagated
		_c.mutation.SetCancellationPropagated(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := orchestrationgroup.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrchestrationGroupCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "OrchestrationGroup.tenant_id"`)}
	}
	if _, ok := _c.mutation.OrchestratorRunID(); !ok {
		return &ValidationError{Name: "orchestrator_run_id", err: errors.New(`ent: missing required field "OrchestrationGroup.orchestrator_run_id"`)}
	}
	if _, ok := _c.mutation.FailurePolicy(); !ok {
		return &ValidationError{Name: "failure_policy", err: errors.New(`ent: missing required field "OrchestrationGroup.failure_policy"`)}
	}
	if v, ok := _c.mutation.FailurePolicy(); ok {
		if err := orchestrationgroup.FailurePolicyValidator(v); err != nil {
			return &ValidationError{Name: "failure_policy", err: fmt.Errorf(`ent: validator failed for field "OrchestrationGroup.failure_policy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JoinMode(); !ok {
		return &ValidationError{Name: "join_mode", err: errors.New(`ent: missing required field "OrchestrationGroup.join_mode"`)}
	}
	if v, ok := _c.mutation.JoinMode(); ok {
		if err := orchestrationgroup.JoinModeValidator(v); err != nil {
			return &ValidationError{Name: "join_mode", err: fmt.Errorf(`ent: validator failed for field "OrchestrationGroup.join_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeoutS(); !ok {
		return &ValidationError{Name: "timeout_s", err: errors.New(`ent: missing required field "OrchestrationGroup.timeout_s"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OrchestrationGroup.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := orchestrationgroup.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OrchestrationGroup.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancellationPropagated(); !ok {
		return &ValidationError{Name: "cancellation_propagated", err: errors.New(`ent: missing required field "OrchestrationGroup.cancellation_propagated"`)}
	}
	if _, ok := _c.mutation.PolicySnapshot(); !ok {
		return &ValidationError{Name: "policy_snapshot", err: errors.New(`ent: missing required field "OrchestrationGroup.policy_snapshot"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "OrchestrationGroup.started_at"`)}
	}
	return nil
}

func (_c *OrchestrationGroupCreate) sqlSave(ctx context.Context) (*OrchestrationGroup, error) {
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
			return nil, fmt.Errorf("unexpected OrchestrationGroup.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrchestrationGroupCreate) createSpec() (*OrchestrationGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &OrchestrationGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orchestrationgroup.Table, sqlgraph.NewFieldSpec(orchestrationgroup.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(orchestrationgroup.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.OrchestratorRunID(); ok {
		_spec.SetField(orchestrationgroup.FieldOrchestratorRunID, field.TypeString, value)
		_node.OrchestratorRunID = value
	}
	if value, ok := _c.mutation.ParentNodeID(); ok {
		_spec.SetField(orchestrationgroup.FieldParentNodeID, field.TypeString, value)
		_node.ParentNodeID = &value
	}
	if value, ok := _c.mutation.FailurePolicy(); ok {
		_spec.SetField(orchestrationgroup.FieldFailurePolicy, field.TypeEnum, value)
		_node.FailurePolicy = value
	}
	if value, ok := _c.mutation.JoinMode(); ok {
		_spec.SetField(orchestrationgroup.FieldJoinMode, field.TypeEnum, value)
		_node.JoinMode = value
	}
	if value, ok := _c.mutation.QuorumThreshold(); ok {
		_spec.SetField(orchestrationgroup.FieldQuorumThreshold, field.TypeInt, value)
		_node.QuorumThreshold = &value
	}
	if value, ok := _c.mutation.TimeoutS(); ok {
		_spec.SetField(orchestrationgroup.FieldTimeoutS, field.TypeInt, value)
		_node.TimeoutS = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(orchestrationgroup.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CancellationPropagated(); ok {
		_spec.SetField(orchestrationgroup.FieldCancellationPropagated, field.TypeInt, value)
		_node.CancellationPropagated = value
	}
	if value, ok := _c.mutation.PolicySnapshot(); ok {
		_spec.SetField(orchestrationgroup.FieldPolicySnapshot, field.TypeJSON, value)
		_node.PolicySnapshot = value
	}
	if value, ok := _c.mutation.IdempotencyKeyPrefix(); ok {
		_spec.SetField(orchestrationgroup.FieldIdempotencyKeyPrefix, field.TypeString, value)
		_node.IdempotencyKeyPrefix = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(orchestrationgroup.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(orchestrationgroup.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OrchestrationGroupCreateBulk is the builder for creating many OrchestrationGroup entities in bulk.
type OrchestrationGroupCreateBulk struct {
	config
	err      error
	builders []*OrchestrationGroupCreate
}

// Save creates the OrchestrationGroup entities in the database.
func (_c *OrchestrationGroupCreateBulk) Save(ctx context.Context) ([]*OrchestrationGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrchestrationGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrchestrationGroupMutation)
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
func (_c *OrchestrationGroupCreateBulk) SaveX(ctx context.Context) []*OrchestrationGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestrationGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestrationGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
