// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/run"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *RunCreate) SetTenantID(v string) *RunCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *RunCreate) SetAgentID(v string) *RunCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetInitiatorUserID sets the "initiator_user_id" field.
func (_c *RunCreate) SetInitiatorUserID(v string) *RunCreate {
	_c.mutation.SetInitiatorUserID(v)
	return _c
}

// SetWorkloadPrincipalID sets the "workload_principal_id" field.
func (_c *RunCreate) SetWorkloadPrincipalID(v string) *RunCreate {
	_c.mutation.SetWorkloadPrincipalID(v)
	return _c
}

// SetDelegationGrantID sets the "delegation_grant_id" field.
func (_c *RunCreate) SetDelegationGrantID(v string) *RunCreate {
	_c.mutation.SetDelegationGrantID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRootRunID sets the "root_run_id" field.
func (_c *RunCreate) SetRootRunID(v string) *RunCreate {
	_c.mutation.SetRootRunID(v)
	return _c
}

// SetParentRunID sets the "parent_run_id" field.
func (_c *RunCreate) SetParentRunID(v string) *RunCreate {
	_c.mutation.SetParentRunID(v)
	return _c
}

// SetNillableParentRunID sets the "parent_run_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableParentRunID(v *string) *RunCreate {
	if v != nil {
		_c.SetParentRunID(*v)
	}
	return _c
}

// SetParentNodeID sets the "parent_node_id" field.
func (_c *RunCreate) SetParentNodeID(v string) *RunCreate {
	_c.mutation.SetParentNodeID(v)
	return _c
}

// SetNillableParentNodeID sets the "parent_node_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableParentNodeID(v *string) *RunCreate {
	if v != nil {
		_c.SetParentNodeID(*v)
	}
	return _c
}

// SetDepth sets the "depth" field.
func (_c *RunCreate) SetDepth(v int) *RunCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *RunCreate) SetNillableDepth(v *int) *RunCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetSpawnKey sets the "spawn_key" field.
func (_c *RunCreate) SetSpawnKey(v string) *RunCreate {
	_c.mutation.SetSpawnKey(v)
	return _c
}

// SetNillableSpawnKey sets the "spawn_key" field if the given value is not nil.
func (_c *RunCreate) SetNillableSpawnKey(v *string) *RunCreate {
	if v != nil {
		_c.SetSpawnKey(*v)
	}
	return _c
}

// SetOrchestrationGroupID sets the "orchestration_group_id" field.
func (_c *RunCreate) SetOrchestrationGroupID(v string) *RunCreate {
	_c.mutation.SetOrchestrationGroupID(v)
	return _c
}

// SetNillableOrchestrationGroupID sets the "orchestration_group_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableOrchestrationGroupID(v *string) *RunCreate {
	if v != nil {
		_c.SetOrchestrationGroupID(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *RunCreate) SetInput(v map[string]interface{}) *RunCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *RunCreate) SetOutput(v map[string]interface{}) *RunCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetTimeoutS sets the "timeout_s" field.
func (_c *RunCreate) SetTimeoutS(v int) *RunCreate {
	_c.mutation.SetTimeoutS(v)
	return _c
}

// SetNillableTimeoutS sets the "timeout_s" field if the given value is not nil.
func (_c *RunCreate) SetNillableTimeoutS(v *int) *RunCreate {
	if v != nil {
		_c.SetTimeoutS(*v)
	}
	return _c
}

// SetStatusReason sets the "status_reason" field.
func (_c *RunCreate) SetStatusReason(v string) *RunCreate {
	_c.mutation.SetStatusReason(v)
	return _c
}

// SetNillableStatusReason sets the "status_reason" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatusReason(v *string) *RunCreate {
	if v != nil {
		_c.SetStatusReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := run.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Run.tenant_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Run.agent_id"`)}
	}
	if _, ok := _c.mutation.InitiatorUserID(); !ok {
		return &ValidationError{Name: "initiator_user_id", err: errors.New(`ent: missing required field "Run.initiator_user_id"`)}
	}
	if _, ok := _c.mutation.WorkloadPrincipalID(); !ok {
		return &ValidationError{Name: "workload_principal_id", err: errors.New(`ent: missing required field "Run.workload_principal_id"`)}
	}
	if _, ok := _c.mutation.DelegationGrantID(); !ok {
		return &ValidationError{Name: "delegation_grant_id", err: errors.New(`ent: missing required field "Run.delegation_grant_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RootRunID(); !ok {
		return &ValidationError{Name: "root_run_id", err: errors.New(`ent: missing required field "Run.root_run_id"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "Run.depth"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(run.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(run.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.InitiatorUserID(); ok {
		_spec.SetField(run.FieldInitiatorUserID, field.TypeString, value)
		_node.InitiatorUserID = value
	}
	if value, ok := _c.mutation.WorkloadPrincipalID(); ok {
		_spec.SetField(run.FieldWorkloadPrincipalID, field.TypeString, value)
		_node.WorkloadPrincipalID = value
	}
	if value, ok := _c.mutation.DelegationGrantID(); ok {
		_spec.SetField(run.FieldDelegationGrantID, field.TypeString, value)
		_node.DelegationGrantID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RootRunID(); ok {
		_spec.SetField(run.FieldRootRunID, field.TypeString, value)
		_node.RootRunID = value
	}
	if value, ok := _c.mutation.ParentRunID(); ok {
		_spec.SetField(run.FieldParentRunID, field.TypeString, value)
		_node.ParentRunID = &value
	}
	if value, ok := _c.mutation.ParentNodeID(); ok {
		_spec.SetField(run.FieldParentNodeID, field.TypeString, value)
		_node.ParentNodeID = &value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(run.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.SpawnKey(); ok {
		_spec.SetField(run.FieldSpawnKey, field.TypeString, value)
		_node.SpawnKey = &value
	}
	if value, ok := _c.mutation.OrchestrationGroupID(); ok {
		_spec.SetField(run.FieldOrchestrationGroupID, field.TypeString, value)
		_node.OrchestrationGroupID = &value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(run.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(run.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.TimeoutS(); ok {
		_spec.SetField(run.FieldTimeoutS, field.TypeInt, value)
		_node.TimeoutS = &value
	}
	if value, ok := _c.mutation.StatusReason(); ok {
		_spec.SetField(run.FieldStatusReason, field.TypeString, value)
		_node.StatusReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
