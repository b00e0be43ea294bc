// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/orchestratorpolicy"
)

// OrchestratorPolicyCreate is the builder for creating a OrchestratorPolicy entity.
type OrchestratorPolicyCreate struct {
	config
	mutation *OrchestratorPolicyMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *OrchestratorPolicyCreate) SetTenantID(v string) *OrchestratorPolicyCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetOrchestratorAgentID sets the "orchestrator_agent_id" field.
func (_c *OrchestratorPolicyCreate) SetOrchestratorAgentID(v string) *OrchestratorPolicyCreate {
	_c.mutation.SetOrchestratorAgentID(v)
	return _c
}

// SetEnforcePublishedOnly sets the "enforce_published_only" field.
func (_c *OrchestratorPolicyCreate) SetEnforcePublishedOnly(v bool) *OrchestratorPolicyCreate {
	_c.mutation.SetEnforcePublishedOnly(v)
	return _c
}

// SetNillableEnforcePublishedOnly sets the "enforce_published_only" field if the given value is not nil.
func (_c *OrchestratorPolicyCreate) SetNillableEnforcePublishedOnly(v *bool) *OrchestratorPolicyCreate {
	if v != nil {
		_c.SetEnforcePublishedOnly(*v)
	}
	return _c
}

// SetDefaultFailurePolicy sets the "default_failure_policy" field.
func (_c *OrchestratorPolicyCreate) SetDefaultFailurePolicy(v orchestratorpolicy.DefaultFailurePolicy) *OrchestratorPolicyCreate {
	_c.mutation.SetDefaultFailurePolicy(v)
	return _c
}

// SetNillableDefaultFailurePolicy sets the "default_failure_policy" field if the given value is not nil.
func (_c *OrchestratorPolicyCreate) SetNillableDefaultFailurePolicy(v *orchestratorpolicy.DefaultFailurePolicy) *OrchestratorPolicyCreate {
	if v != nil {
		_c.SetDefaultFailurePolicy(*v)
	}
	return _c
}

// SetMaxDepth sets the "max_depth" field.
func (_c *OrchestratorPolicyCreate) SetMaxDepth(v int) *OrchestratorPolicyCreate {
	_c.mutation.SetMaxDepth(v)
	return _c
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_c *OrchestratorPolicyCreate) SetNillableMaxDepth(v *int) *OrchestratorPolicyCreate {
	if v != nil {
		_c.SetMaxDepth(*v)
	}
	return _c
}

// SetMaxFanout sets the "max_fanout" field.
func (_c *OrchestratorPolicyCreate) SetMaxFanout(v int) *OrchestratorPolicyCreate {
	_c.mutation.SetMaxFanout(v)
	return _c
}

// SetNillableMaxFanout sets the "max_fanout" field if the given value is not nil.
func (_c *OrchestratorPolicyCreate) SetNillableMaxFanout(v *int) *OrchestratorPolicyCreate {
	if v != nil {
		_c.SetMaxFanout(*v)
	}
	return _c
}

// SetMaxChildrenTotal sets the "max_children_total" field.
func (_c *OrchestratorPolicyCreate) SetMaxChildrenTotal(v int) *OrchestratorPolicyCreate {
	_c.mutation.SetMaxChildrenTotal(v)
	return _c
}

// SetNillableMaxChildrenTotal sets the "max_children_total" field if the given value is not nil.
func (_c *OrchestratorPolicyCreate) SetNillableMaxChildrenTotal(v *int) *OrchestratorPolicyCreate {
	if v != nil {
		_c.SetMaxChildrenTotal(*v)
	}
	return _c
}

// SetJoinTimeoutS sets the "join_timeout_s" field.
func (_c *OrchestratorPolicyCreate) SetJoinTimeoutS(v int) *OrchestratorPolicyCreate {
	_c.mutation.SetJoinTimeoutS(v)
	return _c
}

// SetNillableJoinTimeoutS sets the "join_timeout_s" field if the given value is not nil.
func (_c *OrchestratorPolicyCreate) SetNillableJoinTimeoutS(v *int) *OrchestratorPolicyCreate {
	if v != nil {
		_c.SetJoinTimeoutS(*v)
	}
	return _c
}

// SetAllowedScopeSubset sets the "allowed_scope_subset" field.
func (_c *OrchestratorPolicyCreate) SetAllowedScopeSubset(v []string) *OrchestratorPolicyCreate {
	_c.mutation.SetAllowedScopeSubset(v)
	return _c
}

// SetCapabilityManifestVersion sets the "capability_manifest_version" field.
func (_c *OrchestratorPolicyCreate) SetCapabilityManifestVersion(v string) *OrchestratorPolicyCreate {
	_c.mutation.SetCapabilityManifestVersion(v)
	return _c
}

// SetNillableCapabilityManifestVersion sets the "capability_manifest_version" field if the given value is not nil.
func (_c *OrchestratorPolicyCreate) SetNillableCapabilityManifestVersion(v *string) *OrchestratorPolicyCreate {
	if v != nil {
		_c.SetCapabilityManifestVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrchestratorPolicyCreate) SetCreatedAt(v time.Time) *OrchestratorPolicyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrchestratorPolicyCreate) SetNillableCreatedAt(v *time.Time) *OrchestratorPolicyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrchestratorPolicyCreate) SetUpdatedAt(v time.Time) *OrchestratorPolicyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrchestratorPolicyCreate) SetNillableUpdatedAt(v *time.Time) *OrchestratorPolicyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrchestratorPolicyCreate) SetID(v string) *OrchestratorPolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OrchestratorPolicyMutation object of the builder.
func (_c *OrchestratorPolicyCreate) Mutation() *OrchestratorPolicyMutation {
	return _c.mutation
}

// Save creates the OrchestratorPolicy in the database.
func (_c *OrchestratorPolicyCreate) Save(ctx context.Context) (*OrchestratorPolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrchestratorPolicyCreate) SaveX(ctx context.Context) *OrchestratorPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorPolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorPolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrchestratorPolicyCreate) defaults() {
	if _, ok := _c.mutation.EnforcePublishedOnly(); !ok {
		v := orchestratorpolicy.DefaultEnforcePublishedOnly
		_c.mutation.SetEnforcePublishedOnly(v)
	}
	if _, ok := _c.mutation.DefaultFailurePolicy(); !ok {
		v := orchestratorpolicy.DefaultDefaultFailurePolicy
		_c.mutation.SetDefaultFailurePolicy(v)
	}
	if _, ok := _c.mutation.MaxDepth(); !ok {
		v := orchestratorpolicy.DefaultMaxDepth
		_c.mutation.SetMaxDepth(v)
	}
	if _, ok := _c.mutation.MaxFanout(); !ok {
		v := orchestratorpolicy.DefaultMaxFanout
		_c.mutation.SetMaxFanout(v)
	}
	if _, ok := _c.mutation.MaxChildrenTotal(); !ok {
		v := orchestratorpolicy.DefaultMaxChildrenTotal
		_c.mutation.SetMaxChildrenTotal(v)
	}
	if _, ok := _c.mutation.JoinTimeoutS(); !ok {
		v := orchestratorpolicy.DefaultJoinTimeoutS
		_c.mutation.SetJoinTimeoutS(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := orchestratorpolicy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := orchestratorpolicy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrchestratorPolicyCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "OrchestratorPolicy.tenant_id"`)}
	}
	if _, ok := _c.mutation.OrchestratorAgentID(); !ok {
		return &ValidationError{Name: "orchestrator_agent_id", err: errors.New(`ent: missing required field "OrchestratorPolicy.orchestrator_agent_id"`)}
	}
	if _, ok := _c.mutation.EnforcePublishedOnly(); !ok {
		return &ValidationError{Name: "enforce_published_only", err: errors.New(`ent: missing required field "OrchestratorPolicy.enforce_published_only"`)}
	}
	if _, ok := _c.mutation.DefaultFailurePolicy(); !ok {
		return &ValidationError{Name: "default_failure_policy", err: errors.New(`ent: missing required field "OrchestratorPolicy.default_failure_policy"`)}
	}
	if v, ok := _c.mutation.DefaultFailurePolicy(); ok {
		if err := orchestratorpolicy.DefaultFailurePolicyValidator(v); err != nil {
			return &ValidationError{Name: "default_failure_policy", err: fmt.Errorf(`ent: validator failed for field "OrchestratorPolicy.default_failure_policy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxDepth(); !ok {
		return &ValidationError{Name: "max_depth", err: errors.New(`ent: missing required field "OrchestratorPolicy.max_depth"`)}
	}
	if _, ok := _c.mutation.MaxFanout(); !ok {
		return &ValidationError{Name: "max_fanout", err: errors.New(`ent: missing required field "OrchestratorPolicy.max_fanout"`)}
	}
	if _, ok := _c.mutation.MaxChildrenTotal(); !ok {
		return &ValidationError{Name: "max_children_total", err: errors.New(`ent: missing required field "OrchestratorPolicy.max_children_total"`)}
	}
	if _, ok := _c.mutation.JoinTimeoutS(); !ok {
		return &ValidationError{Name: "join_timeout_s", err: errors.New(`ent: missing required field "OrchestratorPolicy.join_timeout_s"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OrchestratorPolicy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OrchestratorPolicy.updated_at"`)}
	}
	return nil
}

func (_c *OrchestratorPolicyCreate) sqlSave(ctx context.Context) (*OrchestratorPolicy, error) {
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
			return nil, fmt.Errorf("unexpected OrchestratorPolicy.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrchestratorPolicyCreate) createSpec() (*OrchestratorPolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &OrchestratorPolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orchestratorpolicy.Table, sqlgraph.NewFieldSpec(orchestratorpolicy.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(orchestratorpolicy.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.OrchestratorAgentID(); ok {
		_spec.SetField(orchestratorpolicy.FieldOrchestratorAgentID, field.TypeString, value)
		_node.OrchestratorAgentID = value
	}
	if value, ok := _c.mutation.EnforcePublishedOnly(); ok {
		_spec.SetField(orchestratorpolicy.FieldEnforcePublishedOnly, field.TypeBool, value)
		_node.EnforcePublishedOnly = value
	}
	if value, ok := _c.mutation.DefaultFailurePolicy(); ok {
		_spec.SetField(orchestratorpolicy.FieldDefaultFailurePolicy, field.TypeEnum, value)
		_node.DefaultFailurePolicy = value
	}
	if value, ok := _c.mutation.MaxDepth(); ok {
		_spec.SetField(orchestratorpolicy.FieldMaxDepth, field.TypeInt, value)
		_node.MaxDepth = value
	}
	if value, ok := _c.mutation.MaxFanout(); ok {
		_spec.SetField(orchestratorpolicy.FieldMaxFanout, field.TypeInt, value)
		_node.MaxFanout = value
	}
	if value, ok := _c.mutation.MaxChildrenTotal(); ok {
		_spec.SetField(orchestratorpolicy.FieldMaxChildrenTotal, field.TypeInt, value)
		_node.MaxChildrenTotal = value
	}
	if value, ok := _c.mutation.JoinTimeoutS(); ok {
		_spec.SetField(orchestratorpolicy.FieldJoinTimeoutS, field.TypeInt, value)
		_node.JoinTimeoutS = value
	}
	if value, ok := _c.mutation.AllowedScopeSubset(); ok {
		_spec.SetField(orchestratorpolicy.FieldAllowedScopeSubset, field.TypeJSON, value)
		_node.AllowedScopeSubset = value
	}
	if value, ok := _c.mutation.CapabilityManifestVersion(); ok {
		_spec.SetField(orchestratorpolicy.FieldCapabilityManifestVersion, field.TypeString, value)
		_node.CapabilityManifestVersion = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(orchestratorpolicy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(orchestratorpolicy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OrchestratorPolicyCreateBulk is the builder for creating many OrchestratorPolicy entities in bulk.
type OrchestratorPolicyCreateBulk struct {
	config
	err      error
	builders []*OrchestratorPolicyCreate
}

// Save creates the OrchestratorPolicy entities in the database.
func (_c *OrchestratorPolicyCreateBulk) Save(ctx context.Context) ([]*OrchestratorPolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrchestratorPolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrchestratorPolicyMutation)
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
func (_c *OrchestratorPolicyCreateBulk) SaveX(ctx context.Context) []*OrchestratorPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorPolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorPolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
