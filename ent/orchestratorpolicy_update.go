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
	"github.com/agentforge/arc/ent/orchestratorpolicy"
	"github.com/agentforge/arc/ent/predicate"
)

// OrchestratorPolicyUpdate is the builder for updating OrchestratorPolicy entities.
type OrchestratorPolicyUpdate struct {
	config
	hooks    []Hook
	mutation *OrchestratorPolicyMutation
}

// Where appends a list predicates to the OrchestratorPolicyUpdate builder.
func (_u *OrchestratorPolicyUpdate) Where(ps ...predicate.OrchestratorPolicy) *OrchestratorPolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnforcePublishedOnly sets the "enforce_published_only" field.
func (_u *OrchestratorPolicyUpdate) SetEnforcePublishedOnly(v bool) *OrchestratorPolicyUpdate {
	_u.mutation.SetEnforcePublishedOnly(v)
	return _u
}

// SetNillableEnforcePublishedOnly sets the "enforce_published_only" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdate) SetNillableEnforcePublishedOnly(v *bool) *OrchestratorPolicyUpdate {
	if v != nil {
		_u.SetEnforcePublishedOnly(*v)
	}
	return _u
}

// SetDefaultFailurePolicy sets the "default_failure_policy" field.
func (_u *OrchestratorPolicyUpdate) SetDefaultFailurePolicy(v orchestratorpolicy.DefaultFailurePolicy) *OrchestratorPolicyUpdate {
	_u.mutation.SetDefaultFailurePolicy(v)
	return _u
}

// SetNillableDefaultFailurePolicy sets the "default_failure_policy" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdate) SetNillableDefaultFailurePolicy(v *orchestratorpolicy.DefaultFailurePolicy) *OrchestratorPolicyUpdate {
	if v != nil {
		_u.SetDefaultFailurePolicy(*v)
	}
	return _u
}

// SetMaxDepth sets the "max_depth" field.
func (_u *OrchestratorPolicyUpdate) SetMaxDepth(v int) *OrchestratorPolicyUpdate {
	_u.mutation.ResetMaxDepth()
	_u.mutation.SetMaxDepth(v)
	return _u
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdate) SetNillableMaxDepth(v *int) *OrchestratorPolicyUpdate {
	if v != nil {
		_u.SetMaxDepth(*v)
	}
	return _u
}

// AddMaxDepth adds value to the "max_depth" field.
func (_u *OrchestratorPolicyUpdate) AddMaxDepth(v int) *OrchestratorPolicyUpdate {
	_u.mutation.AddMaxDepth(v)
	return _u
}

// SetMaxFanout sets the "max_fanout" field.
func (_u *OrchestratorPolicyUpdate) SetMaxFanout(v int) *OrchestratorPolicyUpdate {
	_u.mutation.ResetMaxFanout()
	_u.mutation.SetMaxFanout(v)
	return _u
}

// SetNillableMaxFanout sets the "max_fanout" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdate) SetNillableMaxFanout(v *int) *OrchestratorPolicyUpdate {
	if v != nil {
		_u.SetMaxFanout(*v)
	}
	return _u
}

// AddMaxFanout adds value to the "max_fanout" field.
func (_u *OrchestratorPolicyUpdate) AddMaxFanout(v int) *OrchestratorPolicyUpdate {
	_u.mutation.AddMaxFanout(v)
	return _u
}

// SetMaxChildrenTotal sets the "max_children_total" field.
func (_u *OrchestratorPolicyUpdate) SetMaxChildrenTotal(v int) *OrchestratorPolicyUpdate {
	_u.mutation.ResetMaxChildrenTotal()
	_u.mutation.SetMaxChildrenTotal(v)
	return _u
}

// SetNillableMaxChildrenTotal sets the "max_children_total" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdate) SetNillableMaxChildrenTotal(v *int) *OrchestratorPolicyUpdate {
	if v != nil {
		_u.SetMaxChildrenTotal(*v)
	}
	return _u
}

// AddMaxChildrenTotal adds value to the "max_children_total" field.
func (_u *OrchestratorPolicyUpdate) AddMaxChildrenTotal(v int) *OrchestratorPolicyUpdate {
	_u.mutation.AddMaxChildrenTotal(v)
	return _u
}

// SetJoinTimeoutS sets the "join_timeout_s" field.
func (_u *OrchestratorPolicyUpdate) SetJoinTimeoutS(v int) *OrchestratorPolicyUpdate {
	_u.mutation.ResetJoinTimeoutS()
	_u.mutation.SetJoinTimeoutS(v)
	return _u
}

// SetNillableJoinTimeoutS sets the "join_timeout_s" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdate) SetNillableJoinTimeoutS(v *int) *OrchestratorPolicyUpdate {
	if v != nil {
		_u.SetJoinTimeoutS(*v)
	}
	return _u
}

// AddJoinTimeoutS adds value to the "join_timeout_s" field.
func (_u *OrchestratorPolicyUpdate) AddJoinTimeoutS(v int) *OrchestratorPolicyUpdate {
	_u.mutation.AddJoinTimeoutS(v)
	return _u
}

// SetAllowedScopeSubset sets the "allowed_scope_subset" field.
func (_u *OrchestratorPolicyUpdate) SetAllowedScopeSubset(v []string) *OrchestratorPolicyUpdate {
	_u.mutation.SetAllowedScopeSubset(v)
	return _u
}

// AppendAllowedScopeSubset appends value to the "allowed_scope_subset" field.
func (_u *OrchestratorPolicyUpdate) AppendAllowedScopeSubset(v []string) *OrchestratorPolicyUpdate {
	_u.mutation.AppendAllowedScopeSubset(v)
	return _u
}

// ClearAllowedScopeSubset clears the value of the "allowed_scope_subset" field.
func (_u *OrchestratorPolicyUpdate) ClearAllowedScopeSubset() *OrchestratorPolicyUpdate {
	_u.mutation.ClearAllowedScopeSubset()
	return _u
}

// SetCapabilityManifestVersion sets the "capability_manifest_version" field.
func (_u *OrchestratorPolicyUpdate) SetCapabilityManifestVersion(v string) *OrchestratorPolicyUpdate {
	_u.mutation.SetCapabilityManifestVersion(v)
	return _u
}

// SetNillableCapabilityManifestVersion sets the "capability_manifest_version" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdate) SetNillableCapabilityManifestVersion(v *string) *OrchestratorPolicyUpdate {
	if v != nil {
		_u.SetCapabilityManifestVersion(*v)
	}
	return _u
}

// ClearCapabilityManifestVersion clears the value of the "capability_manifest_version" field.
func (_u *OrchestratorPolicyUpdate) ClearCapabilityManifestVersion() *OrchestratorPolicyUpdate {
	_u.mutation.ClearCapabilityManifestVersion()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrchestratorPolicyUpdate) SetUpdatedAt(v time.Time) *OrchestratorPolicyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OrchestratorPolicyMutation object of the builder.
func (_u *OrchestratorPolicyUpdate) Mutation() *OrchestratorPolicyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrchestratorPolicyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorPolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrchestratorPolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorPolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrchestratorPolicyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := orchestratorpolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrchestratorPolicyUpdate) check() error {
	if v, ok := _u.mutation.DefaultFailurePolicy(); ok {
		if err := orchestratorpolicy.DefaultFailurePolicyValidator(v); err != nil {
			return &ValidationError{Name: "default_failure_policy", err: fmt.Errorf(`ent: validator failed for field "OrchestratorPolicy.default_failure_policy": %w`, err)}
		}
	}
	return nil
}

func (_u *OrchestratorPolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orchestratorpolicy.Table, orchestratorpolicy.Columns, sqlgraph.NewFieldSpec(orchestratorpolicy.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnforcePublishedOnly(); ok {
		_spec.SetField(orchestratorpolicy.FieldEnforcePublishedOnly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefaultFailurePolicy(); ok {
		_spec.SetField(orchestratorpolicy.FieldDefaultFailurePolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxDepth(); ok {
		_spec.SetField(orchestratorpolicy.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDepth(); ok {
		_spec.AddField(orchestratorpolicy.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxFanout(); ok {
		_spec.SetField(orchestratorpolicy.FieldMaxFanout, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxFanout(); ok {
		_spec.AddField(orchestratorpolicy.FieldMaxFanout, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxChildrenTotal(); ok {
		_spec.SetField(orchestratorpolicy.FieldMaxChildrenTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxChildrenTotal(); ok {
		_spec.AddField(orchestratorpolicy.FieldMaxChildrenTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.JoinTimeoutS(); ok {
		_spec.SetField(orchestratorpolicy.FieldJoinTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJoinTimeoutS(); ok {
		_spec.AddField(orchestratorpolicy.FieldJoinTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllowedScopeSubset(); ok {
		_spec.SetField(orchestratorpolicy.FieldAllowedScopeSubset, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedScopeSubset(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, orchestratorpolicy.FieldAllowedScopeSubset, value)
		})
	}
	if _u.mutation.AllowedScopeSubsetCleared() {
		_spec.ClearField(orchestratorpolicy.FieldAllowedScopeSubset, field.TypeJSON)
	}
	if value, ok := _u.mutation.CapabilityManifestVersion(); ok {
		_spec.SetField(orchestratorpolicy.FieldCapabilityManifestVersion, field.TypeString, value)
	}
	if _u.mutation.CapabilityManifestVersionCleared() {
		_spec.ClearField(orchestratorpolicy.FieldCapabilityManifestVersion, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(orchestratorpolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestratorpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrchestratorPolicyUpdateOne is the builder for updating a single OrchestratorPolicy entity.
type OrchestratorPolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrchestratorPolicyMutation
}

// SetEnforcePublishedOnly sets the "enforce_published_only" field.
func (_u *OrchestratorPolicyUpdateOne) SetEnforcePublishedOnly(v bool) *OrchestratorPolicyUpdateOne {
	_u.mutation.SetEnforcePublishedOnly(v)
	return _u
}

// SetNillableEnforcePublishedOnly sets the "enforce_published_only" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdateOne) SetNillableEnforcePublishedOnly(v *bool) *OrchestratorPolicyUpdateOne {
	if v != nil {
		_u.SetEnforcePublishedOnly(*v)
	}
	return _u
}

// SetDefaultFailurePolicy sets the "default_failure_policy" field.
func (_u *OrchestratorPolicyUpdateOne) SetDefaultFailurePolicy(v orchestratorpolicy.DefaultFailurePolicy) *OrchestratorPolicyUpdateOne {
	_u.mutation.SetDefaultFailurePolicy(v)
	return _u
}

// SetNillableDefaultFailurePolicy sets the "default_failure_policy" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdateOne) SetNillableDefaultFailurePolicy(v *orchestratorpolicy.DefaultFailurePolicy) *OrchestratorPolicyUpdateOne {
	if v != nil {
		_u.SetDefaultFailurePolicy(*v)
	}
	return _u
}

// SetMaxDepth sets the "max_depth" field.
func (_u *OrchestratorPolicyUpdateOne) SetMaxDepth(v int) *OrchestratorPolicyUpdateOne {
	_u.mutation.ResetMaxDepth()
	_u.mutation.SetMaxDepth(v)
	return _u
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdateOne) SetNillableMaxDepth(v *int) *OrchestratorPolicyUpdateOne {
	if v != nil {
		_u.SetMaxDepth(*v)
	}
	return _u
}

// AddMaxDepth adds value to the "max_depth" field.
func (_u *OrchestratorPolicyUpdateOne) AddMaxDepth(v int) *OrchestratorPolicyUpdateOne {
	_u.mutation.AddMaxDepth(v)
	return _u
}

// SetMaxFanout sets the "max_fanout" field.
func (_u *OrchestratorPolicyUpdateOne) SetMaxFanout(v int) *OrchestratorPolicyUpdateOne {
	_u.mutation.ResetMaxFanout()
	_u.mutation.SetMaxFanout(v)
	return _u
}

// SetNillableMaxFanout sets the "max_fanout" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdateOne) SetNillableMaxFanout(v *int) *OrchestratorPolicyUpdateOne {
	if v != nil {
		_u.SetMaxFanout(*v)
	}
	return _u
}

// AddMaxFanout adds value to the "max_fanout" field.
func (_u *OrchestratorPolicyUpdateOne) AddMaxFanout(v int) *OrchestratorPolicyUpdateOne {
	_u.mutation.AddMaxFanout(v)
	return _u
}

// SetMaxChildrenTotal sets the "max_children_total" field.
func (_u *OrchestratorPolicyUpdateOne) SetMaxChildrenTotal(v int) *OrchestratorPolicyUpdateOne {
	_u.mutation.ResetMaxChildrenTotal()
	_u.mutation.SetMaxChildrenTotal(v)
	return _u
}

// SetNillableMaxChildrenTotal sets the "max_children_total" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdateOne) SetNillableMaxChildrenTotal(v *int) *OrchestratorPolicyUpdateOne {
	if v != nil {
		_u.SetMaxChildrenTotal(*v)
	}
	return _u
}

// AddMaxChildrenTotal adds value to the "max_children_total" field.
func (_u *OrchestratorPolicyUpdateOne) AddMaxChildrenTotal(v int) *OrchestratorPolicyUpdateOne {
	_u.mutation.AddMaxChildrenTotal(v)
	return _u
}

// SetJoinTimeoutS sets the "join_timeout_s" field.
func (_u *OrchestratorPolicyUpdateOne) SetJoinTimeoutS(v int) *OrchestratorPolicyUpdateOne {
	_u.mutation.ResetJoinTimeoutS()
	_u.mutation.SetJoinTimeoutS(v)
	return _u
}

// SetNillableJoinTimeoutS sets the "join_timeout_s" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdateOne) SetNillableJoinTimeoutS(v *int) *OrchestratorPolicyUpdateOne {
	if v != nil {
		_u.SetJoinTimeoutS(*v)
	}
	return _u
}

// AddJoinTimeoutS adds value to the "join_timeout_s" field.
func (_u *OrchestratorPolicyUpdateOne) AddJoinTimeoutS(v int) *OrchestratorPolicyUpdateOne {
	_u.mutation.AddJoinTimeoutS(v)
	return _u
}

// SetAllowedScopeSubset sets the "allowed_scope_subset" field.
func (_u *OrchestratorPolicyUpdateOne) SetAllowedScopeSubset(v []string) *OrchestratorPolicyUpdateOne {
	_u.mutation.SetAllowedScopeSubset(v)
	return _u
}

// AppendAllowedScopeSubset appends value to the "allowed_scope_subset" field.
func (_u *OrchestratorPolicyUpdateOne) AppendAllowedScopeSubset(v []string) *OrchestratorPolicyUpdateOne {
	_u.mutation.AppendAllowedScopeSubset(v)
	return _u
}

// ClearAllowedScopeSubset clears the value of the "allowed_scope_subset" field.
func (_u *OrchestratorPolicyUpdateOne) ClearAllowedScopeSubset() *OrchestratorPolicyUpdateOne {
	_u.mutation.ClearAllowedScopeSubset()
	return _u
}

// SetCapabilityManifestVersion sets the "capability_manifest_version" field.
func (_u *OrchestratorPolicyUpdateOne) SetCapabilityManifestVersion(v string) *OrchestratorPolicyUpdateOne {
	_u.mutation.SetCapabilityManifestVersion(v)
	return _u
}

// SetNillableCapabilityManifestVersion sets the "capability_manifest_version" field if the given value is not nil.
func (_u *OrchestratorPolicyUpdateOne) SetNillableCapabilityManifestVersion(v *string) *OrchestratorPolicyUpdateOne {
	if v != nil {
		_u.SetCapabilityManifestVersion(*v)
	}
	return _u
}

// ClearCapabilityManifestVersion clears the value of the "capability_manifest_version" field.
func (_u *OrchestratorPolicyUpdateOne) ClearCapabilityManifestVersion() *OrchestratorPolicyUpdateOne {
	_u.mutation.ClearCapabilityManifestVersion()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrchestratorPolicyUpdateOne) SetUpdatedAt(v time.Time) *OrchestratorPolicyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OrchestratorPolicyMutation object of the builder.
func (_u *OrchestratorPolicyUpdateOne) Mutation() *OrchestratorPolicyMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrchestratorPolicyUpdate builder.
func (_u *OrchestratorPolicyUpdateOne) Where(ps ...predicate.OrchestratorPolicy) *OrchestratorPolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrchestratorPolicyUpdateOne) Select(field string, fields ...string) *OrchestratorPolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrchestratorPolicy entity.
func (_u *OrchestratorPolicyUpdateOne) Save(ctx context.Context) (*OrchestratorPolicy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorPolicyUpdateOne) SaveX(ctx context.Context) *OrchestratorPolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrchestratorPolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorPolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrchestratorPolicyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := orchestratorpolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrchestratorPolicyUpdateOne) check() error {
	if v, ok := _u.mutation.DefaultFailurePolicy(); ok {
		if err := orchestratorpolicy.DefaultFailurePolicyValidator(v); err != nil {
			return &ValidationError{Name: "default_failure_policy", err: fmt.Errorf(`ent: validator failed for field "OrchestratorPolicy.default_failure_policy": %w`, err)}
		}
	}
	return nil
}

func (_u *OrchestratorPolicyUpdateOne) sqlSave(ctx context.Context) (_node *OrchestratorPolicy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orchestratorpolicy.Table, orchestratorpolicy.Columns, sqlgraph.NewFieldSpec(orchestratorpolicy.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrchestratorPolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orchestratorpolicy.FieldID)
		for _, f := range fields {
			if !orchestratorpolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orchestratorpolicy.FieldID {
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
	if value, ok := _u.mutation.EnforcePublishedOnly(); ok {
		_spec.SetField(orchestratorpolicy.FieldEnforcePublishedOnly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefaultFailurePolicy(); ok {
		_spec.SetField(orchestratorpolicy.FieldDefaultFailurePolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxDepth(); ok {
		_spec.SetField(orchestratorpolicy.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDepth(); ok {
		_spec.AddField(orchestratorpolicy.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxFanout(); ok {
		_spec.SetField(orchestratorpolicy.FieldMaxFanout, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxFanout(); ok {
		_spec.AddField(orchestratorpolicy.FieldMaxFanout, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxChildrenTotal(); ok {
		_spec.SetField(orchestratorpolicy.FieldMaxChildrenTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxChildrenTotal(); ok {
		_spec.AddField(orchestratorpolicy.FieldMaxChildrenTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.JoinTimeoutS(); ok {
		_spec.SetField(orchestratorpolicy.FieldJoinTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJoinTimeoutS(); ok {
		_spec.AddField(orchestratorpolicy.FieldJoinTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllowedScopeSubset(); ok {
		_spec.SetField(orchestratorpolicy.FieldAllowedScopeSubset, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedScopeSubset(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, orchestratorpolicy.FieldAllowedScopeSubset, value)
		})
	}
	if _u.mutation.AllowedScopeSubsetCleared() {
		_spec.ClearField(orchestratorpolicy.FieldAllowedScopeSubset, field.TypeJSON)
	}
	if value, ok := _u.mutation.CapabilityManifestVersion(); ok {
		_spec.SetField(orchestratorpolicy.FieldCapabilityManifestVersion, field.TypeString, value)
	}
	if _u.mutation.CapabilityManifestVersionCleared() {
		_spec.ClearField(orchestratorpolicy.FieldCapabilityManifestVersion, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(orchestratorpolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &OrchestratorPolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestratorpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
