// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/orchestratorpolicy"
	"github.com/agentforge/arc/ent/predicate"
)

// OrchestratorPolicyDelete is the builder for deleting a OrchestratorPolicy entity.
type OrchestratorPolicyDelete struct {
	config
	hooks    []Hook
	mutation *OrchestratorPolicyMutation
}

// Where appends a list predicates to the OrchestratorPolicyDelete builder.
func (_d *OrchestratorPolicyDelete) Where(ps ...predicate.OrchestratorPolicy) *OrchestratorPolicyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OrchestratorPolicyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestratorPolicyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OrchestratorPolicyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(orchestratorpolicy.Table, sqlgraph.NewFieldSpec(orchestratorpolicy.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// OrchestratorPolicyDeleteOne is the builder for deleting a single OrchestratorPolicy entity.
type OrchestratorPolicyDeleteOne struct {
	_d *OrchestratorPolicyDelete
}

// Where appends a list predicates to the OrchestratorPolicyDelete builder.
func (_d *OrchestratorPolicyDeleteOne) Where(ps ...predicate.OrchestratorPolicy) *OrchestratorPolicyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OrchestratorPolicyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{orchestratorpolicy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestratorPolicyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
