// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/predicate"
	"github.com/agentforge/arc/ent/workloadscopepolicy"
)

// WorkloadScopePolicyDelete is the builder for deleting a WorkloadScopePolicy entity.
type WorkloadScopePolicyDelete struct {
	config
	hooks    []Hook
	mutation *WorkloadScopePolicyMutation
}

// Where appends a list predicates to the WorkloadScopePolicyDelete builder.
func (_d *WorkloadScopePolicyDelete) Where(ps ...predicate.WorkloadScopePolicy) *WorkloadScopePolicyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WorkloadScopePolicyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkloadScopePolicyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WorkloadScopePolicyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workloadscopepolicy.Table, sqlgraph.NewFieldSpec(workloadscopepolicy.FieldID, field.TypeString))
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

// WorkloadScopePolicyDeleteOne is the builder for deleting a single WorkloadScopePolicy entity.
type WorkloadScopePolicyDeleteOne struct {
	_d *WorkloadScopePolicyDelete
}

// Where appends a list predicates to the WorkloadScopePolicyDelete builder.
func (_d *WorkloadScopePolicyDeleteOne) Where(ps ...predicate.WorkloadScopePolicy) *WorkloadScopePolicyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WorkloadScopePolicyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workloadscopepolicy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkloadScopePolicyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
