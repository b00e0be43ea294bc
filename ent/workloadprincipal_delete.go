// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/predicate"
	"github.com/agentforge/arc/ent/workloadprincipal"
)

// WorkloadPrincipalDelete is the builder for deleting a WorkloadPrincipal entity.
type WorkloadPrincipalDelete struct {
	config
	hooks    []Hook
	mutation *WorkloadPrincipalMutation
}

// Where appends a list predicates to the WorkloadPrincipalDelete builder.
func (_d *WorkloadPrincipalDelete) Where(ps ...predicate.WorkloadPrincipal) *WorkloadPrincipalDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WorkloadPrincipalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkloadPrincipalDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WorkloadPrincipalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workloadprincipal.Table, sqlgraph.NewFieldSpec(workloadprincipal.FieldID, field.TypeString))
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

// WorkloadPrincipalDeleteOne is the builder for deleting a single WorkloadPrincipal entity.
type WorkloadPrincipalDeleteOne struct {
	_d *WorkloadPrincipalDelete
}

// Where appends a list predicates to the WorkloadPrincipalDelete builder.
func (_d *WorkloadPrincipalDeleteOne) Where(ps ...predicate.WorkloadPrincipal) *WorkloadPrincipalDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WorkloadPrincipalDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workloadprincipal.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkloadPrincipalDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
