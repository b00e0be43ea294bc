// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/orchestrationgroup"
	"github.com/agentforge/arc/ent/predicate"
)

// OrchestrationGroupDelete is the builder for deleting a OrchestrationGroup entity.
type OrchestrationGroupDelete struct {
	config
	hooks    []Hook
	mutation *OrchestrationGroupMutation
}

// Where appends a list predicates to the OrchestrationGroupDelete builder.
func (_d *OrchestrationGroupDelete) Where(ps ...predicate.OrchestrationGroup) *OrchestrationGroupDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OrchestrationGroupDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestrationGroupDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OrchestrationGroupDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(orchestrationgroup.Table, sqlgraph.NewFieldSpec(orchestrationgroup.FieldID, field.TypeString))
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

// OrchestrationGroupDeleteOne is the builder for deleting a single OrchestrationGroup entity.
type OrchestrationGroupDeleteOne struct {
	_d *OrchestrationGroupDelete
}

// Where appends a list predicates to the OrchestrationGroupDelete builder.
func (_d *OrchestrationGroupDeleteOne) Where(ps ...predicate.OrchestrationGroup) *OrchestrationGroupDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OrchestrationGroupDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{orchestrationgroup.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestrationGroupDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
