// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/orchestratortarget"
	"github.com/agentforge/arc/ent/predicate"
)

// OrchestratorTargetDelete is the builder for deleting a OrchestratorTarget entity.
type OrchestratorTargetDelete struct {
	config
	hooks    []Hook
	mutation *OrchestratorTargetMutation
}

// Where appends a list predicates to the OrchestratorTargetDelete builder.
func (_d *OrchestratorTargetDelete) Where(ps ...predicate.OrchestratorTarget) *OrchestratorTargetDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OrchestratorTargetDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestratorTargetDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OrchestratorTargetDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(orchestratortarget.Table, sqlgraph.NewFieldSpec(orchestratortarget.FieldID, field.TypeString))
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

// OrchestratorTargetDeleteOne is the builder for deleting a single OrchestratorTarget entity.
type OrchestratorTargetDeleteOne struct {
	_d *OrchestratorTargetDelete
}

// Where appends a list predicates to the OrchestratorTargetDelete builder.
func (_d *OrchestratorTargetDeleteOne) Where(ps ...predicate.OrchestratorTarget) *OrchestratorTargetDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OrchestratorTargetDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{orchestratortarget.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestratorTargetDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
