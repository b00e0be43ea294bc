// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/delegationgrant"
	"github.com/agentforge/arc/ent/predicate"
)

// DelegationGrantDelete is the builder for deleting a DelegationGrant entity.
type DelegationGrantDelete struct {
	config
	hooks    []Hook
	mutation *DelegationGrantMutation
}

// Where appends a list predicates to the DelegationGrantDelete builder.
func (_d *DelegationGrantDelete) Where(ps ...predicate.DelegationGrant) *DelegationGrantDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DelegationGrantDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DelegationGrantDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DelegationGrantDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(delegationgrant.Table, sqlgraph.NewFieldSpec(delegationgrant.FieldID, field.TypeString))
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

// DelegationGrantDeleteOne is the builder for deleting a single DelegationGrant entity.
type DelegationGrantDeleteOne struct {
	_d *DelegationGrantDelete
}

// Where appends a list predicates to the DelegationGrantDelete builder.
func (_d *DelegationGrantDeleteOne) Where(ps ...predicate.DelegationGrant) *DelegationGrantDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DelegationGrantDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{delegationgrant.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DelegationGrantDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
