// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentforge/arc/ent/predicate"
	"github.com/agentforge/arc/ent/workloadprincipal"
)

// WorkloadPrincipalUpdate is the builder for updating WorkloadPrincipal entities.
type WorkloadPrincipalUpdate struct {
	config
	hooks    []Hook
	mutation *WorkloadPrincipalMutation
}

// Where appends a list predicates to the WorkloadPrincipalUpdate builder.
func (_u *WorkloadPrincipalUpdate) Where(ps ...predicate.WorkloadPrincipal) *WorkloadPrincipalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *WorkloadPrincipalUpdate) SetType(v workloadprincipal.Type) *WorkloadPrincipalUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *WorkloadPrincipalUpdate) SetNillableType(v *workloadprincipal.Type) *WorkloadPrincipalUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// Mutation returns the WorkloadPrincipalMutation object of the builder.
func (_u *WorkloadPrincipalUpdate) Mutation() *WorkloadPrincipalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkloadPrincipalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkloadPrincipalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkloadPrincipalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkloadPrincipalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkloadPrincipalUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := workloadprincipal.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "WorkloadPrincipal.type": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkloadPrincipalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workloadprincipal.Table, workloadprincipal.Columns, sqlgraph.NewFieldSpec(workloadprincipal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(workloadprincipal.FieldType, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workloadprincipal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkloadPrincipalUpdateOne is the builder for updating a single WorkloadPrincipal entity.
type WorkloadPrincipalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkloadPrincipalMutation
}

// SetType sets the "type" field.
func (_u *WorkloadPrincipalUpdateOne) SetType(v workloadprincipal.Type) *WorkloadPrincipalUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *WorkloadPrincipalUpdateOne) SetNillableType(v *workloadprincipal.Type) *WorkloadPrincipalUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// Mutation returns the WorkloadPrincipalMutation object of the builder.
func (_u *WorkloadPrincipalUpdateOne) Mutation() *WorkloadPrincipalMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkloadPrincipalUpdate builder.
func (_u *WorkloadPrincipalUpdateOne) Where(ps ...predicate.WorkloadPrincipal) *WorkloadPrincipalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkloadPrincipalUpdateOne) Select(field string, fields ...string) *WorkloadPrincipalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkloadPrincipal entity.
func (_u *WorkloadPrincipalUpdateOne) Save(ctx context.Context) (*WorkloadPrincipal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkloadPrincipalUpdateOne) SaveX(ctx context.Context) *WorkloadPrincipal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkloadPrincipalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkloadPrincipalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkloadPrincipalUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := workloadprincipal.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "WorkloadPrincipal.type": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkloadPrincipalUpdateOne) sqlSave(ctx context.Context) (_node *WorkloadPrincipal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workloadprincipal.Table, workloadprincipal.Columns, sqlgraph.NewFieldSpec(workloadprincipal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkloadPrincipal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workloadprincipal.FieldID)
		for _, f := range fields {
			if !workloadprincipal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workloadprincipal.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(workloadprincipal.FieldType, field.TypeEnum, value)
	}
	_node = &WorkloadPrincipal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workloadprincipal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
