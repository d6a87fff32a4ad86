// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kavery/platewise/ent/platecheckevent"
	"github.com/kavery/platewise/ent/predicate"
)

// PlateCheckEventDelete is the builder for deleting a PlateCheckEvent entity.
type PlateCheckEventDelete struct {
	config
	hooks    []Hook
	mutation *PlateCheckEventMutation
}

// Where appends a list predicates to the PlateCheckEventDelete builder.
func (_d *PlateCheckEventDelete) Where(ps ...predicate.PlateCheckEvent) *PlateCheckEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PlateCheckEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PlateCheckEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PlateCheckEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(platecheckevent.Table, sqlgraph.NewFieldSpec(platecheckevent.FieldID, field.TypeInt))
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

// PlateCheckEventDeleteOne is the builder for deleting a single PlateCheckEvent entity.
type PlateCheckEventDeleteOne struct {
	_d *PlateCheckEventDelete
}

// Where appends a list predicates to the PlateCheckEventDelete builder.
func (_d *PlateCheckEventDeleteOne) Where(ps ...predicate.PlateCheckEvent) *PlateCheckEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PlateCheckEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{platecheckevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PlateCheckEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
