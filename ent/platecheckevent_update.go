// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kavery/platewise/ent/platecheckevent"
	"github.com/kavery/platewise/ent/predicate"
)

// PlateCheckEventUpdate is the builder for updating PlateCheckEvent entities.
type PlateCheckEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlateCheckEventMutation
}

// Where appends a list predicates to the PlateCheckEventUpdate builder.
func (_u *PlateCheckEventUpdate) Where(ps ...predicate.PlateCheckEvent) *PlateCheckEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCheckID sets the "check_id" field.
func (_u *PlateCheckEventUpdate) SetCheckID(v string) *PlateCheckEventUpdate {
	_u.mutation.SetCheckID(v)
	return _u
}

// SetNillableCheckID sets the "check_id" field if the given value is not nil.
func (_u *PlateCheckEventUpdate) SetNillableCheckID(v *string) *PlateCheckEventUpdate {
	if v != nil {
		_u.SetCheckID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PlateCheckEventUpdate) SetUserID(v string) *PlateCheckEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlateCheckEventUpdate) SetNillableUserID(v *string) *PlateCheckEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetHasProtein sets the "has_protein" field.
func (_u *PlateCheckEventUpdate) SetHasProtein(v bool) *PlateCheckEventUpdate {
	_u.mutation.SetHasProtein(v)
	return _u
}

// SetNillableHasProtein sets the "has_protein" field if the given value is not nil.
func (_u *PlateCheckEventUpdate) SetNillableHasProtein(v *bool) *PlateCheckEventUpdate {
	if v != nil {
		_u.SetHasProtein(*v)
	}
	return _u
}

// SetHasPlants sets the "has_plants" field.
func (_u *PlateCheckEventUpdate) SetHasPlants(v bool) *PlateCheckEventUpdate {
	_u.mutation.SetHasPlants(v)
	return _u
}

// SetNillableHasPlants sets the "has_plants" field if the given value is not nil.
func (_u *PlateCheckEventUpdate) SetNillableHasPlants(v *bool) *PlateCheckEventUpdate {
	if v != nil {
		_u.SetHasPlants(*v)
	}
	return _u
}

// SetReactionType sets the "reaction_type" field.
func (_u *PlateCheckEventUpdate) SetReactionType(v string) *PlateCheckEventUpdate {
	_u.mutation.SetReactionType(v)
	return _u
}

// SetNillableReactionType sets the "reaction_type" field if the given value is not nil.
func (_u *PlateCheckEventUpdate) SetNillableReactionType(v *string) *PlateCheckEventUpdate {
	if v != nil {
		_u.SetReactionType(*v)
	}
	return _u
}

// SetReactionID sets the "reaction_id" field.
func (_u *PlateCheckEventUpdate) SetReactionID(v string) *PlateCheckEventUpdate {
	_u.mutation.SetReactionID(v)
	return _u
}

// SetNillableReactionID sets the "reaction_id" field if the given value is not nil.
func (_u *PlateCheckEventUpdate) SetNillableReactionID(v *string) *PlateCheckEventUpdate {
	if v != nil {
		_u.SetReactionID(*v)
	}
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *PlateCheckEventUpdate) SetSuggestion(v string) *PlateCheckEventUpdate {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *PlateCheckEventUpdate) SetNillableSuggestion(v *string) *PlateCheckEventUpdate {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// Mutation returns the PlateCheckEventMutation object of the builder.
func (_u *PlateCheckEventUpdate) Mutation() *PlateCheckEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlateCheckEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlateCheckEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlateCheckEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlateCheckEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlateCheckEventUpdate) check() error {
	if v, ok := _u.mutation.CheckID(); ok {
		if err := platecheckevent.CheckIDValidator(v); err != nil {
			return &ValidationError{Name: "check_id", err: fmt.Errorf(`ent: validator failed for field "PlateCheckEvent.check_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := platecheckevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlateCheckEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReactionType(); ok {
		if err := platecheckevent.ReactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "reaction_type", err: fmt.Errorf(`ent: validator failed for field "PlateCheckEvent.reaction_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PlateCheckEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(platecheckevent.Table, platecheckevent.Columns, sqlgraph.NewFieldSpec(platecheckevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CheckID(); ok {
		_spec.SetField(platecheckevent.FieldCheckID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(platecheckevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasProtein(); ok {
		_spec.SetField(platecheckevent.FieldHasProtein, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasPlants(); ok {
		_spec.SetField(platecheckevent.FieldHasPlants, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReactionType(); ok {
		_spec.SetField(platecheckevent.FieldReactionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReactionID(); ok {
		_spec.SetField(platecheckevent.FieldReactionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(platecheckevent.FieldSuggestion, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{platecheckevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlateCheckEventUpdateOne is the builder for updating a single PlateCheckEvent entity.
type PlateCheckEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlateCheckEventMutation
}

// SetCheckID sets the "check_id" field.
func (_u *PlateCheckEventUpdateOne) SetCheckID(v string) *PlateCheckEventUpdateOne {
	_u.mutation.SetCheckID(v)
	return _u
}

// SetNillableCheckID sets the "check_id" field if the given value is not nil.
func (_u *PlateCheckEventUpdateOne) SetNillableCheckID(v *string) *PlateCheckEventUpdateOne {
	if v != nil {
		_u.SetCheckID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PlateCheckEventUpdateOne) SetUserID(v string) *PlateCheckEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlateCheckEventUpdateOne) SetNillableUserID(v *string) *PlateCheckEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetHasProtein sets the "has_protein" field.
func (_u *PlateCheckEventUpdateOne) SetHasProtein(v bool) *PlateCheckEventUpdateOne {
	_u.mutation.SetHasProtein(v)
	return _u
}

// SetNillableHasProtein sets the "has_protein" field if the given value is not nil.
func (_u *PlateCheckEventUpdateOne) SetNillableHasProtein(v *bool) *PlateCheckEventUpdateOne {
	if v != nil {
		_u.SetHasProtein(*v)
	}
	return _u
}

// SetHasPlants sets the "has_plants" field.
func (_u *PlateCheckEventUpdateOne) SetHasPlants(v bool) *PlateCheckEventUpdateOne {
	_u.mutation.SetHasPlants(v)
	return _u
}

// SetNillableHasPlants sets the "has_plants" field if the given value is not nil.
func (_u *PlateCheckEventUpdateOne) SetNillableHasPlants(v *bool) *PlateCheckEventUpdateOne {
	if v != nil {
		_u.SetHasPlants(*v)
	}
	return _u
}

// SetReactionType sets the "reaction_type" field.
func (_u *PlateCheckEventUpdateOne) SetReactionType(v string) *PlateCheckEventUpdateOne {
	_u.mutation.SetReactionType(v)
	return _u
}

// SetNillableReactionType sets the "reaction_type" field if the given value is not nil.
func (_u *PlateCheckEventUpdateOne) SetNillableReactionType(v *string) *PlateCheckEventUpdateOne {
	if v != nil {
		_u.SetReactionType(*v)
	}
	return _u
}

// SetReactionID sets the "reaction_id" field.
func (_u *PlateCheckEventUpdateOne) SetReactionID(v string) *PlateCheckEventUpdateOne {
	_u.mutation.SetReactionID(v)
	return _u
}

// SetNillableReactionID sets the "reaction_id" field if the given value is not nil.
func (_u *PlateCheckEventUpdateOne) SetNillableReactionID(v *string) *PlateCheckEventUpdateOne {
	if v != nil {
		_u.SetReactionID(*v)
	}
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *PlateCheckEventUpdateOne) SetSuggestion(v string) *PlateCheckEventUpdateOne {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *PlateCheckEventUpdateOne) SetNillableSuggestion(v *string) *PlateCheckEventUpdateOne {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// Mutation returns the PlateCheckEventMutation object of the builder.
func (_u *PlateCheckEventUpdateOne) Mutation() *PlateCheckEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlateCheckEventUpdate builder.
func (_u *PlateCheckEventUpdateOne) Where(ps ...predicate.PlateCheckEvent) *PlateCheckEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlateCheckEventUpdateOne) Select(field string, fields ...string) *PlateCheckEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlateCheckEvent entity.
func (_u *PlateCheckEventUpdateOne) Save(ctx context.Context) (*PlateCheckEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlateCheckEventUpdateOne) SaveX(ctx context.Context) *PlateCheckEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlateCheckEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlateCheckEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlateCheckEventUpdateOne) check() error {
	if v, ok := _u.mutation.CheckID(); ok {
		if err := platecheckevent.CheckIDValidator(v); err != nil {
			return &ValidationError{Name: "check_id", err: fmt.Errorf(`ent: validator failed for field "PlateCheckEvent.check_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := platecheckevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlateCheckEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReactionType(); ok {
		if err := platecheckevent.ReactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "reaction_type", err: fmt.Errorf(`ent: validator failed for field "PlateCheckEvent.reaction_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PlateCheckEventUpdateOne) sqlSave(ctx context.Context) (_node *PlateCheckEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(platecheckevent.Table, platecheckevent.Columns, sqlgraph.NewFieldSpec(platecheckevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlateCheckEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, platecheckevent.FieldID)
		for _, f := range fields {
			if !platecheckevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != platecheckevent.FieldID {
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
	if value, ok := _u.mutation.CheckID(); ok {
		_spec.SetField(platecheckevent.FieldCheckID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(platecheckevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasProtein(); ok {
		_spec.SetField(platecheckevent.FieldHasProtein, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasPlants(); ok {
		_spec.SetField(platecheckevent.FieldHasPlants, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReactionType(); ok {
		_spec.SetField(platecheckevent.FieldReactionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReactionID(); ok {
		_spec.SetField(platecheckevent.FieldReactionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(platecheckevent.FieldSuggestion, field.TypeString, value)
	}
	_node = &PlateCheckEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{platecheckevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
