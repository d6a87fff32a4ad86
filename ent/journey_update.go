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
	"github.com/kavery/platewise/ent/journey"
	"github.com/kavery/platewise/ent/predicate"
)

// JourneyUpdate is the builder for updating Journey entities.
type JourneyUpdate struct {
	config
	hooks    []Hook
	mutation *JourneyMutation
}

// Where appends a list predicates to the JourneyUpdate builder.
func (_u *JourneyUpdate) Where(ps ...predicate.Journey) *JourneyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *JourneyUpdate) SetUserID(v string) *JourneyUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableUserID(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *JourneyUpdate) SetSchemaVersion(v int) *JourneyUpdate {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableSchemaVersion(v *int) *JourneyUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *JourneyUpdate) AddSchemaVersion(v int) *JourneyUpdate {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetCompletedLessonIds sets the "completed_lesson_ids" field.
func (_u *JourneyUpdate) SetCompletedLessonIds(v []string) *JourneyUpdate {
	_u.mutation.SetCompletedLessonIds(v)
	return _u
}

// AppendCompletedLessonIds appends value to the "completed_lesson_ids" field.
func (_u *JourneyUpdate) AppendCompletedLessonIds(v []string) *JourneyUpdate {
	_u.mutation.AppendCompletedLessonIds(v)
	return _u
}

// SetCurrentLevel sets the "current_level" field.
func (_u *JourneyUpdate) SetCurrentLevel(v string) *JourneyUpdate {
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableCurrentLevel(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JourneyUpdate) SetStartedAt(v time.Time) *JourneyUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableStartedAt(v *time.Time) *JourneyUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JourneyUpdate) ClearStartedAt() *JourneyUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetLastCompletedAt sets the "last_completed_at" field.
func (_u *JourneyUpdate) SetLastCompletedAt(v time.Time) *JourneyUpdate {
	_u.mutation.SetLastCompletedAt(v)
	return _u
}

// SetNillableLastCompletedAt sets the "last_completed_at" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableLastCompletedAt(v *time.Time) *JourneyUpdate {
	if v != nil {
		_u.SetLastCompletedAt(*v)
	}
	return _u
}

// ClearLastCompletedAt clears the value of the "last_completed_at" field.
func (_u *JourneyUpdate) ClearLastCompletedAt() *JourneyUpdate {
	_u.mutation.ClearLastCompletedAt()
	return _u
}

// Mutation returns the JourneyMutation object of the builder.
func (_u *JourneyUpdate) Mutation() *JourneyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JourneyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JourneyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := journey.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Journey.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journey.Table, journey.Columns, sqlgraph.NewFieldSpec(journey.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(journey.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(journey.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(journey.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedLessonIds(); ok {
		_spec.SetField(journey.FieldCompletedLessonIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedLessonIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, journey.FieldCompletedLessonIds, value)
		})
	}
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(journey.FieldCurrentLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(journey.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(journey.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastCompletedAt(); ok {
		_spec.SetField(journey.FieldLastCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.LastCompletedAtCleared() {
		_spec.ClearField(journey.FieldLastCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JourneyUpdateOne is the builder for updating a single Journey entity.
type JourneyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JourneyMutation
}

// SetUserID sets the "user_id" field.
func (_u *JourneyUpdateOne) SetUserID(v string) *JourneyUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableUserID(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *JourneyUpdateOne) SetSchemaVersion(v int) *JourneyUpdateOne {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableSchemaVersion(v *int) *JourneyUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *JourneyUpdateOne) AddSchemaVersion(v int) *JourneyUpdateOne {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetCompletedLessonIds sets the "completed_lesson_ids" field.
func (_u *JourneyUpdateOne) SetCompletedLessonIds(v []string) *JourneyUpdateOne {
	_u.mutation.SetCompletedLessonIds(v)
	return _u
}

// AppendCompletedLessonIds appends value to the "completed_lesson_ids" field.
func (_u *JourneyUpdateOne) AppendCompletedLessonIds(v []string) *JourneyUpdateOne {
	_u.mutation.AppendCompletedLessonIds(v)
	return _u
}

// SetCurrentLevel sets the "current_level" field.
func (_u *JourneyUpdateOne) SetCurrentLevel(v string) *JourneyUpdateOne {
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableCurrentLevel(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JourneyUpdateOne) SetStartedAt(v time.Time) *JourneyUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableStartedAt(v *time.Time) *JourneyUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JourneyUpdateOne) ClearStartedAt() *JourneyUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetLastCompletedAt sets the "last_completed_at" field.
func (_u *JourneyUpdateOne) SetLastCompletedAt(v time.Time) *JourneyUpdateOne {
	_u.mutation.SetLastCompletedAt(v)
	return _u
}

// SetNillableLastCompletedAt sets the "last_completed_at" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableLastCompletedAt(v *time.Time) *JourneyUpdateOne {
	if v != nil {
		_u.SetLastCompletedAt(*v)
	}
	return _u
}

// ClearLastCompletedAt clears the value of the "last_completed_at" field.
func (_u *JourneyUpdateOne) ClearLastCompletedAt() *JourneyUpdateOne {
	_u.mutation.ClearLastCompletedAt()
	return _u
}

// Mutation returns the JourneyMutation object of the builder.
func (_u *JourneyUpdateOne) Mutation() *JourneyMutation {
	return _u.mutation
}

// Where appends a list predicates to the JourneyUpdate builder.
func (_u *JourneyUpdateOne) Where(ps ...predicate.Journey) *JourneyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JourneyUpdateOne) Select(field string, fields ...string) *JourneyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Journey entity.
func (_u *JourneyUpdateOne) Save(ctx context.Context) (*Journey, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyUpdateOne) SaveX(ctx context.Context) *Journey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JourneyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := journey.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Journey.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyUpdateOne) sqlSave(ctx context.Context) (_node *Journey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journey.Table, journey.Columns, sqlgraph.NewFieldSpec(journey.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Journey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journey.FieldID)
		for _, f := range fields {
			if !journey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != journey.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(journey.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(journey.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(journey.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedLessonIds(); ok {
		_spec.SetField(journey.FieldCompletedLessonIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedLessonIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, journey.FieldCompletedLessonIds, value)
		})
	}
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(journey.FieldCurrentLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(journey.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(journey.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastCompletedAt(); ok {
		_spec.SetField(journey.FieldLastCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.LastCompletedAtCleared() {
		_spec.ClearField(journey.FieldLastCompletedAt, field.TypeTime)
	}
	_node = &Journey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
