// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kavery/platewise/ent/platecheckevent"
)

// PlateCheckEventCreate is the builder for creating a PlateCheckEvent entity.
type PlateCheckEventCreate struct {
	config
	mutation *PlateCheckEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *PlateCheckEventCreate) SetSequence(v int64) *PlateCheckEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlateCheckEventCreate) SetTimestamp(v time.Time) *PlateCheckEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlateCheckEventCreate) SetNillableTimestamp(v *time.Time) *PlateCheckEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCheckID sets the "check_id" field.
func (_c *PlateCheckEventCreate) SetCheckID(v string) *PlateCheckEventCreate {
	_c.mutation.SetCheckID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PlateCheckEventCreate) SetUserID(v string) *PlateCheckEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetHasProtein sets the "has_protein" field.
func (_c *PlateCheckEventCreate) SetHasProtein(v bool) *PlateCheckEventCreate {
	_c.mutation.SetHasProtein(v)
	return _c
}

// SetHasPlants sets the "has_plants" field.
func (_c *PlateCheckEventCreate) SetHasPlants(v bool) *PlateCheckEventCreate {
	_c.mutation.SetHasPlants(v)
	return _c
}

// SetReactionType sets the "reaction_type" field.
func (_c *PlateCheckEventCreate) SetReactionType(v string) *PlateCheckEventCreate {
	_c.mutation.SetReactionType(v)
	return _c
}

// SetReactionID sets the "reaction_id" field.
func (_c *PlateCheckEventCreate) SetReactionID(v string) *PlateCheckEventCreate {
	_c.mutation.SetReactionID(v)
	return _c
}

// SetNillableReactionID sets the "reaction_id" field if the given value is not nil.
func (_c *PlateCheckEventCreate) SetNillableReactionID(v *string) *PlateCheckEventCreate {
	if v != nil {
		_c.SetReactionID(*v)
	}
	return _c
}

// SetSuggestion sets the "suggestion" field.
func (_c *PlateCheckEventCreate) SetSuggestion(v string) *PlateCheckEventCreate {
	_c.mutation.SetSuggestion(v)
	return _c
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_c *PlateCheckEventCreate) SetNillableSuggestion(v *string) *PlateCheckEventCreate {
	if v != nil {
		_c.SetSuggestion(*v)
	}
	return _c
}

// Mutation returns the PlateCheckEventMutation object of the builder.
func (_c *PlateCheckEventCreate) Mutation() *PlateCheckEventMutation {
	return _c.mutation
}

// Save creates the PlateCheckEvent in the database.
func (_c *PlateCheckEventCreate) Save(ctx context.Context) (*PlateCheckEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlateCheckEventCreate) SaveX(ctx context.Context) *PlateCheckEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlateCheckEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlateCheckEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlateCheckEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := platecheckevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ReactionID(); !ok {
		v := platecheckevent.DefaultReactionID
		_c.mutation.SetReactionID(v)
	}
	if _, ok := _c.mutation.Suggestion(); !ok {
		v := platecheckevent.DefaultSuggestion
		_c.mutation.SetSuggestion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlateCheckEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlateCheckEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlateCheckEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.CheckID(); !ok {
		return &ValidationError{Name: "check_id", err: errors.New(`ent: missing required field "PlateCheckEvent.check_id"`)}
	}
	if v, ok := _c.mutation.CheckID(); ok {
		if err := platecheckevent.CheckIDValidator(v); err != nil {
			return &ValidationError{Name: "check_id", err: fmt.Errorf(`ent: validator failed for field "PlateCheckEvent.check_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PlateCheckEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := platecheckevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlateCheckEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HasProtein(); !ok {
		return &ValidationError{Name: "has_protein", err: errors.New(`ent: missing required field "PlateCheckEvent.has_protein"`)}
	}
	if _, ok := _c.mutation.HasPlants(); !ok {
		return &ValidationError{Name: "has_plants", err: errors.New(`ent: missing required field "PlateCheckEvent.has_plants"`)}
	}
	if _, ok := _c.mutation.ReactionType(); !ok {
		return &ValidationError{Name: "reaction_type", err: errors.New(`ent: missing required field "PlateCheckEvent.reaction_type"`)}
	}
	if v, ok := _c.mutation.ReactionType(); ok {
		if err := platecheckevent.ReactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "reaction_type", err: fmt.Errorf(`ent: validator failed for field "PlateCheckEvent.reaction_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReactionID(); !ok {
		return &ValidationError{Name: "reaction_id", err: errors.New(`ent: missing required field "PlateCheckEvent.reaction_id"`)}
	}
	if _, ok := _c.mutation.Suggestion(); !ok {
		return &ValidationError{Name: "suggestion", err: errors.New(`ent: missing required field "PlateCheckEvent.suggestion"`)}
	}
	return nil
}

func (_c *PlateCheckEventCreate) sqlSave(ctx context.Context) (*PlateCheckEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlateCheckEventCreate) createSpec() (*PlateCheckEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PlateCheckEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(platecheckevent.Table, sqlgraph.NewFieldSpec(platecheckevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(platecheckevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(platecheckevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CheckID(); ok {
		_spec.SetField(platecheckevent.FieldCheckID, field.TypeString, value)
		_node.CheckID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(platecheckevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.HasProtein(); ok {
		_spec.SetField(platecheckevent.FieldHasProtein, field.TypeBool, value)
		_node.HasProtein = value
	}
	if value, ok := _c.mutation.HasPlants(); ok {
		_spec.SetField(platecheckevent.FieldHasPlants, field.TypeBool, value)
		_node.HasPlants = value
	}
	if value, ok := _c.mutation.ReactionType(); ok {
		_spec.SetField(platecheckevent.FieldReactionType, field.TypeString, value)
		_node.ReactionType = value
	}
	if value, ok := _c.mutation.ReactionID(); ok {
		_spec.SetField(platecheckevent.FieldReactionID, field.TypeString, value)
		_node.ReactionID = value
	}
	if value, ok := _c.mutation.Suggestion(); ok {
		_spec.SetField(platecheckevent.FieldSuggestion, field.TypeString, value)
		_node.Suggestion = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlateCheckEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlateCheckEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *PlateCheckEventCreate) OnConflict(opts ...sql.ConflictOption) *PlateCheckEventUpsertOne {
	_c.conflict = opts
	return &PlateCheckEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlateCheckEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlateCheckEventCreate) OnConflictColumns(columns ...string) *PlateCheckEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlateCheckEventUpsertOne{
		create: _c,
	}
}

type (
	// PlateCheckEventUpsertOne is the builder for "upsert"-ing
	//  one PlateCheckEvent node.
	PlateCheckEventUpsertOne struct {
		create *PlateCheckEventCreate
	}

	// PlateCheckEventUpsert is the "OnConflict" setter.
	PlateCheckEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetCheckID sets the "check_id" field.
func (u *PlateCheckEventUpsert) SetCheckID(v string) *PlateCheckEventUpsert {
	u.Set(platecheckevent.FieldCheckID, v)
	return u
}

// UpdateCheckID sets the "check_id" field to the value that was provided on create.
func (u *PlateCheckEventUpsert) UpdateCheckID() *PlateCheckEventUpsert {
	u.SetExcluded(platecheckevent.FieldCheckID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PlateCheckEventUpsert) SetUserID(v string) *PlateCheckEventUpsert {
	u.Set(platecheckevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlateCheckEventUpsert) UpdateUserID() *PlateCheckEventUpsert {
	u.SetExcluded(platecheckevent.FieldUserID)
	return u
}

// SetHasProtein sets the "has_protein" field.
func (u *PlateCheckEventUpsert) SetHasProtein(v bool) *PlateCheckEventUpsert {
	u.Set(platecheckevent.FieldHasProtein, v)
	return u
}

// UpdateHasProtein sets the "has_protein" field to the value that was provided on create.
func (u *PlateCheckEventUpsert) UpdateHasProtein() *PlateCheckEventUpsert {
	u.SetExcluded(platecheckevent.FieldHasProtein)
	return u
}

// SetHasPlants sets the "has_plants" field.
func (u *PlateCheckEventUpsert) SetHasPlants(v bool) *PlateCheckEventUpsert {
	u.Set(platecheckevent.FieldHasPlants, v)
	return u
}

// UpdateHasPlants sets the "has_plants" field to the value that was provided on create.
func (u *PlateCheckEventUpsert) UpdateHasPlants() *PlateCheckEventUpsert {
	u.SetExcluded(platecheckevent.FieldHasPlants)
	return u
}

// SetReactionType sets the "reaction_type" field.
func (u *PlateCheckEventUpsert) SetReactionType(v string) *PlateCheckEventUpsert {
	u.Set(platecheckevent.FieldReactionType, v)
	return u
}

// UpdateReactionType sets the "reaction_type" field to the value that was provided on create.
func (u *PlateCheckEventUpsert) UpdateReactionType() *PlateCheckEventUpsert {
	u.SetExcluded(platecheckevent.FieldReactionType)
	return u
}

// SetReactionID sets the "reaction_id" field.
func (u *PlateCheckEventUpsert) SetReactionID(v string) *PlateCheckEventUpsert {
	u.Set(platecheckevent.FieldReactionID, v)
	return u
}

// UpdateReactionID sets the "reaction_id" field to the value that was provided on create.
func (u *PlateCheckEventUpsert) UpdateReactionID() *PlateCheckEventUpsert {
	u.SetExcluded(platecheckevent.FieldReactionID)
	return u
}

// SetSuggestion sets the "suggestion" field.
func (u *PlateCheckEventUpsert) SetSuggestion(v string) *PlateCheckEventUpsert {
	u.Set(platecheckevent.FieldSuggestion, v)
	return u
}

// UpdateSuggestion sets the "suggestion" field to the value that was provided on create.
func (u *PlateCheckEventUpsert) UpdateSuggestion() *PlateCheckEventUpsert {
	u.SetExcluded(platecheckevent.FieldSuggestion)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PlateCheckEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlateCheckEventUpsertOne) UpdateNewValues() *PlateCheckEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(platecheckevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(platecheckevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlateCheckEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlateCheckEventUpsertOne) Ignore() *PlateCheckEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlateCheckEventUpsertOne) DoNothing() *PlateCheckEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlateCheckEventCreate.OnConflict
// documentation for more info.
func (u *PlateCheckEventUpsertOne) Update(set func(*PlateCheckEventUpsert)) *PlateCheckEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlateCheckEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetCheckID sets the "check_id" field.
func (u *PlateCheckEventUpsertOne) SetCheckID(v string) *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetCheckID(v)
	})
}

// UpdateCheckID sets the "check_id" field to the value that was provided on create.
func (u *PlateCheckEventUpsertOne) UpdateCheckID() *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateCheckID()
	})
}

// SetUserID sets the "user_id" field.
func (u *PlateCheckEventUpsertOne) SetUserID(v string) *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlateCheckEventUpsertOne) UpdateUserID() *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateUserID()
	})
}

// SetHasProtein sets the "has_protein" field.
func (u *PlateCheckEventUpsertOne) SetHasProtein(v bool) *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetHasProtein(v)
	})
}

// UpdateHasProtein sets the "has_protein" field to the value that was provided on create.
func (u *PlateCheckEventUpsertOne) UpdateHasProtein() *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateHasProtein()
	})
}

// SetHasPlants sets the "has_plants" field.
func (u *PlateCheckEventUpsertOne) SetHasPlants(v bool) *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetHasPlants(v)
	})
}

// UpdateHasPlants sets the "has_plants" field to the value that was provided on create.
func (u *PlateCheckEventUpsertOne) UpdateHasPlants() *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateHasPlants()
	})
}

// SetReactionType sets the "reaction_type" field.
func (u *PlateCheckEventUpsertOne) SetReactionType(v string) *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetReactionType(v)
	})
}

// UpdateReactionType sets the "reaction_type" field to the value that was provided on create.
func (u *PlateCheckEventUpsertOne) UpdateReactionType() *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateReactionType()
	})
}

// SetReactionID sets the "reaction_id" field.
func (u *PlateCheckEventUpsertOne) SetReactionID(v string) *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetReactionID(v)
	})
}

// UpdateReactionID sets the "reaction_id" field to the value that was provided on create.
func (u *PlateCheckEventUpsertOne) UpdateReactionID() *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateReactionID()
	})
}

// SetSuggestion sets the "suggestion" field.
func (u *PlateCheckEventUpsertOne) SetSuggestion(v string) *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetSuggestion(v)
	})
}

// UpdateSuggestion sets the "suggestion" field to the value that was provided on create.
func (u *PlateCheckEventUpsertOne) UpdateSuggestion() *PlateCheckEventUpsertOne {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateSuggestion()
	})
}

// Exec executes the query.
func (u *PlateCheckEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlateCheckEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlateCheckEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlateCheckEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlateCheckEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlateCheckEventCreateBulk is the builder for creating many PlateCheckEvent entities in bulk.
type PlateCheckEventCreateBulk struct {
	config
	err      error
	builders []*PlateCheckEventCreate
	conflict []sql.ConflictOption
}

// Save creates the PlateCheckEvent entities in the database.
func (_c *PlateCheckEventCreateBulk) Save(ctx context.Context) ([]*PlateCheckEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlateCheckEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlateCheckEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PlateCheckEventCreateBulk) SaveX(ctx context.Context) []*PlateCheckEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlateCheckEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlateCheckEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlateCheckEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlateCheckEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *PlateCheckEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlateCheckEventUpsertBulk {
	_c.conflict = opts
	return &PlateCheckEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlateCheckEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlateCheckEventCreateBulk) OnConflictColumns(columns ...string) *PlateCheckEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlateCheckEventUpsertBulk{
		create: _c,
	}
}

// PlateCheckEventUpsertBulk is the builder for "upsert"-ing
// a bulk of PlateCheckEvent nodes.
type PlateCheckEventUpsertBulk struct {
	create *PlateCheckEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlateCheckEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlateCheckEventUpsertBulk) UpdateNewValues() *PlateCheckEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(platecheckevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(platecheckevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlateCheckEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlateCheckEventUpsertBulk) Ignore() *PlateCheckEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlateCheckEventUpsertBulk) DoNothing() *PlateCheckEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlateCheckEventCreateBulk.OnConflict
// documentation for more info.
func (u *PlateCheckEventUpsertBulk) Update(set func(*PlateCheckEventUpsert)) *PlateCheckEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlateCheckEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetCheckID sets the "check_id" field.
func (u *PlateCheckEventUpsertBulk) SetCheckID(v string) *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetCheckID(v)
	})
}

// UpdateCheckID sets the "check_id" field to the value that was provided on create.
func (u *PlateCheckEventUpsertBulk) UpdateCheckID() *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateCheckID()
	})
}

// SetUserID sets the "user_id" field.
func (u *PlateCheckEventUpsertBulk) SetUserID(v string) *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlateCheckEventUpsertBulk) UpdateUserID() *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateUserID()
	})
}

// SetHasProtein sets the "has_protein" field.
func (u *PlateCheckEventUpsertBulk) SetHasProtein(v bool) *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetHasProtein(v)
	})
}

// UpdateHasProtein sets the "has_protein" field to the value that was provided on create.
func (u *PlateCheckEventUpsertBulk) UpdateHasProtein() *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateHasProtein()
	})
}

// SetHasPlants sets the "has_plants" field.
func (u *PlateCheckEventUpsertBulk) SetHasPlants(v bool) *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetHasPlants(v)
	})
}

// UpdateHasPlants sets the "has_plants" field to the value that was provided on create.
func (u *PlateCheckEventUpsertBulk) UpdateHasPlants() *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateHasPlants()
	})
}

// SetReactionType sets the "reaction_type" field.
func (u *PlateCheckEventUpsertBulk) SetReactionType(v string) *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetReactionType(v)
	})
}

// UpdateReactionType sets the "reaction_type" field to the value that was provided on create.
func (u *PlateCheckEventUpsertBulk) UpdateReactionType() *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateReactionType()
	})
}

// SetReactionID sets the "reaction_id" field.
func (u *PlateCheckEventUpsertBulk) SetReactionID(v string) *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetReactionID(v)
	})
}

// UpdateReactionID sets the "reaction_id" field to the value that was provided on create.
func (u *PlateCheckEventUpsertBulk) UpdateReactionID() *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateReactionID()
	})
}

// SetSuggestion sets the "suggestion" field.
func (u *PlateCheckEventUpsertBulk) SetSuggestion(v string) *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.SetSuggestion(v)
	})
}

// UpdateSuggestion sets the "suggestion" field to the value that was provided on create.
func (u *PlateCheckEventUpsertBulk) UpdateSuggestion() *PlateCheckEventUpsertBulk {
	return u.Update(func(s *PlateCheckEventUpsert) {
		s.UpdateSuggestion()
	})
}

// Exec executes the query.
func (u *PlateCheckEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlateCheckEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlateCheckEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlateCheckEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
