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
	"github.com/kavery/platewise/ent/journey"
)

// JourneyCreate is the builder for creating a Journey entity.
type JourneyCreate struct {
	config
	mutation *JourneyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *JourneyCreate) SetUserID(v string) *JourneyCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *JourneyCreate) SetSchemaVersion(v int) *JourneyCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableSchemaVersion(v *int) *JourneyCreate {
	if v != nil {
		_c.SetSchemaVersion(*v)
	}
	return _c
}

// SetCompletedLessonIds sets the "completed_lesson_ids" field.
func (_c *JourneyCreate) SetCompletedLessonIds(v []string) *JourneyCreate {
	_c.mutation.SetCompletedLessonIds(v)
	return _c
}

// SetCurrentLevel sets the "current_level" field.
func (_c *JourneyCreate) SetCurrentLevel(v string) *JourneyCreate {
	_c.mutation.SetCurrentLevel(v)
	return _c
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableCurrentLevel(v *string) *JourneyCreate {
	if v != nil {
		_c.SetCurrentLevel(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JourneyCreate) SetStartedAt(v time.Time) *JourneyCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableStartedAt(v *time.Time) *JourneyCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastCompletedAt sets the "last_completed_at" field.
func (_c *JourneyCreate) SetLastCompletedAt(v time.Time) *JourneyCreate {
	_c.mutation.SetLastCompletedAt(v)
	return _c
}

// SetNillableLastCompletedAt sets the "last_completed_at" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableLastCompletedAt(v *time.Time) *JourneyCreate {
	if v != nil {
		_c.SetLastCompletedAt(*v)
	}
	return _c
}

// Mutation returns the JourneyMutation object of the builder.
func (_c *JourneyCreate) Mutation() *JourneyMutation {
	return _c.mutation
}

// Save creates the Journey in the database.
func (_c *JourneyCreate) Save(ctx context.Context) (*Journey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JourneyCreate) SaveX(ctx context.Context) *Journey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JourneyCreate) defaults() {
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		v := journey.DefaultSchemaVersion
		_c.mutation.SetSchemaVersion(v)
	}
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		v := journey.DefaultCurrentLevel
		_c.mutation.SetCurrentLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JourneyCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Journey.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := journey.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Journey.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "Journey.schema_version"`)}
	}
	if _, ok := _c.mutation.CompletedLessonIds(); !ok {
		return &ValidationError{Name: "completed_lesson_ids", err: errors.New(`ent: missing required field "Journey.completed_lesson_ids"`)}
	}
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		return &ValidationError{Name: "current_level", err: errors.New(`ent: missing required field "Journey.current_level"`)}
	}
	return nil
}

func (_c *JourneyCreate) sqlSave(ctx context.Context) (*Journey, error) {
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

func (_c *JourneyCreate) createSpec() (*Journey, *sqlgraph.CreateSpec) {
	var (
		_node = &Journey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(journey.Table, sqlgraph.NewFieldSpec(journey.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(journey.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(journey.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.CompletedLessonIds(); ok {
		_spec.SetField(journey.FieldCompletedLessonIds, field.TypeJSON, value)
		_node.CompletedLessonIds = value
	}
	if value, ok := _c.mutation.CurrentLevel(); ok {
		_spec.SetField(journey.FieldCurrentLevel, field.TypeString, value)
		_node.CurrentLevel = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(journey.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.LastCompletedAt(); ok {
		_spec.SetField(journey.FieldLastCompletedAt, field.TypeTime, value)
		_node.LastCompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Journey.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JourneyUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *JourneyCreate) OnConflict(opts ...sql.ConflictOption) *JourneyUpsertOne {
	_c.conflict = opts
	return &JourneyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Journey.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JourneyCreate) OnConflictColumns(columns ...string) *JourneyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JourneyUpsertOne{
		create: _c,
	}
}

type (
	// JourneyUpsertOne is the builder for "upsert"-ing
	//  one Journey node.
	JourneyUpsertOne struct {
		create *JourneyCreate
	}

	// JourneyUpsert is the "OnConflict" setter.
	JourneyUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *JourneyUpsert) SetUserID(v string) *JourneyUpsert {
	u.Set(journey.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *JourneyUpsert) UpdateUserID() *JourneyUpsert {
	u.SetExcluded(journey.FieldUserID)
	return u
}

// SetSchemaVersion sets the "schema_version" field.
func (u *JourneyUpsert) SetSchemaVersion(v int) *JourneyUpsert {
	u.Set(journey.FieldSchemaVersion, v)
	return u
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *JourneyUpsert) UpdateSchemaVersion() *JourneyUpsert {
	u.SetExcluded(journey.FieldSchemaVersion)
	return u
}

// AddSchemaVersion adds v to the "schema_version" field.
func (u *JourneyUpsert) AddSchemaVersion(v int) *JourneyUpsert {
	u.Add(journey.FieldSchemaVersion, v)
	return u
}

// SetCompletedLessonIds sets the "completed_lesson_ids" field.
func (u *JourneyUpsert) SetCompletedLessonIds(v []string) *JourneyUpsert {
	u.Set(journey.FieldCompletedLessonIds, v)
	return u
}

// UpdateCompletedLessonIds sets the "completed_lesson_ids" field to the value that was provided on create.
func (u *JourneyUpsert) UpdateCompletedLessonIds() *JourneyUpsert {
	u.SetExcluded(journey.FieldCompletedLessonIds)
	return u
}

// SetCurrentLevel sets the "current_level" field.
func (u *JourneyUpsert) SetCurrentLevel(v string) *JourneyUpsert {
	u.Set(journey.FieldCurrentLevel, v)
	return u
}

// UpdateCurrentLevel sets the "current_level" field to the value that was provided on create.
func (u *JourneyUpsert) UpdateCurrentLevel() *JourneyUpsert {
	u.SetExcluded(journey.FieldCurrentLevel)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *JourneyUpsert) SetStartedAt(v time.Time) *JourneyUpsert {
	u.Set(journey.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JourneyUpsert) UpdateStartedAt() *JourneyUpsert {
	u.SetExcluded(journey.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JourneyUpsert) ClearStartedAt() *JourneyUpsert {
	u.SetNull(journey.FieldStartedAt)
	return u
}

// SetLastCompletedAt sets the "last_completed_at" field.
func (u *JourneyUpsert) SetLastCompletedAt(v time.Time) *JourneyUpsert {
	u.Set(journey.FieldLastCompletedAt, v)
	return u
}

// UpdateLastCompletedAt sets the "last_completed_at" field to the value that was provided on create.
func (u *JourneyUpsert) UpdateLastCompletedAt() *JourneyUpsert {
	u.SetExcluded(journey.FieldLastCompletedAt)
	return u
}

// ClearLastCompletedAt clears the value of the "last_completed_at" field.
func (u *JourneyUpsert) ClearLastCompletedAt() *JourneyUpsert {
	u.SetNull(journey.FieldLastCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Journey.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *JourneyUpsertOne) UpdateNewValues() *JourneyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Journey.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JourneyUpsertOne) Ignore() *JourneyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JourneyUpsertOne) DoNothing() *JourneyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JourneyCreate.OnConflict
// documentation for more info.
func (u *JourneyUpsertOne) Update(set func(*JourneyUpsert)) *JourneyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JourneyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *JourneyUpsertOne) SetUserID(v string) *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *JourneyUpsertOne) UpdateUserID() *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateUserID()
	})
}

// SetSchemaVersion sets the "schema_version" field.
func (u *JourneyUpsertOne) SetSchemaVersion(v int) *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.SetSchemaVersion(v)
	})
}

// AddSchemaVersion adds v to the "schema_version" field.
func (u *JourneyUpsertOne) AddSchemaVersion(v int) *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.AddSchemaVersion(v)
	})
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *JourneyUpsertOne) UpdateSchemaVersion() *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateSchemaVersion()
	})
}

// SetCompletedLessonIds sets the "completed_lesson_ids" field.
func (u *JourneyUpsertOne) SetCompletedLessonIds(v []string) *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.SetCompletedLessonIds(v)
	})
}

// UpdateCompletedLessonIds sets the "completed_lesson_ids" field to the value that was provided on create.
func (u *JourneyUpsertOne) UpdateCompletedLessonIds() *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateCompletedLessonIds()
	})
}

// SetCurrentLevel sets the "current_level" field.
func (u *JourneyUpsertOne) SetCurrentLevel(v string) *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.SetCurrentLevel(v)
	})
}

// UpdateCurrentLevel sets the "current_level" field to the value that was provided on create.
func (u *JourneyUpsertOne) UpdateCurrentLevel() *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateCurrentLevel()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JourneyUpsertOne) SetStartedAt(v time.Time) *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JourneyUpsertOne) UpdateStartedAt() *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JourneyUpsertOne) ClearStartedAt() *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.ClearStartedAt()
	})
}

// SetLastCompletedAt sets the "last_completed_at" field.
func (u *JourneyUpsertOne) SetLastCompletedAt(v time.Time) *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.SetLastCompletedAt(v)
	})
}

// UpdateLastCompletedAt sets the "last_completed_at" field to the value that was provided on create.
func (u *JourneyUpsertOne) UpdateLastCompletedAt() *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateLastCompletedAt()
	})
}

// ClearLastCompletedAt clears the value of the "last_completed_at" field.
func (u *JourneyUpsertOne) ClearLastCompletedAt() *JourneyUpsertOne {
	return u.Update(func(s *JourneyUpsert) {
		s.ClearLastCompletedAt()
	})
}

// Exec executes the query.
func (u *JourneyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JourneyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JourneyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JourneyUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JourneyUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JourneyCreateBulk is the builder for creating many Journey entities in bulk.
type JourneyCreateBulk struct {
	config
	err      error
	builders []*JourneyCreate
	conflict []sql.ConflictOption
}

// Save creates the Journey entities in the database.
func (_c *JourneyCreateBulk) Save(ctx context.Context) ([]*Journey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Journey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JourneyMutation)
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
func (_c *JourneyCreateBulk) SaveX(ctx context.Context) []*Journey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Journey.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JourneyUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *JourneyCreateBulk) OnConflict(opts ...sql.ConflictOption) *JourneyUpsertBulk {
	_c.conflict = opts
	return &JourneyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Journey.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JourneyCreateBulk) OnConflictColumns(columns ...string) *JourneyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JourneyUpsertBulk{
		create: _c,
	}
}

// JourneyUpsertBulk is the builder for "upsert"-ing
// a bulk of Journey nodes.
type JourneyUpsertBulk struct {
	create *JourneyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Journey.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *JourneyUpsertBulk) UpdateNewValues() *JourneyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Journey.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JourneyUpsertBulk) Ignore() *JourneyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JourneyUpsertBulk) DoNothing() *JourneyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JourneyCreateBulk.OnConflict
// documentation for more info.
func (u *JourneyUpsertBulk) Update(set func(*JourneyUpsert)) *JourneyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JourneyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *JourneyUpsertBulk) SetUserID(v string) *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *JourneyUpsertBulk) UpdateUserID() *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateUserID()
	})
}

// SetSchemaVersion sets the "schema_version" field.
func (u *JourneyUpsertBulk) SetSchemaVersion(v int) *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.SetSchemaVersion(v)
	})
}

// AddSchemaVersion adds v to the "schema_version" field.
func (u *JourneyUpsertBulk) AddSchemaVersion(v int) *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.AddSchemaVersion(v)
	})
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *JourneyUpsertBulk) UpdateSchemaVersion() *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateSchemaVersion()
	})
}

// SetCompletedLessonIds sets the "completed_lesson_ids" field.
func (u *JourneyUpsertBulk) SetCompletedLessonIds(v []string) *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.SetCompletedLessonIds(v)
	})
}

// UpdateCompletedLessonIds sets the "completed_lesson_ids" field to the value that was provided on create.
func (u *JourneyUpsertBulk) UpdateCompletedLessonIds() *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateCompletedLessonIds()
	})
}

// SetCurrentLevel sets the "current_level" field.
func (u *JourneyUpsertBulk) SetCurrentLevel(v string) *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.SetCurrentLevel(v)
	})
}

// UpdateCurrentLevel sets the "current_level" field to the value that was provided on create.
func (u *JourneyUpsertBulk) UpdateCurrentLevel() *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateCurrentLevel()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JourneyUpsertBulk) SetStartedAt(v time.Time) *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JourneyUpsertBulk) UpdateStartedAt() *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JourneyUpsertBulk) ClearStartedAt() *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.ClearStartedAt()
	})
}

// SetLastCompletedAt sets the "last_completed_at" field.
func (u *JourneyUpsertBulk) SetLastCompletedAt(v time.Time) *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.SetLastCompletedAt(v)
	})
}

// UpdateLastCompletedAt sets the "last_completed_at" field to the value that was provided on create.
func (u *JourneyUpsertBulk) UpdateLastCompletedAt() *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.UpdateLastCompletedAt()
	})
}

// ClearLastCompletedAt clears the value of the "last_completed_at" field.
func (u *JourneyUpsertBulk) ClearLastCompletedAt() *JourneyUpsertBulk {
	return u.Update(func(s *JourneyUpsert) {
		s.ClearLastCompletedAt()
	})
}

// Exec executes the query.
func (u *JourneyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JourneyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JourneyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JourneyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
