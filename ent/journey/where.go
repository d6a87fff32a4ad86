// Code generated by ent, DO NOT EDIT.

package journey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kavery/platewise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldUserID, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v int) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldSchemaVersion, v))
}

// CurrentLevel applies equality check predicate on the "current_level" field. It's identical to CurrentLevelEQ.
func CurrentLevel(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldCurrentLevel, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldStartedAt, v))
}

// LastCompletedAt applies equality check predicate on the "last_completed_at" field. It's identical to LastCompletedAtEQ.
func LastCompletedAt(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldLastCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldUserID, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v int) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v int) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...int) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...int) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v int) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v int) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v int) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v int) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldSchemaVersion, v))
}

// CurrentLevelEQ applies the EQ predicate on the "current_level" field.
func CurrentLevelEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldCurrentLevel, v))
}

// CurrentLevelNEQ applies the NEQ predicate on the "current_level" field.
func CurrentLevelNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldCurrentLevel, v))
}

// CurrentLevelIn applies the In predicate on the "current_level" field.
func CurrentLevelIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldCurrentLevel, vs...))
}

// CurrentLevelNotIn applies the NotIn predicate on the "current_level" field.
func CurrentLevelNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldCurrentLevel, vs...))
}

// CurrentLevelGT applies the GT predicate on the "current_level" field.
func CurrentLevelGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldCurrentLevel, v))
}

// CurrentLevelGTE applies the GTE predicate on the "current_level" field.
func CurrentLevelGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldCurrentLevel, v))
}

// CurrentLevelLT applies the LT predicate on the "current_level" field.
func CurrentLevelLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldCurrentLevel, v))
}

// CurrentLevelLTE applies the LTE predicate on the "current_level" field.
func CurrentLevelLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldCurrentLevel, v))
}

// CurrentLevelContains applies the Contains predicate on the "current_level" field.
func CurrentLevelContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldCurrentLevel, v))
}

// CurrentLevelHasPrefix applies the HasPrefix predicate on the "current_level" field.
func CurrentLevelHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldCurrentLevel, v))
}

// CurrentLevelHasSuffix applies the HasSuffix predicate on the "current_level" field.
func CurrentLevelHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldCurrentLevel, v))
}

// CurrentLevelEqualFold applies the EqualFold predicate on the "current_level" field.
func CurrentLevelEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldCurrentLevel, v))
}

// CurrentLevelContainsFold applies the ContainsFold predicate on the "current_level" field.
func CurrentLevelContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldCurrentLevel, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Journey {
	return predicate.Journey(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Journey {
	return predicate.Journey(sql.FieldNotNull(FieldStartedAt))
}

// LastCompletedAtEQ applies the EQ predicate on the "last_completed_at" field.
func LastCompletedAtEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldLastCompletedAt, v))
}

// LastCompletedAtNEQ applies the NEQ predicate on the "last_completed_at" field.
func LastCompletedAtNEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldLastCompletedAt, v))
}

// LastCompletedAtIn applies the In predicate on the "last_completed_at" field.
func LastCompletedAtIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldLastCompletedAt, vs...))
}

// LastCompletedAtNotIn applies the NotIn predicate on the "last_completed_at" field.
func LastCompletedAtNotIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldLastCompletedAt, vs...))
}

// LastCompletedAtGT applies the GT predicate on the "last_completed_at" field.
func LastCompletedAtGT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldLastCompletedAt, v))
}

// LastCompletedAtGTE applies the GTE predicate on the "last_completed_at" field.
func LastCompletedAtGTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldLastCompletedAt, v))
}

// LastCompletedAtLT applies the LT predicate on the "last_completed_at" field.
func LastCompletedAtLT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldLastCompletedAt, v))
}

// LastCompletedAtLTE applies the LTE predicate on the "last_completed_at" field.
func LastCompletedAtLTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldLastCompletedAt, v))
}

// LastCompletedAtIsNil applies the IsNil predicate on the "last_completed_at" field.
func LastCompletedAtIsNil() predicate.Journey {
	return predicate.Journey(sql.FieldIsNull(FieldLastCompletedAt))
}

// LastCompletedAtNotNil applies the NotNil predicate on the "last_completed_at" field.
func LastCompletedAtNotNil() predicate.Journey {
	return predicate.Journey(sql.FieldNotNull(FieldLastCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.NotPredicates(p))
}
