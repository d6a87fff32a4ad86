// Code generated by ent, DO NOT EDIT.

package platecheckevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kavery/platewise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldTimestamp, v))
}

// CheckID applies equality check predicate on the "check_id" field. It's identical to CheckIDEQ.
func CheckID(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldCheckID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldUserID, v))
}

// HasProtein applies equality check predicate on the "has_protein" field. It's identical to HasProteinEQ.
func HasProtein(v bool) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldHasProtein, v))
}

// HasPlants applies equality check predicate on the "has_plants" field. It's identical to HasPlantsEQ.
func HasPlants(v bool) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldHasPlants, v))
}

// ReactionType applies equality check predicate on the "reaction_type" field. It's identical to ReactionTypeEQ.
func ReactionType(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldReactionType, v))
}

// ReactionID applies equality check predicate on the "reaction_id" field. It's identical to ReactionIDEQ.
func ReactionID(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldReactionID, v))
}

// Suggestion applies equality check predicate on the "suggestion" field. It's identical to SuggestionEQ.
func Suggestion(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldSuggestion, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLTE(FieldTimestamp, v))
}

// CheckIDEQ applies the EQ predicate on the "check_id" field.
func CheckIDEQ(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldCheckID, v))
}

// CheckIDNEQ applies the NEQ predicate on the "check_id" field.
func CheckIDNEQ(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNEQ(FieldCheckID, v))
}

// CheckIDIn applies the In predicate on the "check_id" field.
func CheckIDIn(vs ...string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldIn(FieldCheckID, vs...))
}

// CheckIDNotIn applies the NotIn predicate on the "check_id" field.
func CheckIDNotIn(vs ...string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNotIn(FieldCheckID, vs...))
}

// CheckIDGT applies the GT predicate on the "check_id" field.
func CheckIDGT(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGT(FieldCheckID, v))
}

// CheckIDGTE applies the GTE predicate on the "check_id" field.
func CheckIDGTE(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGTE(FieldCheckID, v))
}

// CheckIDLT applies the LT predicate on the "check_id" field.
func CheckIDLT(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLT(FieldCheckID, v))
}

// CheckIDLTE applies the LTE predicate on the "check_id" field.
func CheckIDLTE(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLTE(FieldCheckID, v))
}

// CheckIDContains applies the Contains predicate on the "check_id" field.
func CheckIDContains(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldContains(FieldCheckID, v))
}

// CheckIDHasPrefix applies the HasPrefix predicate on the "check_id" field.
func CheckIDHasPrefix(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldHasPrefix(FieldCheckID, v))
}

// CheckIDHasSuffix applies the HasSuffix predicate on the "check_id" field.
func CheckIDHasSuffix(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldHasSuffix(FieldCheckID, v))
}

// CheckIDEqualFold applies the EqualFold predicate on the "check_id" field.
func CheckIDEqualFold(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEqualFold(FieldCheckID, v))
}

// CheckIDContainsFold applies the ContainsFold predicate on the "check_id" field.
func CheckIDContainsFold(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldContainsFold(FieldCheckID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldContainsFold(FieldUserID, v))
}

// HasProteinEQ applies the EQ predicate on the "has_protein" field.
func HasProteinEQ(v bool) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldHasProtein, v))
}

// HasProteinNEQ applies the NEQ predicate on the "has_protein" field.
func HasProteinNEQ(v bool) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNEQ(FieldHasProtein, v))
}

// HasPlantsEQ applies the EQ predicate on the "has_plants" field.
func HasPlantsEQ(v bool) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldHasPlants, v))
}

// HasPlantsNEQ applies the NEQ predicate on the "has_plants" field.
func HasPlantsNEQ(v bool) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNEQ(FieldHasPlants, v))
}

// ReactionTypeEQ applies the EQ predicate on the "reaction_type" field.
func ReactionTypeEQ(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldReactionType, v))
}

// ReactionTypeNEQ applies the NEQ predicate on the "reaction_type" field.
func ReactionTypeNEQ(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNEQ(FieldReactionType, v))
}

// ReactionTypeIn applies the In predicate on the "reaction_type" field.
func ReactionTypeIn(vs ...string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldIn(FieldReactionType, vs...))
}

// ReactionTypeNotIn applies the NotIn predicate on the "reaction_type" field.
func ReactionTypeNotIn(vs ...string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNotIn(FieldReactionType, vs...))
}

// ReactionTypeGT applies the GT predicate on the "reaction_type" field.
func ReactionTypeGT(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGT(FieldReactionType, v))
}

// ReactionTypeGTE applies the GTE predicate on the "reaction_type" field.
func ReactionTypeGTE(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGTE(FieldReactionType, v))
}

// ReactionTypeLT applies the LT predicate on the "reaction_type" field.
func ReactionTypeLT(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLT(FieldReactionType, v))
}

// ReactionTypeLTE applies the LTE predicate on the "reaction_type" field.
func ReactionTypeLTE(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLTE(FieldReactionType, v))
}

// ReactionTypeContains applies the Contains predicate on the "reaction_type" field.
func ReactionTypeContains(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldContains(FieldReactionType, v))
}

// ReactionTypeHasPrefix applies the HasPrefix predicate on the "reaction_type" field.
func ReactionTypeHasPrefix(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldHasPrefix(FieldReactionType, v))
}

// ReactionTypeHasSuffix applies the HasSuffix predicate on the "reaction_type" field.
func ReactionTypeHasSuffix(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldHasSuffix(FieldReactionType, v))
}

// ReactionTypeEqualFold applies the EqualFold predicate on the "reaction_type" field.
func ReactionTypeEqualFold(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEqualFold(FieldReactionType, v))
}

// ReactionTypeContainsFold applies the ContainsFold predicate on the "reaction_type" field.
func ReactionTypeContainsFold(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldContainsFold(FieldReactionType, v))
}

// ReactionIDEQ applies the EQ predicate on the "reaction_id" field.
func ReactionIDEQ(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldReactionID, v))
}

// ReactionIDNEQ applies the NEQ predicate on the "reaction_id" field.
func ReactionIDNEQ(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNEQ(FieldReactionID, v))
}

// ReactionIDIn applies the In predicate on the "reaction_id" field.
func ReactionIDIn(vs ...string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldIn(FieldReactionID, vs...))
}

// ReactionIDNotIn applies the NotIn predicate on the "reaction_id" field.
func ReactionIDNotIn(vs ...string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNotIn(FieldReactionID, vs...))
}

// ReactionIDGT applies the GT predicate on the "reaction_id" field.
func ReactionIDGT(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGT(FieldReactionID, v))
}

// ReactionIDGTE applies the GTE predicate on the "reaction_id" field.
func ReactionIDGTE(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGTE(FieldReactionID, v))
}

// ReactionIDLT applies the LT predicate on the "reaction_id" field.
func ReactionIDLT(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLT(FieldReactionID, v))
}

// ReactionIDLTE applies the LTE predicate on the "reaction_id" field.
func ReactionIDLTE(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLTE(FieldReactionID, v))
}

// ReactionIDContains applies the Contains predicate on the "reaction_id" field.
func ReactionIDContains(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldContains(FieldReactionID, v))
}

// ReactionIDHasPrefix applies the HasPrefix predicate on the "reaction_id" field.
func ReactionIDHasPrefix(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldHasPrefix(FieldReactionID, v))
}

// ReactionIDHasSuffix applies the HasSuffix predicate on the "reaction_id" field.
func ReactionIDHasSuffix(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldHasSuffix(FieldReactionID, v))
}

// ReactionIDEqualFold applies the EqualFold predicate on the "reaction_id" field.
func ReactionIDEqualFold(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEqualFold(FieldReactionID, v))
}

// ReactionIDContainsFold applies the ContainsFold predicate on the "reaction_id" field.
func ReactionIDContainsFold(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldContainsFold(FieldReactionID, v))
}

// SuggestionEQ applies the EQ predicate on the "suggestion" field.
func SuggestionEQ(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEQ(FieldSuggestion, v))
}

// SuggestionNEQ applies the NEQ predicate on the "suggestion" field.
func SuggestionNEQ(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNEQ(FieldSuggestion, v))
}

// SuggestionIn applies the In predicate on the "suggestion" field.
func SuggestionIn(vs ...string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldIn(FieldSuggestion, vs...))
}

// SuggestionNotIn applies the NotIn predicate on the "suggestion" field.
func SuggestionNotIn(vs ...string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldNotIn(FieldSuggestion, vs...))
}

// SuggestionGT applies the GT predicate on the "suggestion" field.
func SuggestionGT(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGT(FieldSuggestion, v))
}

// SuggestionGTE applies the GTE predicate on the "suggestion" field.
func SuggestionGTE(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldGTE(FieldSuggestion, v))
}

// SuggestionLT applies the LT predicate on the "suggestion" field.
func SuggestionLT(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLT(FieldSuggestion, v))
}

// SuggestionLTE applies the LTE predicate on the "suggestion" field.
func SuggestionLTE(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldLTE(FieldSuggestion, v))
}

// SuggestionContains applies the Contains predicate on the "suggestion" field.
func SuggestionContains(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldContains(FieldSuggestion, v))
}

// SuggestionHasPrefix applies the HasPrefix predicate on the "suggestion" field.
func SuggestionHasPrefix(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldHasPrefix(FieldSuggestion, v))
}

// SuggestionHasSuffix applies the HasSuffix predicate on the "suggestion" field.
func SuggestionHasSuffix(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldHasSuffix(FieldSuggestion, v))
}

// SuggestionEqualFold applies the EqualFold predicate on the "suggestion" field.
func SuggestionEqualFold(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldEqualFold(FieldSuggestion, v))
}

// SuggestionContainsFold applies the ContainsFold predicate on the "suggestion" field.
func SuggestionContainsFold(v string) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.FieldContainsFold(FieldSuggestion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlateCheckEvent) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlateCheckEvent) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlateCheckEvent) predicate.PlateCheckEvent {
	return predicate.PlateCheckEvent(sql.NotPredicates(p))
}
