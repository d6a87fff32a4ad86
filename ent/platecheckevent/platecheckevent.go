// Code generated by ent, DO NOT EDIT.

package platecheckevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the platecheckevent type in the database.
	Label = "plate_check_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldCheckID holds the string denoting the check_id field in the database.
	FieldCheckID = "check_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldHasProtein holds the string denoting the has_protein field in the database.
	FieldHasProtein = "has_protein"
	// FieldHasPlants holds the string denoting the has_plants field in the database.
	FieldHasPlants = "has_plants"
	// FieldReactionType holds the string denoting the reaction_type field in the database.
	FieldReactionType = "reaction_type"
	// FieldReactionID holds the string denoting the reaction_id field in the database.
	FieldReactionID = "reaction_id"
	// FieldSuggestion holds the string denoting the suggestion field in the database.
	FieldSuggestion = "suggestion"
	// Table holds the table name of the platecheckevent in the database.
	Table = "plate_check_events"
)

// Columns holds all SQL columns for platecheckevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldCheckID,
	FieldUserID,
	FieldHasProtein,
	FieldHasPlants,
	FieldReactionType,
	FieldReactionID,
	FieldSuggestion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// CheckIDValidator is a validator for the "check_id" field. It is called by the builders before save.
	CheckIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ReactionTypeValidator is a validator for the "reaction_type" field. It is called by the builders before save.
	ReactionTypeValidator func(string) error
	// DefaultReactionID holds the default value on creation for the "reaction_id" field.
	DefaultReactionID string
	// DefaultSuggestion holds the default value on creation for the "suggestion" field.
	DefaultSuggestion string
)

// OrderOption defines the ordering options for the PlateCheckEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByCheckID orders the results by the check_id field.
func ByCheckID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByHasProtein orders the results by the has_protein field.
func ByHasProtein(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasProtein, opts...).ToFunc()
}

// ByHasPlants orders the results by the has_plants field.
func ByHasPlants(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasPlants, opts...).ToFunc()
}

// ByReactionType orders the results by the reaction_type field.
func ByReactionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReactionType, opts...).ToFunc()
}

// ByReactionID orders the results by the reaction_id field.
func ByReactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReactionID, opts...).ToFunc()
}

// BySuggestion orders the results by the suggestion field.
func BySuggestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestion, opts...).ToFunc()
}
