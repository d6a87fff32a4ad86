// Code generated by ent, DO NOT EDIT.

package journey

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the journey type in the database.
	Label = "journey"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// FieldCompletedLessonIds holds the string denoting the completed_lesson_ids field in the database.
	FieldCompletedLessonIds = "completed_lesson_ids"
	// FieldCurrentLevel holds the string denoting the current_level field in the database.
	FieldCurrentLevel = "current_level"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldLastCompletedAt holds the string denoting the last_completed_at field in the database.
	FieldLastCompletedAt = "last_completed_at"
	// Table holds the table name of the journey in the database.
	Table = "journeys"
)

// Columns holds all SQL columns for journey fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSchemaVersion,
	FieldCompletedLessonIds,
	FieldCurrentLevel,
	FieldStartedAt,
	FieldLastCompletedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultSchemaVersion holds the default value on creation for the "schema_version" field.
	DefaultSchemaVersion int
	// DefaultCurrentLevel holds the default value on creation for the "current_level" field.
	DefaultCurrentLevel string
)

// OrderOption defines the ordering options for the Journey queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

// ByCurrentLevel orders the results by the current_level field.
func ByCurrentLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentLevel, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByLastCompletedAt orders the results by the last_completed_at field.
func ByLastCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCompletedAt, opts...).ToFunc()
}
