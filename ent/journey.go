// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kavery/platewise/ent/journey"
)

// Journey is the model entity for the Journey schema.
type Journey struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// Journey state schema version
	SchemaVersion int `json:"schema_version,omitempty"`
	// Completed lesson ids in completion order
	CompletedLessonIds []string `json:"completed_lesson_ids,omitempty"`
	// Highest unlocked mastery level
	CurrentLevel string `json:"current_level,omitempty"`
	// First-ever lesson completion
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Most recent lesson completion
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Journey) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case journey.FieldCompletedLessonIds:
			values[i] = new([]byte)
		case journey.FieldID, journey.FieldSchemaVersion:
			values[i] = new(sql.NullInt64)
		case journey.FieldUserID, journey.FieldCurrentLevel:
			values[i] = new(sql.NullString)
		case journey.FieldStartedAt, journey.FieldLastCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Journey fields.
func (_m *Journey) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case journey.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case journey.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case journey.FieldSchemaVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field schema_version", values[i])
			} else if value.Valid {
				_m.SchemaVersion = int(value.Int64)
			}
		case journey.FieldCompletedLessonIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_lesson_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedLessonIds); err != nil {
					return fmt.Errorf("unmarshal field completed_lesson_ids: %w", err)
				}
			}
		case journey.FieldCurrentLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_level", values[i])
			} else if value.Valid {
				_m.CurrentLevel = value.String
			}
		case journey.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case journey.FieldLastCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_completed_at", values[i])
			} else if value.Valid {
				_m.LastCompletedAt = new(time.Time)
				*_m.LastCompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Journey.
// This includes values selected through modifiers, order, etc.
func (_m *Journey) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Journey.
// Note that you need to call Journey.Unwrap() before calling this method if this Journey
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Journey) Update() *JourneyUpdateOne {
	return NewJourneyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Journey entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Journey) Unwrap() *Journey {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Journey is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Journey) String() string {
	var builder strings.Builder
	builder.WriteString("Journey(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("schema_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchemaVersion))
	builder.WriteString(", ")
	builder.WriteString("completed_lesson_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedLessonIds))
	builder.WriteString(", ")
	builder.WriteString("current_level=")
	builder.WriteString(_m.CurrentLevel)
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastCompletedAt; v != nil {
		builder.WriteString("last_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Journeys is a parsable slice of Journey.
type Journeys []*Journey
