// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kavery/platewise/ent/platecheckevent"
)

// PlateCheckEvent is the model entity for the PlateCheckEvent schema.
type PlateCheckEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of this plate check
	CheckID string `json:"check_id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// HasProtein holds the value of the "has_protein" field.
	HasProtein bool `json:"has_protein,omitempty"`
	// HasPlants holds the value of the "has_plants" field.
	HasPlants bool `json:"has_plants,omitempty"`
	// perfect, meh, or oops
	ReactionType string `json:"reaction_type,omitempty"`
	// Catalog id of the reaction line shown
	ReactionID string `json:"reaction_id,omitempty"`
	// AI suggestion text shown to the user
	Suggestion   string `json:"suggestion,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlateCheckEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case platecheckevent.FieldHasProtein, platecheckevent.FieldHasPlants:
			values[i] = new(sql.NullBool)
		case platecheckevent.FieldID, platecheckevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case platecheckevent.FieldCheckID, platecheckevent.FieldUserID, platecheckevent.FieldReactionType, platecheckevent.FieldReactionID, platecheckevent.FieldSuggestion:
			values[i] = new(sql.NullString)
		case platecheckevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlateCheckEvent fields.
func (_m *PlateCheckEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case platecheckevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case platecheckevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case platecheckevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case platecheckevent.FieldCheckID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field check_id", values[i])
			} else if value.Valid {
				_m.CheckID = value.String
			}
		case platecheckevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case platecheckevent.FieldHasProtein:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_protein", values[i])
			} else if value.Valid {
				_m.HasProtein = value.Bool
			}
		case platecheckevent.FieldHasPlants:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_plants", values[i])
			} else if value.Valid {
				_m.HasPlants = value.Bool
			}
		case platecheckevent.FieldReactionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reaction_type", values[i])
			} else if value.Valid {
				_m.ReactionType = value.String
			}
		case platecheckevent.FieldReactionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reaction_id", values[i])
			} else if value.Valid {
				_m.ReactionID = value.String
			}
		case platecheckevent.FieldSuggestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggestion", values[i])
			} else if value.Valid {
				_m.Suggestion = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlateCheckEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PlateCheckEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlateCheckEvent.
// Note that you need to call PlateCheckEvent.Unwrap() before calling this method if this PlateCheckEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlateCheckEvent) Update() *PlateCheckEventUpdateOne {
	return NewPlateCheckEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlateCheckEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlateCheckEvent) Unwrap() *PlateCheckEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlateCheckEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlateCheckEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PlateCheckEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("check_id=")
	builder.WriteString(_m.CheckID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("has_protein=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasProtein))
	builder.WriteString(", ")
	builder.WriteString("has_plants=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasPlants))
	builder.WriteString(", ")
	builder.WriteString("reaction_type=")
	builder.WriteString(_m.ReactionType)
	builder.WriteString(", ")
	builder.WriteString("reaction_id=")
	builder.WriteString(_m.ReactionID)
	builder.WriteString(", ")
	builder.WriteString("suggestion=")
	builder.WriteString(_m.Suggestion)
	builder.WriteByte(')')
	return builder.String()
}

// PlateCheckEvents is a parsable slice of PlateCheckEvent.
type PlateCheckEvents []*PlateCheckEvent
