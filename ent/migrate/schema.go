// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompletionEventsColumns holds the columns for the "completion_events" table.
	CompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
	}
	// CompletionEventsTable holds the schema information for the "completion_events" table.
	CompletionEventsTable = &schema.Table{
		Name:       "completion_events",
		Columns:    CompletionEventsColumns,
		PrimaryKey: []*schema.Column{CompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[1]},
			},
			{
				Name:    "completionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[2]},
			},
			{
				Name:    "completionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[3]},
			},
			{
				Name:    "completionevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[4]},
			},
		},
	}
	// JourneysColumns holds the columns for the "journeys" table.
	JourneysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "schema_version", Type: field.TypeInt, Default: 1},
		{Name: "completed_lesson_ids", Type: field.TypeJSON},
		{Name: "current_level", Type: field.TypeString, Default: "foundation"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_completed_at", Type: field.TypeTime, Nullable: true},
	}
	// JourneysTable holds the schema information for the "journeys" table.
	JourneysTable = &schema.Table{
		Name:       "journeys",
		Columns:    JourneysColumns,
		PrimaryKey: []*schema.Column{JourneysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "journey_user_id",
				Unique:  true,
				Columns: []*schema.Column{JourneysColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PlateCheckEventsColumns holds the columns for the "plate_check_events" table.
	PlateCheckEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "check_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "has_protein", Type: field.TypeBool},
		{Name: "has_plants", Type: field.TypeBool},
		{Name: "reaction_type", Type: field.TypeString},
		{Name: "reaction_id", Type: field.TypeString, Default: ""},
		{Name: "suggestion", Type: field.TypeString, Default: ""},
	}
	// PlateCheckEventsTable holds the schema information for the "plate_check_events" table.
	PlateCheckEventsTable = &schema.Table{
		Name:       "plate_check_events",
		Columns:    PlateCheckEventsColumns,
		PrimaryKey: []*schema.Column{PlateCheckEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "platecheckevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlateCheckEventsColumns[1]},
			},
			{
				Name:    "platecheckevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlateCheckEventsColumns[2]},
			},
			{
				Name:    "platecheckevent_check_id",
				Unique:  false,
				Columns: []*schema.Column{PlateCheckEventsColumns[3]},
			},
			{
				Name:    "platecheckevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{PlateCheckEventsColumns[4]},
			},
			{
				Name:    "platecheckevent_reaction_type",
				Unique:  false,
				Columns: []*schema.Column{PlateCheckEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompletionEventsTable,
		JourneysTable,
		LlmRequestEventsTable,
		PlateCheckEventsTable,
	}
)

func init() {
}
