package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Journey is the persisted journey state: one row per user, updated in
// place on every lesson completion. This is the only externally visible
// schema the core owns, so it carries an explicit schema_version for
// migration of the completed-id list format.
type Journey struct {
	ent.Schema
}

func (Journey) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("Owning user"),
		field.Int("schema_version").
			Default(1).
			Comment("Journey state schema version"),
		field.JSON("completed_lesson_ids", []string{}).
			Comment("Completed lesson ids in completion order"),
		field.String("current_level").
			Default("foundation").
			Comment("Highest unlocked mastery level"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("First-ever lesson completion"),
		field.Time("last_completed_at").
			Optional().
			Nillable().
			Comment("Most recent lesson completion"),
	}
}

func (Journey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
