package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records a lesson completion. The Journey row is the
// source of truth for current state; these events keep the history.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Owning user"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Completed lesson"),
		field.String("level").
			NotEmpty().
			Comment("Mastery level of the lesson at completion time"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("lesson_id"),
	}
}
