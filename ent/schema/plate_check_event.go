package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlateCheckEvent records one AI plate-photo analysis and the reaction
// shown for it.
type PlateCheckEvent struct {
	ent.Schema
}

func (PlateCheckEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlateCheckEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("check_id").
			NotEmpty().
			Comment("UUID of this plate check"),
		field.String("user_id").
			NotEmpty().
			Comment("Owning user"),
		field.Bool("has_protein"),
		field.Bool("has_plants"),
		field.String("reaction_type").
			NotEmpty().
			Comment("perfect, meh, or oops"),
		field.String("reaction_id").
			Default("").
			Comment("Catalog id of the reaction line shown"),
		field.String("suggestion").
			Default("").
			Comment("AI suggestion text shown to the user"),
	}
}

func (PlateCheckEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("check_id"),
		index.Fields("user_id"),
		index.Fields("reaction_type"),
	}
}
