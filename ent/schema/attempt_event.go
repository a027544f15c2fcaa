package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one scored quiz attempt for history and stats.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			Immutable().
			Comment("Client-generated UUID for the attempt"),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("topic").
			NotEmpty().
			Immutable(),
		field.Int("score").
			Immutable().
			Comment("Final score, 0-100"),
		field.Int("total_questions").
			Immutable(),
		field.Int("open_ended").
			Default(0).
			Immutable().
			Comment("How many questions needed AI grading"),
		field.Bool("graded").
			Default(true).
			Immutable().
			Comment("False when the grader was unreachable and fallback credit applied"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic"),
	}
}
