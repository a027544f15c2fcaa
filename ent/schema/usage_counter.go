package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageCounter is a bounded per-user action counter backing the guest
// usage limits (chats, quizzes, quiz attempts).
type UsageCounter struct {
	ent.Schema
}

func (UsageCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("Counted action: chat, quiz, quiz_attempt"),
		field.Int("count").
			Default(0).
			Min(0),
	}
}

func (UsageCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "action").Unique(),
	}
}
