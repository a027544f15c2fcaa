package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningProfile is the persistent weak-area/strength record for one
// (user, topic) pair. One row per pair, overwritten on every attempt.
type LearningProfile struct {
	ent.Schema
}

func (LearningProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Owning user"),
		field.String("topic").
			NotEmpty().
			Comment("Quiz topic this profile tracks"),
		field.JSON("weak_areas", []string{}).
			Optional().
			Comment("Deduplicated weak-area entries: composite question entries and bare concept tags"),
		field.JSON("strengths", []string{}).
			Optional().
			Comment("Deduplicated strength entries"),
		field.Int("progress_score").
			Default(0).
			Comment("Latest attempt's score, 0-100"),
		field.Time("last_updated").
			Default(time.Now).
			Comment("When the profile was last reconciled"),
	}
}

func (LearningProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic").Unique(),
	}
}
