// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningProfile is the predicate function for learningprofile builders.
type LearningProfile func(*sql.Selector)

// UsageCounter is the predicate function for usagecounter builders.
type UsageCounter func(*sql.Selector)
