package store

import (
	"context"
	"time"
)

// ProfileData is the stored form of a learning profile. The progress
// package owns the domain type; this is the persistence shape.
type ProfileData struct {
	UserID        string
	Topic         string
	WeakAreas     []string
	Strengths     []string
	ProgressScore int
	LastUpdated   time.Time
}

// ProfileRepo manages learning profile rows, one per (user, topic).
type ProfileRepo interface {
	// Get returns the profile for a user and topic, or nil if none
	// exists yet.
	Get(ctx context.Context, userID, topic string) (*ProfileData, error)

	// Put upserts a profile: create if absent, else overwrite the
	// weak areas, strengths, progress score and last-updated fields.
	Put(ctx context.Context, p *ProfileData) error

	// ListForUser returns all of a user's profiles, most recently
	// updated first.
	ListForUser(ctx context.Context, userID string) ([]*ProfileData, error)
}

// AttemptEventData captures one scored attempt for the event log.
type AttemptEventData struct {
	AttemptID      string
	UserID         string
	Topic          string
	Score          int
	TotalQuestions int
	OpenEnded      int
	Graded         bool
}

// AttemptEvent is a stored attempt event row.
type AttemptEvent struct {
	ID        int
	Timestamp time.Time
	AttemptEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event row.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one request purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a scored quiz attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// RecentAttempts returns a user's attempt events, newest first.
	RecentAttempts(ctx context.Context, userID string, opts QueryOpts) ([]*AttemptEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// CounterRepo manages per-user bounded usage counters.
type CounterRepo interface {
	// Count returns the current count for a user and action (0 when the
	// counter doesn't exist yet).
	Count(ctx context.Context, userID, action string) (int, error)

	// Increment adds one to the counter, creating it at 1 if absent.
	Increment(ctx context.Context, userID, action string) error

	// Reset deletes all counters for a user.
	Reset(ctx context.Context, userID string) error
}
