package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfilePutGetUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// Absent profile reads as nil, not an error.
	p, err := repo.Get(ctx, "u1", "algebra")
	if err != nil {
		t.Fatalf("get (absent): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile before first put")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Put(ctx, &ProfileData{
		UserID:        "u1",
		Topic:         "algebra",
		WeakAreas:     []string{"Solve x+2=5: 4"},
		Strengths:     []string{"Solve 2x=6: 3"},
		ProgressScore: 50,
		LastUpdated:   now,
	})
	if err != nil {
		t.Fatalf("put (create): %v", err)
	}

	// Overwrite the same row.
	err = repo.Put(ctx, &ProfileData{
		UserID:        "u1",
		Topic:         "algebra",
		WeakAreas:     nil,
		Strengths:     []string{"Solve 2x=6: 3", "Solve x+2=5: 3"},
		ProgressScore: 100,
		LastUpdated:   now.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("put (update): %v", err)
	}

	p, err = repo.Get(ctx, "u1", "algebra")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.ProgressScore != 100 {
		t.Errorf("ProgressScore = %d, want 100", p.ProgressScore)
	}
	if len(p.WeakAreas) != 0 {
		t.Errorf("WeakAreas = %v, want empty after overwrite", p.WeakAreas)
	}
	if len(p.Strengths) != 2 {
		t.Errorf("Strengths = %v, want 2 entries", p.Strengths)
	}

	// A second topic is a separate row.
	if err := repo.Put(ctx, &ProfileData{UserID: "u1", Topic: "geometry", ProgressScore: 80, LastUpdated: now}); err != nil {
		t.Fatalf("put (second topic): %v", err)
	}
	all, err := repo.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListForUser = %d profiles, want 2", len(all))
	}
}

func TestAttemptEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, score := range []int{40, 70, 90} {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			AttemptID:      string(rune('a' + i)),
			UserID:         "u1",
			Topic:          "algebra",
			Score:          score,
			TotalQuestions: 5,
			OpenEnded:      1,
			Graded:         true,
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	events, err := repo.RecentAttempts(ctx, "u1", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Score != 90 || events[1].Score != 70 {
		t.Errorf("unexpected order: %d, %d", events[0].Score, events[1].Score)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "answer-grading",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    450,
		Success:      true,
		RequestBody:  "[user]\nGrade the following 1 answer(s)",
		ResponseBody: `{"graded": []}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Purpose != "answer-grading" {
		t.Errorf("unexpected event: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "answer-grading", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "answer-grading", InputTokens: 200, OutputTokens: 100, LatencyMs: 600, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "chat", InputTokens: 30, OutputTokens: 10, LatencyMs: 200, Success: true},
	}
	for _, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purpose groups, want 2", len(byPurpose))
	}
	stats := make(map[string]LLMUsageStats)
	for _, st := range byPurpose {
		stats[st.Purpose] = st
	}
	grading := stats["answer-grading"]
	if grading.Calls != 2 || grading.InputTokens != 300 || grading.OutputTokens != 150 {
		t.Errorf("unexpected grading stats: %+v", grading)
	}
	if grading.AvgLatencyMs != 500 {
		t.Errorf("avg latency = %d, want 500", grading.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := make(map[string]LLMModelUsage)
	for _, mu := range byModel {
		models[mu.Model] = mu
	}
	haiku := models["claude-haiku-4-5"]
	if haiku.Calls != 2 || haiku.InputTokens != 300 {
		t.Errorf("unexpected haiku usage: %+v", haiku)
	}
}

func TestCounters(t *testing.T) {
	s := openTestStore(t)
	repo := s.CounterRepo()
	ctx := context.Background()

	n, err := repo.Count(ctx, "guest", "quiz")
	if err != nil {
		t.Fatalf("count (absent): %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}

	for range 3 {
		if err := repo.Increment(ctx, "guest", "quiz"); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	n, err = repo.Count(ctx, "guest", "quiz")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	if err := repo.Reset(ctx, "guest"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	n, _ = repo.Count(ctx, "guest", "quiz")
	if n != 0 {
		t.Errorf("count after reset = %d, want 0", n)
	}
}
