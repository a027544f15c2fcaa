package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/studypal/internal/quiz"
	"github.com/abhisek/studypal/internal/scoring"
	"github.com/abhisek/studypal/internal/store"
)

// mockProfileRepo implements store.ProfileRepo in memory.
type mockProfileRepo struct {
	profiles map[string]*store.ProfileData
	getErr   error
	putErr   error
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*store.ProfileData)}
}

func (m *mockProfileRepo) Get(_ context.Context, userID, topic string) (*store.ProfileData, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.profiles[userID+"/"+topic], nil
}

func (m *mockProfileRepo) Put(_ context.Context, p *store.ProfileData) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.profiles[p.UserID+"/"+p.Topic] = p
	return nil
}

func (m *mockProfileRepo) ListForUser(_ context.Context, userID string) ([]*store.ProfileData, error) {
	var out []*store.ProfileData
	for _, p := range m.profiles {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// mockEventRepo implements store.EventRepo, recording attempt appends.
type mockEventRepo struct {
	attempts []store.AttemptEventData
	err      error
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	if m.err != nil {
		return m.err
	}
	m.attempts = append(m.attempts, data)
	return nil
}

func (m *mockEventRepo) RecentAttempts(_ context.Context, _ string, _ store.QueryOpts) ([]*store.AttemptEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]*store.LLMEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func testQuestions() ([]*quiz.Question, []quiz.Answer) {
	questions := []*quiz.Question{
		{
			Type:    quiz.TypeSingle,
			Prompt:  "Q1",
			Options: []string{"a", "b"},
			Correct: quiz.CorrectAnswer{Indices: []int{0}},
		},
		{
			Type:    quiz.TypeSingle,
			Prompt:  "Q2",
			Options: []string{"a", "b"},
			Correct: quiz.CorrectAnswer{Indices: []int{1}},
		},
	}
	answers := []quiz.Answer{
		{Selected: []int{0}}, // correct
		{Selected: []int{0}}, // wrong
	}
	return questions, answers
}

func newTestService(profiles store.ProfileRepo, events store.EventRepo) *Service {
	svc := NewService(scoring.NewEngine(nil, scoring.DefaultConfig()), profiles, events)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestService_RecordCreatesProfile(t *testing.T) {
	profiles := newMockProfileRepo()
	events := &mockEventRepo{}
	svc := newTestService(profiles, events)

	questions, answers := testQuestions()
	outcome, err := svc.Record(context.Background(), "u1", "algebra", questions, answers)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if outcome.Attempt.Score != 50 {
		t.Errorf("Score = %d, want 50", outcome.Attempt.Score)
	}
	if outcome.AttemptID == "" {
		t.Error("expected a generated attempt ID")
	}

	stored := profiles.profiles["u1/algebra"]
	if stored == nil {
		t.Fatal("profile was not persisted")
	}
	if stored.ProgressScore != 50 {
		t.Errorf("stored ProgressScore = %d, want 50", stored.ProgressScore)
	}
	if len(stored.WeakAreas) != 1 || len(stored.Strengths) != 1 {
		t.Errorf("stored sets: weak=%v strengths=%v", stored.WeakAreas, stored.Strengths)
	}

	if len(events.attempts) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(events.attempts))
	}
	if events.attempts[0].TotalQuestions != 2 || !events.attempts[0].Graded {
		t.Errorf("attempt event = %+v", events.attempts[0])
	}
}

func TestService_RecordReconcilesSecondAttempt(t *testing.T) {
	profiles := newMockProfileRepo()
	svc := newTestService(profiles, nil)
	ctx := context.Background()

	questions, answers := testQuestions()
	if _, err := svc.Record(ctx, "u1", "algebra", questions, answers); err != nil {
		t.Fatalf("first Record: %v", err)
	}

	// Second attempt: Q2 answered correctly now.
	answers[1] = quiz.Answer{Selected: []int{1}}
	outcome, err := svc.Record(ctx, "u1", "algebra", questions, answers)
	if err != nil {
		t.Fatalf("second Record: %v", err)
	}

	if outcome.Attempt.Score != 100 {
		t.Errorf("Score = %d, want 100", outcome.Attempt.Score)
	}
	// The old "Q2: a" weak entry must be gone: Q2 is now a strength.
	for _, e := range outcome.Profile.WeakAreas {
		if entryKey(e) == "Q2" {
			t.Errorf("stale weak area survived: %q", e)
		}
	}
	if len(outcome.Profile.Strengths) != 2 {
		t.Errorf("Strengths = %v, want both questions", outcome.Profile.Strengths)
	}
}

func TestService_ResultSurvivesPersistenceFailure(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.putErr = errors.New("disk full")
	svc := newTestService(profiles, nil)

	questions, answers := testQuestions()
	outcome, err := svc.Record(context.Background(), "u1", "algebra", questions, answers)

	if err == nil {
		t.Error("expected the persistence error to be reported")
	}
	if outcome == nil {
		t.Fatal("outcome must be returned even when persistence fails")
	}
	if outcome.Attempt.Score != 50 {
		t.Errorf("Score = %d, want 50", outcome.Attempt.Score)
	}
	if outcome.Profile == nil {
		t.Error("reconciled profile must be returned even when the write fails")
	}
}

func TestService_ReadFailureReconcilesAgainstNothing(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.getErr = errors.New("connection reset")
	svc := newTestService(profiles, nil)

	questions, answers := testQuestions()
	outcome, err := svc.Record(context.Background(), "u1", "algebra", questions, answers)

	if err == nil {
		t.Error("expected the read error to be reported")
	}
	if outcome == nil || outcome.Profile == nil {
		t.Fatal("outcome and profile must still be produced")
	}
	if outcome.Profile.ProgressScore != 50 {
		t.Errorf("ProgressScore = %d, want 50", outcome.Profile.ProgressScore)
	}
}
