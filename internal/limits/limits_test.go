package limits

import (
	"context"
	"errors"
	"testing"
)

type fakeCounters struct {
	counts map[string]int
	err    error
}

func newFakeCounters() *fakeCounters {
	return &fakeCounters{counts: map[string]int{}}
}

func (f *fakeCounters) key(userID, action string) string { return userID + "/" + action }

func (f *fakeCounters) Count(_ context.Context, userID, action string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[f.key(userID, action)], nil
}

func (f *fakeCounters) Increment(_ context.Context, userID, action string) error {
	if f.err != nil {
		return f.err
	}
	f.counts[f.key(userID, action)]++
	return nil
}

func (f *fakeCounters) Reset(_ context.Context, userID string) error {
	for k := range f.counts {
		delete(f.counts, k)
	}
	return nil
}

func TestCanPerform_UnderLimit(t *testing.T) {
	counters := newFakeCounters()
	svc := NewService(counters, Config{MaxChats: 2})

	ok, err := svc.CanPerform(t.Context(), "u1", ActionChat)
	if err != nil {
		t.Fatalf("CanPerform() error = %v", err)
	}
	if !ok {
		t.Error("CanPerform() = false, want true with zero usage")
	}
}

func TestCanPerform_AtLimit(t *testing.T) {
	counters := newFakeCounters()
	svc := NewService(counters, Config{MaxChats: 2})

	for i := 0; i < 2; i++ {
		if err := svc.Increment(t.Context(), "u1", ActionChat); err != nil {
			t.Fatalf("Increment() error = %v", err)
		}
	}

	ok, err := svc.CanPerform(t.Context(), "u1", ActionChat)
	if err != nil {
		t.Fatalf("CanPerform() error = %v", err)
	}
	if ok {
		t.Error("CanPerform() = true at limit, want false")
	}
}

func TestCanPerform_UnlimitedWhenZero(t *testing.T) {
	counters := newFakeCounters()
	counters.counts["u1/quiz"] = 1000
	svc := NewService(counters, Config{MaxQuizzes: 0})

	ok, err := svc.CanPerform(t.Context(), "u1", ActionQuiz)
	if err != nil {
		t.Fatalf("CanPerform() error = %v", err)
	}
	if !ok {
		t.Error("CanPerform() = false with zero limit, want unlimited")
	}
}

func TestCanPerform_UnknownAction(t *testing.T) {
	svc := NewService(newFakeCounters(), DefaultConfig())

	if _, err := svc.CanPerform(t.Context(), "u1", Action("teleport")); err == nil {
		t.Error("CanPerform() with unknown action, want error")
	}
	if err := svc.Increment(t.Context(), "u1", Action("teleport")); err == nil {
		t.Error("Increment() with unknown action, want error")
	}
}

func TestCanPerform_CountersIsolatedPerUser(t *testing.T) {
	counters := newFakeCounters()
	svc := NewService(counters, Config{MaxQuizAttempts: 1})

	if err := svc.Increment(t.Context(), "u1", ActionQuizAttempt); err != nil {
		t.Fatalf("Increment() error = %v", err)
	}

	ok, err := svc.CanPerform(t.Context(), "u2", ActionQuizAttempt)
	if err != nil {
		t.Fatalf("CanPerform() error = %v", err)
	}
	if !ok {
		t.Error("CanPerform() for other user = false, want true")
	}
}

func TestCanPerform_CounterError(t *testing.T) {
	counters := newFakeCounters()
	counters.err = errors.New("db gone")
	svc := NewService(counters, Config{MaxChats: 2})

	if _, err := svc.CanPerform(t.Context(), "u1", ActionChat); err == nil {
		t.Error("CanPerform() with failing store, want error")
	}
}
