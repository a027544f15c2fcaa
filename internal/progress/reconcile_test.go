package progress

import (
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestReconcile_NoExistingProfile(t *testing.T) {
	weak := []string{"Q1: wrong answer", "fractions"}
	strengths := []string{"Q2: right answer"}

	p := Reconcile(nil, weak, strengths, 60, testNow)

	if !reflect.DeepEqual(p.WeakAreas, weak) {
		t.Errorf("WeakAreas = %v, want %v", p.WeakAreas, weak)
	}
	if !reflect.DeepEqual(p.Strengths, strengths) {
		t.Errorf("Strengths = %v, want %v", p.Strengths, strengths)
	}
	if p.ProgressScore != 60 {
		t.Errorf("ProgressScore = %d, want 60", p.ProgressScore)
	}
	if !p.LastUpdated.Equal(testNow) {
		t.Errorf("LastUpdated = %v, want %v", p.LastUpdated, testNow)
	}
}

func TestReconcile_MasteredQuestionLeavesWeakAreas(t *testing.T) {
	existing := &LearningProfile{
		WeakAreas: []string{"Q1: wrong answer", "fractions"},
		Strengths: []string{"Q3: fine"},
	}

	p := Reconcile(existing, nil, []string{"Q1: right answer"}, 80, testNow)

	for _, e := range p.WeakAreas {
		if entryKey(e) == "Q1" {
			t.Errorf("weak area %q survived despite Q1 now being a strength", e)
		}
	}
	// Unrelated entries stay put.
	if !reflect.DeepEqual(p.WeakAreas, []string{"fractions"}) {
		t.Errorf("WeakAreas = %v, want [fractions]", p.WeakAreas)
	}
	if !reflect.DeepEqual(p.Strengths, []string{"Q3: fine", "Q1: right answer"}) {
		t.Errorf("Strengths = %v", p.Strengths)
	}
}

func TestReconcile_RegressionRemovesStaleStrength(t *testing.T) {
	existing := &LearningProfile{
		Strengths: []string{"Q2: right answer", "Q5: ok"},
	}

	p := Reconcile(existing, []string{"Q2: now wrong"}, nil, 40, testNow)

	if !reflect.DeepEqual(p.Strengths, []string{"Q5: ok"}) {
		t.Errorf("Strengths = %v, want the Q2 claim dropped", p.Strengths)
	}
	if !reflect.DeepEqual(p.WeakAreas, []string{"Q2: now wrong"}) {
		t.Errorf("WeakAreas = %v", p.WeakAreas)
	}
}

func TestReconcile_IdempotentForIdenticalSession(t *testing.T) {
	weak := []string{"Q1: wrong", "fractions"}
	strengths := []string{"Q2: right"}

	first := Reconcile(nil, weak, strengths, 50, testNow)
	second := Reconcile(first, weak, strengths, 50, testNow.Add(time.Hour))

	if !reflect.DeepEqual(first.WeakAreas, second.WeakAreas) {
		t.Errorf("WeakAreas changed: %v → %v", first.WeakAreas, second.WeakAreas)
	}
	if !reflect.DeepEqual(first.Strengths, second.Strengths) {
		t.Errorf("Strengths changed: %v → %v", first.Strengths, second.Strengths)
	}
	// Metadata still refreshes.
	if !second.LastUpdated.Equal(testNow.Add(time.Hour)) {
		t.Errorf("LastUpdated = %v, want refreshed", second.LastUpdated)
	}
}

func TestReconcile_DedupesAndDropsBlanks(t *testing.T) {
	p := Reconcile(nil,
		[]string{"fractions", "fractions", "", "   "},
		[]string{"Q1: right", "Q1: right"},
		70, testNow)

	if !reflect.DeepEqual(p.WeakAreas, []string{"fractions"}) {
		t.Errorf("WeakAreas = %v", p.WeakAreas)
	}
	if !reflect.DeepEqual(p.Strengths, []string{"Q1: right"}) {
		t.Errorf("Strengths = %v", p.Strengths)
	}
}

func TestReconcile_BareTagsAreTheirOwnKey(t *testing.T) {
	existing := &LearningProfile{
		WeakAreas: []string{"fractions"},
	}

	// A bare tag showing up as a strength removes the matching bare weak
	// tag: whole-entry key when there is no colon.
	p := Reconcile(existing, nil, []string{"fractions"}, 90, testNow)

	if len(p.WeakAreas) != 0 {
		t.Errorf("WeakAreas = %v, want the bare tag removed", p.WeakAreas)
	}
}

func TestReconcile_LatestScoreAlwaysWins(t *testing.T) {
	existing := &LearningProfile{ProgressScore: 95}
	p := Reconcile(existing, nil, nil, 20, testNow)
	if p.ProgressScore != 20 {
		t.Errorf("ProgressScore = %d, want 20 (no averaging)", p.ProgressScore)
	}
}

func TestEntryKey(t *testing.T) {
	tests := []struct {
		entry string
		want  string
	}{
		{"Q1: wrong answer", "Q1"},
		{"Q1: answer: feedback", "Q1"},
		{"fractions", "fractions"},
		{": leading colon", ""},
	}
	for _, tt := range tests {
		if got := entryKey(tt.entry); got != tt.want {
			t.Errorf("entryKey(%q) = %q, want %q", tt.entry, got, tt.want)
		}
	}
}
