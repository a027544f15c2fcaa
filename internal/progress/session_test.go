package progress

import (
	"reflect"
	"testing"

	"github.com/abhisek/studypal/internal/grader"
	"github.com/abhisek/studypal/internal/quiz"
	"github.com/abhisek/studypal/internal/scoring"
)

func boolPtr(b bool) *bool { return &b }

func TestDeriveFindings_ClosedForm(t *testing.T) {
	questions := []*quiz.Question{
		{
			Type:    quiz.TypeSingle,
			Prompt:  "Capital of France?",
			Options: []string{"London", "Paris"},
			Correct: quiz.CorrectAnswer{Indices: []int{1}},
		},
		{
			Type:    quiz.TypeTrueFalse,
			Prompt:  "The sun is a star.",
			Correct: quiz.CorrectAnswer{Bool: true},
		},
	}
	answers := []quiz.Answer{
		{Selected: []int{1}},
		{Flag: boolPtr(false)},
	}

	f := DeriveFindings(questions, answers, &scoring.AttemptScore{})

	if !reflect.DeepEqual(f.Strengths, []string{"Capital of France?: Paris"}) {
		t.Errorf("Strengths = %v", f.Strengths)
	}
	if !reflect.DeepEqual(f.WeakAreas, []string{"The sun is a star.: False"}) {
		t.Errorf("WeakAreas = %v", f.WeakAreas)
	}
}

func TestDeriveFindings_OpenEnded(t *testing.T) {
	questions := []*quiz.Question{
		{Type: quiz.TypeOpenEnded, Prompt: "Explain gravity."},
		{Type: quiz.TypeOpenEnded, Prompt: "Explain magnetism."},
		{Type: quiz.TypeOpenEnded, Prompt: "Explain friction."},
	}
	answers := []quiz.Answer{
		{Text: "mass attracts mass"},
		{Text: "no idea"},
		{Text: "rubbing"},
	}
	attempt := &scoring.AttemptScore{
		GradingResults: []grader.Result{
			{Grade: grader.GradeCorrect, Score: 1, Feedback: "Spot on."},
			{Grade: grader.GradeIncorrect, Score: 0, Feedback: "Review fields.", WeakAreas: []string{"magnetic fields", "poles"}},
			{Grade: grader.GradePartial, Score: 0.5, Feedback: "Partly right."},
		},
		OpenEnded: []scoring.OpenEndedRef{
			{AbsoluteIndex: 0, OrdinalIndex: 0},
			{AbsoluteIndex: 1, OrdinalIndex: 1},
			{AbsoluteIndex: 2, OrdinalIndex: 2},
		},
	}

	f := DeriveFindings(questions, answers, attempt)

	// Correct and partial are strengths, with feedback folded in.
	wantStrengths := []string{
		"Explain gravity.: mass attracts mass: Spot on.",
		"Explain friction.: rubbing: Partly right.",
	}
	if !reflect.DeepEqual(f.Strengths, wantStrengths) {
		t.Errorf("Strengths = %v, want %v", f.Strengths, wantStrengths)
	}

	// The incorrect one is weak, with its bare tags appended standalone.
	wantWeak := []string{
		"Explain magnetism.: no idea: Review fields.",
		"magnetic fields",
		"poles",
	}
	if !reflect.DeepEqual(f.WeakAreas, wantWeak) {
		t.Errorf("WeakAreas = %v, want %v", f.WeakAreas, wantWeak)
	}
}

func TestDeriveFindings_UngradedOpenEndedIsWeak(t *testing.T) {
	// Grader fallback: refs exist, results don't.
	questions := []*quiz.Question{
		{Type: quiz.TypeOpenEnded, Prompt: "Explain gravity."},
	}
	answers := []quiz.Answer{{Text: "stuff falls"}}
	attempt := &scoring.AttemptScore{
		OpenEnded: []scoring.OpenEndedRef{{AbsoluteIndex: 0, OrdinalIndex: 0}},
	}

	f := DeriveFindings(questions, answers, attempt)

	if len(f.Strengths) != 0 {
		t.Errorf("Strengths = %v, want none without a grading result", f.Strengths)
	}
	if !reflect.DeepEqual(f.WeakAreas, []string{"Explain gravity.: stuff falls"}) {
		t.Errorf("WeakAreas = %v", f.WeakAreas)
	}
}

func TestDeriveFindings_SkipsBlankPrompts(t *testing.T) {
	questions := []*quiz.Question{
		{Type: quiz.TypeSingle, Prompt: "  ", Correct: quiz.CorrectAnswer{Indices: []int{0}}},
	}
	f := DeriveFindings(questions, []quiz.Answer{{}}, &scoring.AttemptScore{})
	if len(f.WeakAreas) != 0 || len(f.Strengths) != 0 {
		t.Errorf("blank prompt should contribute nothing: %+v", f)
	}
}
