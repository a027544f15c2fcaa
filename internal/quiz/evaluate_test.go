package quiz

import "testing"

func boolPtr(b bool) *bool { return &b }

func singleQuestion(correct ...int) *Question {
	return &Question{
		Type:    TypeSingle,
		Prompt:  "What is the capital of France?",
		Options: []string{"London", "Paris", "Rome", "Berlin"},
		Correct: CorrectAnswer{Indices: correct},
	}
}

func TestEvaluate_Single(t *testing.T) {
	tests := []struct {
		name   string
		q      *Question
		a      Answer
		want   bool
	}{
		{"correct index", singleQuestion(1), Answer{Selected: []int{1}}, true},
		{"wrong index", singleQuestion(1), Answer{Selected: []int{2}}, false},
		{"any acceptable index matches", singleQuestion(1, 3), Answer{Selected: []int{3}}, true},
		{"no selection", singleQuestion(1), Answer{}, false},
		{"two selections", singleQuestion(1), Answer{Selected: []int{1, 2}}, false},
		{"boolean shape for choice question", singleQuestion(1), Answer{Flag: boolPtr(true)}, false},
		{"text shape for choice question", singleQuestion(1), Answer{Text: "Paris"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.q, tt.a); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_Multiple(t *testing.T) {
	q := &Question{
		Type:    TypeMultiple,
		Prompt:  "Which are prime?",
		Options: []string{"2", "3", "4", "6"},
		Correct: CorrectAnswer{Indices: []int{0, 1}},
	}

	tests := []struct {
		name string
		a    Answer
		want bool
	}{
		{"exact match", Answer{Selected: []int{0, 1}}, true},
		{"order irrelevant", Answer{Selected: []int{1, 0}}, true},
		{"duplicate selection is not exact", Answer{Selected: []int{0, 1, 1}}, false},
		{"duplicate hiding a missing pick", Answer{Selected: []int{0, 0}}, false},
		{"subset", Answer{Selected: []int{0}}, false},
		{"superset", Answer{Selected: []int{0, 1, 2}}, false},
		{"disjoint", Answer{Selected: []int{2, 3}}, false},
		{"empty", Answer{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, tt.a); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_TrueFalse(t *testing.T) {
	q := &Question{
		Type:    TypeTrueFalse,
		Prompt:  "The sky is blue.",
		Correct: CorrectAnswer{Bool: true},
	}

	if !Evaluate(q, Answer{Flag: boolPtr(true)}) {
		t.Error("matching boolean should be correct")
	}
	if Evaluate(q, Answer{Flag: boolPtr(false)}) {
		t.Error("mismatched boolean should be incorrect")
	}
	// Strict equality: a missing boolean is malformed, never coerced.
	if Evaluate(q, Answer{}) {
		t.Error("missing boolean should be incorrect")
	}
	if Evaluate(q, Answer{Selected: []int{1}}) {
		t.Error("index shape should be incorrect for true_false")
	}
}

func TestEvaluate_OpenEndedNeverDecidedLocally(t *testing.T) {
	q := &Question{
		Type:    TypeOpenEnded,
		Prompt:  "Explain photosynthesis.",
		Correct: CorrectAnswer{Text: "Plants convert light to energy."},
	}
	if Evaluate(q, Answer{Text: "Plants convert light to energy."}) {
		t.Error("open-ended answers must defer to the grading result")
	}
}

func TestEvaluate_UnknownTypeFallsBackToSingle(t *testing.T) {
	q := &Question{
		Type:    QuestionType("matching"),
		Options: []string{"a", "b"},
		Correct: CorrectAnswer{Indices: []int{0}},
	}
	if !Evaluate(q, Answer{Selected: []int{0}}) {
		t.Error("unknown type should use the single rule")
	}
	if Evaluate(q, Answer{Selected: []int{0, 1}}) {
		t.Error("unknown type with two selections should be incorrect")
	}
}
