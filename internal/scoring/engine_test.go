package scoring

import (
	"errors"
	"testing"

	"github.com/abhisek/studypal/internal/grader"
	"github.com/abhisek/studypal/internal/quiz"
)

func boolPtr(b bool) *bool { return &b }

func single(correct int) *quiz.Question {
	return &quiz.Question{
		Type:    quiz.TypeSingle,
		Prompt:  "single",
		Options: []string{"a", "b", "c"},
		Correct: quiz.CorrectAnswer{Indices: []int{correct}},
	}
}

func multiple(correct ...int) *quiz.Question {
	return &quiz.Question{
		Type:    quiz.TypeMultiple,
		Prompt:  "multiple",
		Options: []string{"a", "b", "c", "d"},
		Correct: quiz.CorrectAnswer{Indices: correct},
	}
}

func trueFalse(correct bool) *quiz.Question {
	return &quiz.Question{
		Type:    quiz.TypeTrueFalse,
		Prompt:  "true_false",
		Correct: quiz.CorrectAnswer{Bool: correct},
	}
}

func openEnded(prompt string) *quiz.Question {
	return &quiz.Question{
		Type:    quiz.TypeOpenEnded,
		Prompt:  prompt,
		Correct: quiz.CorrectAnswer{Text: "reference answer"},
	}
}

func TestScore_ClosedFormOnlyNeverCallsGrader(t *testing.T) {
	mock := grader.NewMockGrader()
	e := NewEngine(mock, DefaultConfig())

	questions := []*quiz.Question{single(0), trueFalse(true)}
	answers := []quiz.Answer{
		{Selected: []int{0}},
		{Flag: boolPtr(false)},
	}

	attempt, err := e.Score(t.Context(), questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if attempt.Score != 50 {
		t.Errorf("Score = %d, want 50", attempt.Score)
	}
	if mock.CallCount() != 0 {
		t.Error("grader must not be invoked without open-ended questions")
	}
	if len(attempt.GradingResults) != 0 || len(attempt.OpenEnded) != 0 {
		t.Errorf("unexpected grading state: %+v", attempt)
	}
}

// The worked example from the scoring design: 2 correct single, 1
// correct multiple, 1 incorrect true_false, 1 open-ended graded partial
// at 0.5 ⇒ 3.5/5 ⇒ 70.
func TestScore_MixedAttempt(t *testing.T) {
	mock := grader.NewMockGrader([]grader.Result{
		{Grade: grader.GradePartial, Score: 0.5, Feedback: "halfway there"},
	})
	e := NewEngine(mock, DefaultConfig())

	questions := []*quiz.Question{
		single(1),
		single(2),
		multiple(0, 2),
		trueFalse(true),
		openEnded("Explain it."),
	}
	answers := []quiz.Answer{
		{Selected: []int{1}},
		{Selected: []int{2}},
		{Selected: []int{2, 0}},
		{Flag: boolPtr(false)},
		{Text: "an attempt"},
	}

	attempt, err := e.Score(t.Context(), questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if attempt.Score != 70 {
		t.Errorf("Score = %d, want 70", attempt.Score)
	}
	if mock.CallCount() != 1 {
		t.Errorf("grader called %d times, want exactly one batch call", mock.CallCount())
	}
	if len(attempt.GradingResults) != 1 {
		t.Fatalf("GradingResults = %v, want one entry", attempt.GradingResults)
	}

	// Ordinal-to-absolute mapping.
	r, ok := attempt.ResultFor(4)
	if !ok || r.Grade != grader.GradePartial {
		t.Errorf("ResultFor(4) = %+v, %v; want the partial result", r, ok)
	}
	if _, ok := attempt.ResultFor(0); ok {
		t.Error("ResultFor on a closed-form question should report false")
	}
}

func TestScore_GraderFailureFallsBack(t *testing.T) {
	mock := grader.NewFailingGrader(errors.New("service down"))
	e := NewEngine(mock, DefaultConfig())

	questions := []*quiz.Question{
		openEnded("q1"), openEnded("q2"), openEnded("q3"),
	}
	answers := []quiz.Answer{{Text: "a"}, {Text: "b"}, {Text: "c"}}

	attempt, err := e.Score(t.Context(), questions, answers)
	if err != nil {
		t.Fatalf("Score must not fail on grader outage: %v", err)
	}
	// 3 * 0.5 = 1.5 of 3 ⇒ 50.
	if attempt.Score != 50 {
		t.Errorf("Score = %d, want 50", attempt.Score)
	}
	if len(attempt.GradingResults) != 0 {
		t.Errorf("GradingResults = %v, want empty on fallback", attempt.GradingResults)
	}
	// Refs survive the fallback so display code can still tell which
	// questions were open-ended.
	if len(attempt.OpenEnded) != 3 {
		t.Errorf("OpenEnded = %v, want 3 refs", attempt.OpenEnded)
	}
	if _, ok := attempt.ResultFor(0); ok {
		t.Error("ResultFor should report false when grading fell back")
	}
}

func TestScore_NilGraderFallsBack(t *testing.T) {
	e := NewEngine(nil, DefaultConfig())

	attempt, err := e.Score(t.Context(), []*quiz.Question{openEnded("q")}, []quiz.Answer{{Text: "a"}})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if attempt.Score != 50 {
		t.Errorf("Score = %d, want 50", attempt.Score)
	}
}

func TestScore_BatchPreservesQuestionOrder(t *testing.T) {
	mock := grader.NewMockGrader([]grader.Result{
		{Grade: grader.GradeCorrect, Score: 1},
		{Grade: grader.GradeIncorrect, Score: 0},
	})
	e := NewEngine(mock, DefaultConfig())

	questions := []*quiz.Question{
		single(0),
		openEnded("first open"),
		trueFalse(true),
		openEnded("second open"),
	}
	answers := []quiz.Answer{
		{Selected: []int{0}},
		{Text: "alpha"},
		{Flag: boolPtr(true)},
		{Text: "beta"},
	}

	attempt, err := e.Score(t.Context(), questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	batch := mock.Calls[0]
	if len(batch) != 2 || batch[0].Question != "first open" || batch[1].Question != "second open" {
		t.Errorf("batch order wrong: %+v", batch)
	}
	if batch[0].Answer != "alpha" || batch[1].Answer != "beta" {
		t.Errorf("answers misaligned with questions: %+v", batch)
	}

	wantRefs := []OpenEndedRef{{AbsoluteIndex: 1, OrdinalIndex: 0}, {AbsoluteIndex: 3, OrdinalIndex: 1}}
	for i, want := range wantRefs {
		if attempt.OpenEnded[i] != want {
			t.Errorf("OpenEnded[%d] = %+v, want %+v", i, attempt.OpenEnded[i], want)
		}
	}

	// 1 + 1 + 1 + 0 = 3 of 4 ⇒ 75.
	if attempt.Score != 75 {
		t.Errorf("Score = %d, want 75", attempt.Score)
	}
}

func TestScore_RoundingBoundaries(t *testing.T) {
	// round(points/total*100) rounds half away from zero.
	tests := []struct {
		name    string
		results []grader.Result
		want    int
	}{
		// 0.5 of 3 ⇒ 16.67 ⇒ 17.
		{"rounds up above half", []grader.Result{{Score: 0.5}, {Score: 0}, {Score: 0}}, 17},
		// 1.25 of 4 ⇒ 31.25 ⇒ 31.
		{"rounds down below half", []grader.Result{{Score: 0.5}, {Score: 0.5}, {Score: 0.25}, {Score: 0}}, 31},
		// 1.5 of 4 ⇒ 37.5 ⇒ 38. The inputs are dyadic fractions, so the
		// boundary is hit exactly rather than by float accident.
		{"exact half rounds up", []grader.Result{{Score: 0.5}, {Score: 0.5}, {Score: 0.5}, {Score: 0}}, 38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(grader.NewMockGrader(tt.results), DefaultConfig())
			questions := make([]*quiz.Question, len(tt.results))
			answers := make([]quiz.Answer, len(tt.results))
			for i := range questions {
				questions[i] = openEnded("q")
				answers[i] = quiz.Answer{Text: "a"}
			}
			attempt, err := e.Score(t.Context(), questions, answers)
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if attempt.Score != tt.want {
				t.Errorf("Score = %d, want %d", attempt.Score, tt.want)
			}
		})
	}
}

func TestScore_EmptyAttempt(t *testing.T) {
	e := NewEngine(nil, DefaultConfig())
	attempt, err := e.Score(t.Context(), nil, nil)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if attempt.Score != 0 {
		t.Errorf("Score = %d, want 0", attempt.Score)
	}
}

func TestScore_MissingTrailingAnswersAreIncorrect(t *testing.T) {
	e := NewEngine(nil, DefaultConfig())
	questions := []*quiz.Question{single(0), single(1)}
	answers := []quiz.Answer{{Selected: []int{0}}}

	attempt, err := e.Score(t.Context(), questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if attempt.Score != 50 {
		t.Errorf("Score = %d, want 50", attempt.Score)
	}
}

func TestIsQuestionCorrect(t *testing.T) {
	if !IsQuestionCorrect(single(0), quiz.Answer{Selected: []int{0}}, nil) {
		t.Error("closed-form correct answer should report true")
	}
	// Open-ended is always false here; callers must use ResultFor.
	results := []grader.Result{{Grade: grader.GradeCorrect, Score: 1}}
	if IsQuestionCorrect(openEnded("q"), quiz.Answer{Text: "perfect"}, results) {
		t.Error("open-ended must report false regardless of grading results")
	}
}
