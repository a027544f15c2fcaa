package grader

import "context"

// Grade classifies an open-ended answer.
type Grade string

const (
	GradeCorrect   Grade = "correct"
	GradePartial   Grade = "partial"
	GradeIncorrect Grade = "incorrect"
)

// Result is the grading verdict for one open-ended answer.
type Result struct {
	// Grade is the coarse classification.
	Grade Grade

	// Score is the fractional credit in [0, 1]. A partial grade carries
	// 0 < Score < 1.
	Score float64

	// Feedback is a short learner-facing explanation.
	Feedback string

	// WeakAreas are concept tags the answer revealed gaps in.
	WeakAreas []string

	// Improvements are concrete suggestions for the learner.
	Improvements []string
}

// IsCorrect reports whether the grade counts the question as answered
// correctly. Partial credit does not count as correct.
func (r Result) IsCorrect() bool { return r.Grade == GradeCorrect }

// Item is one answer submitted for grading.
type Item struct {
	// Question is the prompt the learner answered.
	Question string

	// Answer is the learner's free-text response.
	Answer string

	// Context is a hint for the grader, typically the reference answer
	// ("Expected answer: ...").
	Context string
}

// BatchGrader grades a whole attempt's open-ended answers in one call.
//
// Implementations must return results in the same order and cardinality
// as items. The call is atomic from the caller's perspective: either a
// full result list comes back or the error makes the scoring engine fall
// back to flat partial credit. Callers bound the call with a context
// deadline; a timeout is just another grading failure.
type BatchGrader interface {
	GradeBatch(ctx context.Context, items []Item) ([]Result, error)
}

// clampScore forces a grader-reported score into [0, 1]. Schema
// validation already bounds LLM output, but hand-written fakes and
// future transports get the same guarantee.
func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// normalizeGrade maps unknown grade strings to incorrect so a creative
// grader response never widens the enum downstream.
func normalizeGrade(g string) Grade {
	switch Grade(g) {
	case GradeCorrect, GradePartial, GradeIncorrect:
		return Grade(g)
	default:
		return GradeIncorrect
	}
}
