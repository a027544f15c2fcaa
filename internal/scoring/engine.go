package scoring

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/abhisek/studypal/internal/grader"
	"github.com/abhisek/studypal/internal/quiz"
)

// fallbackCredit is the flat credit awarded per open-ended question
// when the grading service is unreachable. A grader outage must never
// block a learner from seeing their result.
const fallbackCredit = 0.5

// OpenEndedRef ties an open-ended question's position among all
// open-ended questions (the order grading results come back in) to its
// absolute index in the full question list. Built once per attempt and
// threaded through instead of re-filtering at each use site.
type OpenEndedRef struct {
	AbsoluteIndex int
	OrdinalIndex  int
}

// AttemptScore is the outcome of scoring one completed attempt.
// Derived once and never mutated; a new attempt produces a new value.
type AttemptScore struct {
	// Score is the final integer score, 0-100.
	Score int

	// GradingResults holds the AI verdicts for open-ended questions, in
	// ordinal order. Empty when the attempt had none or when grading
	// fell back.
	GradingResults []grader.Result

	// OpenEnded maps grading results back to absolute question indices.
	OpenEnded []OpenEndedRef
}

// ResultFor returns the grading result for the question at the given
// absolute index, or false when the question is not open-ended or the
// attempt has no grading results (grader fallback).
func (s *AttemptScore) ResultFor(absoluteIndex int) (grader.Result, bool) {
	for _, ref := range s.OpenEnded {
		if ref.AbsoluteIndex == absoluteIndex {
			if ref.OrdinalIndex < len(s.GradingResults) {
				return s.GradingResults[ref.OrdinalIndex], true
			}
			return grader.Result{}, false
		}
	}
	return grader.Result{}, false
}

// Config holds scoring engine configuration.
type Config struct {
	// GradeTimeout bounds the single batch call to the grader.
	// A timeout is treated like any other grading failure.
	GradeTimeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{GradeTimeout: 60 * time.Second}
}

// Engine scores completed quiz attempts: closed-form questions locally,
// open-ended questions through one batch call to the AI grader.
type Engine struct {
	grader grader.BatchGrader
	cfg    Config
}

// NewEngine creates a scoring engine. The grader may be nil when the
// caller knows no open-ended questions will appear; scoring an attempt
// that needs grading then takes the fallback path.
func NewEngine(g grader.BatchGrader, cfg Config) *Engine {
	return &Engine{grader: g, cfg: cfg}
}

// Score grades a completed attempt. Answers are positional: answers[i]
// responds to questions[i]; a missing trailing answer counts as
// malformed (incorrect).
//
// Closed-form questions earn one whole point each. Open-ended questions
// earn their fractional grading score, or fallbackCredit each when the
// batch grading call fails. The final score is
// round(points/total*100), rounding half away from zero.
func (e *Engine) Score(ctx context.Context, questions []*quiz.Question, answers []quiz.Answer) (*AttemptScore, error) {
	if len(questions) == 0 {
		return &AttemptScore{}, nil
	}
	if len(answers) > len(questions) {
		return nil, fmt.Errorf("attempt has %d answers for %d questions", len(answers), len(questions))
	}

	var points float64
	var refs []OpenEndedRef
	var items []grader.Item

	for i, q := range questions {
		var a quiz.Answer
		if i < len(answers) {
			a = answers[i]
		}

		if q.Type.IsOpenEnded() {
			refs = append(refs, OpenEndedRef{AbsoluteIndex: i, OrdinalIndex: len(items)})
			items = append(items, grader.Item{
				Question: q.Prompt,
				Answer:   a.Text,
				Context:  gradeContext(q),
			})
			continue
		}

		if quiz.Evaluate(q, a) {
			points++
		}
	}

	results := e.gradeOpenEnded(ctx, items)
	if results != nil {
		for _, r := range results {
			points += r.Score
		}
	} else if len(items) > 0 {
		points += fallbackCredit * float64(len(items))
	}

	score := int(math.Round(points / float64(len(questions)) * 100))

	return &AttemptScore{
		Score:          score,
		GradingResults: results,
		OpenEnded:      refs,
	}, nil
}

// gradeOpenEnded runs the single batch grading call. Nil means grading
// was skipped or failed and the fallback applies.
func (e *Engine) gradeOpenEnded(ctx context.Context, items []grader.Item) []grader.Result {
	if len(items) == 0 || e.grader == nil {
		return nil
	}

	if e.cfg.GradeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.GradeTimeout)
		defer cancel()
	}

	results, err := e.grader.GradeBatch(ctx, items)
	if err != nil {
		// Fail soft: the learner still gets a score.
		fmt.Fprintf(os.Stderr, "warning: batch grading failed, awarding fallback credit: %v\n", err)
		return nil
	}
	if len(results) != len(items) {
		fmt.Fprintf(os.Stderr, "warning: grader returned %d results for %d items, awarding fallback credit\n", len(results), len(items))
		return nil
	}
	return results
}

// gradeContext builds the context hint sent with an open-ended item.
func gradeContext(q *quiz.Question) string {
	if q.Correct.Text == "" {
		return ""
	}
	return "Expected answer: " + q.Correct.Text
}

// IsQuestionCorrect is a read-only query for result-display logic. For
// open-ended questions it always answers false: the real per-question
// grade must be looked up by ordinal position (see AttemptScore.ResultFor),
// and this function deliberately does not perform that lookup.
func IsQuestionCorrect(q *quiz.Question, a quiz.Answer, _ []grader.Result) bool {
	if q.Type.IsOpenEnded() {
		return false
	}
	return quiz.Evaluate(q, a)
}
