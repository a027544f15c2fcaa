package progress

import (
	"strings"

	"github.com/abhisek/studypal/internal/grader"
	"github.com/abhisek/studypal/internal/quiz"
	"github.com/abhisek/studypal/internal/scoring"
)

// SessionFindings are the weak areas and strengths derived from one
// scored attempt, ready for reconciliation.
type SessionFindings struct {
	WeakAreas []string
	Strengths []string
}

// DeriveFindings classifies every question of a scored attempt into a
// weak area or a strength.
//
// Each question yields a composite entry
// "<prompt>: <answer>[: <AI feedback>]". The entry is a strength when
// the question was answered correctly or, for open-ended questions,
// graded partial; otherwise it is a weak area. A weak open-ended
// question additionally contributes its grading result's bare weak-area
// tags as standalone entries. Both sets come back deduplicated with
// blanks discarded.
func DeriveFindings(questions []*quiz.Question, answers []quiz.Answer, attempt *scoring.AttemptScore) SessionFindings {
	var weak, strengths []string

	for i, q := range questions {
		if strings.TrimSpace(q.Prompt) == "" {
			continue
		}

		var a quiz.Answer
		if i < len(answers) {
			a = answers[i]
		}

		if q.Type.IsOpenEnded() {
			result, graded := attempt.ResultFor(i)
			entry := compositeEntry(q, a, result.Feedback)

			if graded && (result.Grade == grader.GradeCorrect || result.Grade == grader.GradePartial) {
				strengths = append(strengths, entry)
				continue
			}

			weak = append(weak, entry)
			if graded {
				weak = append(weak, result.WeakAreas...)
			}
			continue
		}

		entry := compositeEntry(q, a, "")
		if quiz.Evaluate(q, a) {
			strengths = append(strengths, entry)
		} else {
			weak = append(weak, entry)
		}
	}

	return SessionFindings{
		WeakAreas: dedupe(weak),
		Strengths: dedupe(strengths),
	}
}

// compositeEntry renders the "<prompt>: <answer>[: <feedback>]" form.
func compositeEntry(q *quiz.Question, a quiz.Answer, feedback string) string {
	entry := q.Prompt + ": " + a.Display(q)
	if feedback != "" {
		entry += ": " + feedback
	}
	return entry
}
