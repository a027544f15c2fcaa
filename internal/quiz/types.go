package quiz

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// QuestionType identifies how a question is answered and graded.
type QuestionType string

const (
	// TypeSingle is a single-choice question: the learner picks one option.
	TypeSingle QuestionType = "single"

	// TypeMultiple is a multiple-choice question: the learner picks a set
	// of options, all of which must match the answer key.
	TypeMultiple QuestionType = "multiple"

	// TypeTrueFalse is a boolean question.
	TypeTrueFalse QuestionType = "true_false"

	// TypeOpenEnded is a free-text question graded by the AI grader.
	TypeOpenEnded QuestionType = "open_ended"
)

// IsOpenEnded reports whether the type requires external grading.
func (t QuestionType) IsOpenEnded() bool { return t == TypeOpenEnded }

// Question is one quiz item. Immutable once a quiz is generated.
type Question struct {
	// Type selects the answering and grading rules.
	Type QuestionType

	// Prompt is the question text displayed to the learner.
	Prompt string

	// Options is the ordered option list for single/multiple questions.
	// Empty for true_false and open_ended.
	Options []string

	// Correct is the answer key in canonical form. Generated quizzes
	// encode the key three ways for choice questions (index, index list,
	// or option text); decoding normalizes all of them here, so the
	// evaluator only ever sees this one shape.
	Correct CorrectAnswer

	// Explanation is a short worked explanation shown after answering.
	Explanation string
}

// CorrectAnswer is the canonical answer key for one question.
// Exactly one field group is meaningful, selected by the question type.
type CorrectAnswer struct {
	// Indices is the sorted set of correct option indices
	// (single: any member matches; multiple: the full set must match).
	Indices []int

	// Bool is the expected value for true_false questions.
	Bool bool

	// Text is the reference answer for open_ended questions. It is sent
	// to the grader as a context hint, never compared locally.
	Text string
}

// Answer is a learner's response to one question. Answers are positional:
// index i answers question i, and that alignment must be preserved end to
// end or grading silently attaches results to the wrong questions.
//
// Exactly one field group is meaningful, selected by the question type;
// an answer carrying the wrong shape for its question evaluates to
// incorrect rather than failing.
type Answer struct {
	// Selected holds the chosen option indices for choice questions.
	Selected []int

	// Flag holds the boolean response for true_false questions.
	// Nil means the learner did not give a boolean answer.
	Flag *bool

	// Text holds the free-text response for open_ended questions.
	Text string
}

// UnmarshalJSON accepts the shapes a submitted attempt uses on the wire:
// a number or number array (choice selections), a boolean, or a string.
func (a *Answer) UnmarshalJSON(data []byte) error {
	*a = Answer{}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		a.Selected = []int{n}
		return nil
	}

	var ns []int
	if err := json.Unmarshal(data, &ns); err == nil {
		a.Selected = ns
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		a.Flag = &b
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Text = s
		return nil
	}

	// Unknown shape. Leave the answer empty: it evaluates to incorrect,
	// matching the malformed-answer policy.
	return nil
}

// Display renders the answer the way the learner would read it back:
// option texts for choice questions, True/False for booleans, the text
// itself for free-text answers.
func (a Answer) Display(q *Question) string {
	switch q.Type {
	case TypeTrueFalse:
		if a.Flag == nil {
			return ""
		}
		if *a.Flag {
			return "True"
		}
		return "False"

	case TypeOpenEnded:
		return strings.TrimSpace(a.Text)

	default:
		var parts []string
		for _, idx := range a.Selected {
			if idx >= 0 && idx < len(q.Options) {
				parts = append(parts, q.Options[idx])
			}
		}
		return strings.Join(parts, ", ")
	}
}

// questionWire is the JSON shape a generated quiz arrives in.
// correctAnswer is deliberately raw: its shape varies by question type
// and by how the generator chose to encode it.
type questionWire struct {
	Type          string          `json:"type"`
	Prompt        string          `json:"question"`
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correctAnswer"`
	Explanation   string          `json:"explanation"`
}

// UnmarshalJSON decodes a question and eagerly normalizes its answer key.
func (q *Question) UnmarshalJSON(data []byte) error {
	var w questionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	q.Type = QuestionType(w.Type)
	q.Prompt = w.Prompt
	q.Options = w.Options
	q.Explanation = w.Explanation

	correct, err := normalizeCorrect(q.Type, w.CorrectAnswer, w.Options)
	if err != nil {
		return fmt.Errorf("question %q: %w", truncatePrompt(w.Prompt), err)
	}
	q.Correct = correct
	return nil
}

func truncatePrompt(p string) string {
	const max = 40
	if len(p) <= max {
		return p
	}
	// Cut on a rune boundary so the ellipsis never follows a split rune.
	end := max
	for end > 0 && !utf8.RuneStart(p[end]) {
		end--
	}
	return p[:end] + "…"
}

// sortedIndexSet copies and sorts an index list, dropping duplicates.
func sortedIndexSet(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	out := make([]int, 0, len(in))
	seen := make(map[int]bool, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
