package quiz

import "sort"

// Evaluate decides whether answer is correct for question, without any
// I/O. It is total: every question type gets a verdict, never a panic,
// and a malformed answer (wrong shape for the type) is simply incorrect.
//
// Open-ended questions are never decided here: their correctness lives
// in the AI grading result at the matching ordinal position, which the
// scoring engine resolves. Evaluate answers false for them.
func Evaluate(q *Question, a Answer) bool {
	switch q.Type {
	case TypeMultiple:
		return evaluateMultiple(q, a)
	case TypeTrueFalse:
		return evaluateTrueFalse(q, a)
	case TypeOpenEnded:
		return false
	default:
		// single, and any type this version doesn't know about.
		return evaluateSingle(q, a)
	}
}

// evaluateSingle requires exactly one selected index, matching any
// member of the canonical correct set.
func evaluateSingle(q *Question, a Answer) bool {
	if len(a.Selected) != 1 {
		return false
	}
	for _, want := range q.Correct.Indices {
		if a.Selected[0] == want {
			return true
		}
	}
	return false
}

// evaluateMultiple compares the selection against the correct set as
// sorted sequences: same length, same elements. Selection order never
// matters, but a duplicated selection fails the length check rather
// than collapsing into a correct one.
func evaluateMultiple(q *Question, a Answer) bool {
	correct := q.Correct.Indices
	if len(a.Selected) != len(correct) || len(a.Selected) == 0 {
		return false
	}
	selected := make([]int, len(a.Selected))
	copy(selected, a.Selected)
	sort.Ints(selected)
	for i := range selected {
		if selected[i] != correct[i] {
			return false
		}
	}
	return true
}

// evaluateTrueFalse requires a boolean answer strictly equal to the key.
// A missing boolean (nil Flag) is a malformed answer, not "false".
func evaluateTrueFalse(q *Question, a Answer) bool {
	return a.Flag != nil && *a.Flag == q.Correct.Bool
}
