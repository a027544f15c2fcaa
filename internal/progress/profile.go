package progress

import (
	"strings"
	"time"
)

// LearningProfile is the persistent per-(user, topic) record of what a
// learner struggles with and has mastered. Created on the first attempt
// for a topic and reconciled on every attempt after that; the engine
// never deletes one.
//
// WeakAreas and Strengths are string sets holding two kinds of entries
// side by side: composite entries of the form
// "<question text>: <answer>[: <AI feedback>]" and bare concept tags
// pulled from grading results. Both are opaque for dedup purposes; only
// contradiction detection looks inside the composite form.
type LearningProfile struct {
	UserID string
	Topic  string

	// WeakAreas holds entries for questions answered wrong and concept
	// tags from the AI grader, deduplicated, first-seen order.
	WeakAreas []string

	// Strengths holds entries for questions answered correctly (or
	// graded partial), deduplicated, first-seen order.
	Strengths []string

	// ProgressScore is the latest attempt's score. Always overwritten,
	// never averaged.
	ProgressScore int

	// LastUpdated is when the profile was last reconciled.
	LastUpdated time.Time
}

// entryKey extracts the comparison key from a stored entry: the
// substring before the first colon. Composite entries share a key when
// they record the same question; bare tags (no colon) are their own
// key. The key is used purely for equality, never mutated.
func entryKey(entry string) string {
	if i := strings.Index(entry, ":"); i >= 0 {
		return entry[:i]
	}
	return entry
}

// dedupe removes duplicate and blank entries, preserving first-seen
// order so profiles render stably across attempts.
func dedupe(entries []string) []string {
	var out []string
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

// keySet collects the entry keys present in a list.
func keySet(entries []string) map[string]bool {
	keys := make(map[string]bool, len(entries))
	for _, e := range entries {
		keys[entryKey(e)] = true
	}
	return keys
}
