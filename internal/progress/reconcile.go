package progress

import "time"

// Reconcile merges one session's findings into the stored profile for a
// topic and returns the updated profile. The contradiction-resolution
// step is the core invariant: when a later attempt contradicts an
// earlier one, the stale claim is dropped before the sets are merged.
//
//   - A question key that is now a strength removes any stored
//     weak-area entry with that key (the question has been mastered).
//   - A question key that is now weak removes any stored strength entry
//     with that key (a regression voids the old strength claim).
//
// With a nil existing profile there is nothing to reconcile against:
// the profile starts as exactly the session's sets.
//
// ProgressScore is overwritten with the new attempt's score (latest
// wins, no averaging) and LastUpdated is set to now. Re-applying an
// identical session is a no-op on set content.
func Reconcile(existing *LearningProfile, sessionWeak, sessionStrengths []string, newScore int, now time.Time) *LearningProfile {
	sessionWeak = dedupe(sessionWeak)
	sessionStrengths = dedupe(sessionStrengths)

	p := &LearningProfile{
		ProgressScore: newScore,
		LastUpdated:   now,
	}

	if existing == nil {
		p.WeakAreas = sessionWeak
		p.Strengths = sessionStrengths
		return p
	}

	p.UserID = existing.UserID
	p.Topic = existing.Topic

	nowStrong := keySet(sessionStrengths)
	nowWeak := keySet(sessionWeak)

	// Stored entries first, session entries appended: first-seen order
	// survives reconciliation.
	var weak []string
	for _, e := range existing.WeakAreas {
		if !nowStrong[entryKey(e)] {
			weak = append(weak, e)
		}
	}
	weak = append(weak, sessionWeak...)

	var strengths []string
	for _, e := range existing.Strengths {
		if !nowWeak[entryKey(e)] {
			strengths = append(strengths, e)
		}
	}
	strengths = append(strengths, sessionStrengths...)

	p.WeakAreas = dedupe(weak)
	p.Strengths = dedupe(strengths)
	return p
}
