package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studypal/internal/quiz"
	"github.com/abhisek/studypal/internal/scoring"
	"github.com/abhisek/studypal/internal/store"
)

// Outcome is everything one quiz submission produces.
type Outcome struct {
	AttemptID string
	Attempt   *scoring.AttemptScore
	Findings  SessionFindings
	Profile   *LearningProfile
}

// Service runs the full scoring-and-reconciliation cycle for a quiz
// submission. One cycle per submission; the surrounding application is
// expected to serialize attempts per user per topic.
type Service struct {
	engine   *scoring.Engine
	profiles store.ProfileRepo
	events   store.EventRepo
	now      func() time.Time
}

// NewService creates a progress service. events may be nil to skip
// attempt history logging.
func NewService(engine *scoring.Engine, profiles store.ProfileRepo, events store.EventRepo) *Service {
	return &Service{
		engine:   engine,
		profiles: profiles,
		events:   events,
		now:      time.Now,
	}
}

// Record scores a completed attempt and reconciles the user's learning
// profile for the topic.
//
// The returned Outcome is non-nil whenever a score could be computed,
// including when reading or writing the profile fails. Storage problems
// come back as the error alongside the outcome, so the caller can show
// the learner their result and separately decide what to do about
// persistence. Only a scoring-input problem (mismatched arrays) yields
// a nil outcome.
func (s *Service) Record(ctx context.Context, userID, topic string, questions []*quiz.Question, answers []quiz.Answer) (*Outcome, error) {
	attempt, err := s.engine.Score(ctx, questions, answers)
	if err != nil {
		return nil, fmt.Errorf("score attempt: %w", err)
	}

	outcome := &Outcome{
		AttemptID: uuid.New().String(),
		Attempt:   attempt,
		Findings:  DeriveFindings(questions, answers, attempt),
	}

	var persistErrs []error

	existing, err := s.profiles.Get(ctx, userID, topic)
	if err != nil {
		persistErrs = append(persistErrs, fmt.Errorf("load profile: %w", err))
		existing = nil // reconcile against nothing; the result still stands
	}

	profile := Reconcile(profileFromData(existing), outcome.Findings.WeakAreas, outcome.Findings.Strengths, attempt.Score, s.now())
	profile.UserID = userID
	profile.Topic = topic
	outcome.Profile = profile

	if err := s.profiles.Put(ctx, profileToData(profile)); err != nil {
		persistErrs = append(persistErrs, fmt.Errorf("store profile: %w", err))
	}

	if s.events != nil {
		err := s.events.AppendAttempt(ctx, store.AttemptEventData{
			AttemptID:      outcome.AttemptID,
			UserID:         userID,
			Topic:          topic,
			Score:          attempt.Score,
			TotalQuestions: len(questions),
			OpenEnded:      len(attempt.OpenEnded),
			Graded:         len(attempt.OpenEnded) == 0 || len(attempt.GradingResults) > 0,
		})
		if err != nil {
			persistErrs = append(persistErrs, fmt.Errorf("record attempt event: %w", err))
		}
	}

	return outcome, errors.Join(persistErrs...)
}

// profileFromData converts a stored row to the domain type.
func profileFromData(d *store.ProfileData) *LearningProfile {
	if d == nil {
		return nil
	}
	return &LearningProfile{
		UserID:        d.UserID,
		Topic:         d.Topic,
		WeakAreas:     d.WeakAreas,
		Strengths:     d.Strengths,
		ProgressScore: d.ProgressScore,
		LastUpdated:   d.LastUpdated,
	}
}

// profileToData converts the domain type to its stored row.
func profileToData(p *LearningProfile) *store.ProfileData {
	return &store.ProfileData{
		UserID:        p.UserID,
		Topic:         p.Topic,
		WeakAreas:     p.WeakAreas,
		Strengths:     p.Strengths,
		ProgressScore: p.ProgressScore,
		LastUpdated:   p.LastUpdated,
	}
}
