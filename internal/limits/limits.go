package limits

import (
	"context"
	"fmt"

	"github.com/abhisek/studypal/internal/store"
)

// Action is a counted, bounded user action.
type Action string

const (
	ActionChat        Action = "chat"
	ActionQuiz        Action = "quiz"
	ActionQuizAttempt Action = "quiz_attempt"
)

// Config bounds guest usage per action. A limit of zero or below means
// unlimited.
type Config struct {
	MaxChats        int
	MaxQuizzes      int
	MaxQuizAttempts int
}

// DefaultConfig returns the bounds applied to anonymous users.
func DefaultConfig() Config {
	return Config{
		MaxChats:        10,
		MaxQuizzes:      3,
		MaxQuizAttempts: 6,
	}
}

// Service answers whether a user may still perform a bounded action,
// backed by persisted counters.
type Service struct {
	counters store.CounterRepo
	cfg      Config
}

// NewService creates a limits service.
func NewService(counters store.CounterRepo, cfg Config) *Service {
	return &Service{counters: counters, cfg: cfg}
}

// CanPerform reports whether the user is still under the limit for the
// action. Unknown actions are refused.
func (s *Service) CanPerform(ctx context.Context, userID string, action Action) (bool, error) {
	limit, err := s.limitFor(action)
	if err != nil {
		return false, err
	}
	if limit <= 0 {
		return true, nil
	}

	count, err := s.counters.Count(ctx, userID, string(action))
	if err != nil {
		return false, fmt.Errorf("read counter: %w", err)
	}
	return count < limit, nil
}

// Increment counts one performed action.
func (s *Service) Increment(ctx context.Context, userID string, action Action) error {
	if _, err := s.limitFor(action); err != nil {
		return err
	}
	if err := s.counters.Increment(ctx, userID, string(action)); err != nil {
		return fmt.Errorf("increment counter: %w", err)
	}
	return nil
}

func (s *Service) limitFor(action Action) (int, error) {
	switch action {
	case ActionChat:
		return s.cfg.MaxChats, nil
	case ActionQuiz:
		return s.cfg.MaxQuizzes, nil
	case ActionQuizAttempt:
		return s.cfg.MaxQuizAttempts, nil
	default:
		return 0, fmt.Errorf("unknown action: %q", action)
	}
}
