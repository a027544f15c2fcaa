package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studypal/ent"
	"github.com/abhisek/studypal/ent/usagecounter"
)

// counterRepo implements CounterRepo using the ent client.
type counterRepo struct {
	client *ent.Client
}

func (r *counterRepo) Count(ctx context.Context, userID, action string) (int, error) {
	row, err := r.client.UsageCounter.Query().
		Where(
			usagecounter.UserID(userID),
			usagecounter.Action(action),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query counter: %w", err)
	}
	return row.Count, nil
}

func (r *counterRepo) Increment(ctx context.Context, userID, action string) error {
	row, err := r.client.UsageCounter.Query().
		Where(
			usagecounter.UserID(userID),
			usagecounter.Action(action),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query counter for increment: %w", err)
	}

	if row == nil {
		_, err = r.client.UsageCounter.Create().
			SetUserID(userID).
			SetAction(action).
			SetCount(1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create counter: %w", err)
		}
		return nil
	}

	_, err = row.Update().AddCount(1).Save(ctx)
	if err != nil {
		return fmt.Errorf("increment counter: %w", err)
	}
	return nil
}

func (r *counterRepo) Reset(ctx context.Context, userID string) error {
	_, err := r.client.UsageCounter.Delete().
		Where(usagecounter.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset counters: %w", err)
	}
	return nil
}
