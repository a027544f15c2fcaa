package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studypal/ent"
	"github.com/abhisek/studypal/ent/learningprofile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID, topic string) (*ProfileData, error) {
	row, err := r.client.LearningProfile.Query().
		Where(
			learningprofile.UserID(userID),
			learningprofile.Topic(topic),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return entProfileToData(row), nil
}

func (r *profileRepo) Put(ctx context.Context, p *ProfileData) error {
	existing, err := r.client.LearningProfile.Query().
		Where(
			learningprofile.UserID(p.UserID),
			learningprofile.Topic(p.Topic),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile for upsert: %w", err)
	}

	if existing == nil {
		_, err = r.client.LearningProfile.Create().
			SetUserID(p.UserID).
			SetTopic(p.Topic).
			SetWeakAreas(p.WeakAreas).
			SetStrengths(p.Strengths).
			SetProgressScore(p.ProgressScore).
			SetLastUpdated(p.LastUpdated).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetWeakAreas(p.WeakAreas).
		SetStrengths(p.Strengths).
		SetProgressScore(p.ProgressScore).
		SetLastUpdated(p.LastUpdated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *profileRepo) ListForUser(ctx context.Context, userID string) ([]*ProfileData, error) {
	rows, err := r.client.LearningProfile.Query().
		Where(learningprofile.UserID(userID)).
		Order(ent.Desc(learningprofile.FieldLastUpdated)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	out := make([]*ProfileData, len(rows))
	for i, row := range rows {
		out[i] = entProfileToData(row)
	}
	return out, nil
}

func entProfileToData(row *ent.LearningProfile) *ProfileData {
	return &ProfileData{
		UserID:        row.UserID,
		Topic:         row.Topic,
		WeakAreas:     row.WeakAreas,
		Strengths:     row.Strengths,
		ProgressScore: row.ProgressScore,
		LastUpdated:   row.LastUpdated,
	}
}
