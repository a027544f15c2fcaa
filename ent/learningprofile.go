// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studypal/ent/learningprofile"
)

// LearningProfile is the model entity for the LearningProfile schema.
type LearningProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// Quiz topic this profile tracks
	Topic string `json:"topic,omitempty"`
	// Deduplicated weak-area entries: composite question entries and bare concept tags
	WeakAreas []string `json:"weak_areas,omitempty"`
	// Deduplicated strength entries
	Strengths []string `json:"strengths,omitempty"`
	// Latest attempt's score, 0-100
	ProgressScore int `json:"progress_score,omitempty"`
	// When the profile was last reconciled
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningprofile.FieldWeakAreas, learningprofile.FieldStrengths:
			values[i] = new([]byte)
		case learningprofile.FieldID, learningprofile.FieldProgressScore:
			values[i] = new(sql.NullInt64)
		case learningprofile.FieldUserID, learningprofile.FieldTopic:
			values[i] = new(sql.NullString)
		case learningprofile.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningProfile fields.
func (_m *LearningProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learningprofile.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningprofile.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case learningprofile.FieldWeakAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakAreas); err != nil {
					return fmt.Errorf("unmarshal field weak_areas: %w", err)
				}
			}
		case learningprofile.FieldStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strengths); err != nil {
					return fmt.Errorf("unmarshal field strengths: %w", err)
				}
			}
		case learningprofile.FieldProgressScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_score", values[i])
			} else if value.Valid {
				_m.ProgressScore = int(value.Int64)
			}
		case learningprofile.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningProfile.
// This includes values selected through modifiers, order, etc.
func (_m *LearningProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningProfile.
// Note that you need to call LearningProfile.Unwrap() before calling this method if this LearningProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningProfile) Update() *LearningProfileUpdateOne {
	return NewLearningProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningProfile) Unwrap() *LearningProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningProfile) String() string {
	var builder strings.Builder
	builder.WriteString("LearningProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("weak_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakAreas))
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strengths))
	builder.WriteString(", ")
	builder.WriteString("progress_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressScore))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningProfiles is a parsable slice of LearningProfile.
type LearningProfiles []*LearningProfile
