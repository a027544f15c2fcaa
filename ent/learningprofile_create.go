// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studypal/ent/learningprofile"
)

// LearningProfileCreate is the builder for creating a LearningProfile entity.
type LearningProfileCreate struct {
	config
	mutation *LearningProfileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearningProfileCreate) SetUserID(v string) *LearningProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *LearningProfileCreate) SetTopic(v string) *LearningProfileCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetWeakAreas sets the "weak_areas" field.
func (_c *LearningProfileCreate) SetWeakAreas(v []string) *LearningProfileCreate {
	_c.mutation.SetWeakAreas(v)
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *LearningProfileCreate) SetStrengths(v []string) *LearningProfileCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetProgressScore sets the "progress_score" field.
func (_c *LearningProfileCreate) SetProgressScore(v int) *LearningProfileCreate {
	_c.mutation.SetProgressScore(v)
	return _c
}

// SetNillableProgressScore sets the "progress_score" field if the given value is not nil.
func (_c *LearningProfileCreate) SetNillableProgressScore(v *int) *LearningProfileCreate {
	if v != nil {
		_c.SetProgressScore(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *LearningProfileCreate) SetLastUpdated(v time.Time) *LearningProfileCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *LearningProfileCreate) SetNillableLastUpdated(v *time.Time) *LearningProfileCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the LearningProfileMutation object of the builder.
func (_c *LearningProfileCreate) Mutation() *LearningProfileMutation {
	return _c.mutation
}

// Save creates the LearningProfile in the database.
func (_c *LearningProfileCreate) Save(ctx context.Context) (*LearningProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningProfileCreate) SaveX(ctx context.Context) *LearningProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningProfileCreate) defaults() {
	if _, ok := _c.mutation.ProgressScore(); !ok {
		v := learningprofile.DefaultProgressScore
		_c.mutation.SetProgressScore(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := learningprofile.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningProfile.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningProfile.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "LearningProfile.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := learningprofile.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LearningProfile.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProgressScore(); !ok {
		return &ValidationError{Name: "progress_score", err: errors.New(`ent: missing required field "LearningProfile.progress_score"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "LearningProfile.last_updated"`)}
	}
	return nil
}

func (_c *LearningProfileCreate) sqlSave(ctx context.Context) (*LearningProfile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningProfileCreate) createSpec() (*LearningProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningprofile.Table, sqlgraph.NewFieldSpec(learningprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningprofile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(learningprofile.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.WeakAreas(); ok {
		_spec.SetField(learningprofile.FieldWeakAreas, field.TypeJSON, value)
		_node.WeakAreas = value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(learningprofile.FieldStrengths, field.TypeJSON, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.ProgressScore(); ok {
		_spec.SetField(learningprofile.FieldProgressScore, field.TypeInt, value)
		_node.ProgressScore = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(learningprofile.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// LearningProfileCreateBulk is the builder for creating many LearningProfile entities in bulk.
type LearningProfileCreateBulk struct {
	config
	err      error
	builders []*LearningProfileCreate
}

// Save creates the LearningProfile entities in the database.
func (_c *LearningProfileCreateBulk) Save(ctx context.Context) ([]*LearningProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearningProfileCreateBulk) SaveX(ctx context.Context) []*LearningProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
