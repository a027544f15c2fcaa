// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studypal/ent/learningprofile"
	"github.com/abhisek/studypal/ent/predicate"
)

// LearningProfileUpdate is the builder for updating LearningProfile entities.
type LearningProfileUpdate struct {
	config
	hooks    []Hook
	mutation *LearningProfileMutation
}

// Where appends a list predicates to the LearningProfileUpdate builder.
func (_u *LearningProfileUpdate) Where(ps ...predicate.LearningProfile) *LearningProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningProfileUpdate) SetUserID(v string) *LearningProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningProfileUpdate) SetNillableUserID(v *string) *LearningProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LearningProfileUpdate) SetTopic(v string) *LearningProfileUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LearningProfileUpdate) SetNillableTopic(v *string) *LearningProfileUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *LearningProfileUpdate) SetWeakAreas(v []string) *LearningProfileUpdate {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *LearningProfileUpdate) AppendWeakAreas(v []string) *LearningProfileUpdate {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (_u *LearningProfileUpdate) ClearWeakAreas() *LearningProfileUpdate {
	_u.mutation.ClearWeakAreas()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *LearningProfileUpdate) SetStrengths(v []string) *LearningProfileUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *LearningProfileUpdate) AppendStrengths(v []string) *LearningProfileUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *LearningProfileUpdate) ClearStrengths() *LearningProfileUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// SetProgressScore sets the "progress_score" field.
func (_u *LearningProfileUpdate) SetProgressScore(v int) *LearningProfileUpdate {
	_u.mutation.ResetProgressScore()
	_u.mutation.SetProgressScore(v)
	return _u
}

// SetNillableProgressScore sets the "progress_score" field if the given value is not nil.
func (_u *LearningProfileUpdate) SetNillableProgressScore(v *int) *LearningProfileUpdate {
	if v != nil {
		_u.SetProgressScore(*v)
	}
	return _u
}

// AddProgressScore adds value to the "progress_score" field.
func (_u *LearningProfileUpdate) AddProgressScore(v int) *LearningProfileUpdate {
	_u.mutation.AddProgressScore(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *LearningProfileUpdate) SetLastUpdated(v time.Time) *LearningProfileUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *LearningProfileUpdate) SetNillableLastUpdated(v *time.Time) *LearningProfileUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the LearningProfileMutation object of the builder.
func (_u *LearningProfileUpdate) Mutation() *LearningProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningProfileUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningProfile.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := learningprofile.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LearningProfile.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningprofile.Table, learningprofile.Columns, sqlgraph.NewFieldSpec(learningprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningprofile.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(learningprofile.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(learningprofile.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningprofile.FieldWeakAreas, value)
		})
	}
	if _u.mutation.WeakAreasCleared() {
		_spec.ClearField(learningprofile.FieldWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(learningprofile.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningprofile.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(learningprofile.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressScore(); ok {
		_spec.SetField(learningprofile.FieldProgressScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressScore(); ok {
		_spec.AddField(learningprofile.FieldProgressScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(learningprofile.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningProfileUpdateOne is the builder for updating a single LearningProfile entity.
type LearningProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningProfileMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearningProfileUpdateOne) SetUserID(v string) *LearningProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningProfileUpdateOne) SetNillableUserID(v *string) *LearningProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LearningProfileUpdateOne) SetTopic(v string) *LearningProfileUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LearningProfileUpdateOne) SetNillableTopic(v *string) *LearningProfileUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *LearningProfileUpdateOne) SetWeakAreas(v []string) *LearningProfileUpdateOne {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *LearningProfileUpdateOne) AppendWeakAreas(v []string) *LearningProfileUpdateOne {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (_u *LearningProfileUpdateOne) ClearWeakAreas() *LearningProfileUpdateOne {
	_u.mutation.ClearWeakAreas()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *LearningProfileUpdateOne) SetStrengths(v []string) *LearningProfileUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *LearningProfileUpdateOne) AppendStrengths(v []string) *LearningProfileUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *LearningProfileUpdateOne) ClearStrengths() *LearningProfileUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// SetProgressScore sets the "progress_score" field.
func (_u *LearningProfileUpdateOne) SetProgressScore(v int) *LearningProfileUpdateOne {
	_u.mutation.ResetProgressScore()
	_u.mutation.SetProgressScore(v)
	return _u
}

// SetNillableProgressScore sets the "progress_score" field if the given value is not nil.
func (_u *LearningProfileUpdateOne) SetNillableProgressScore(v *int) *LearningProfileUpdateOne {
	if v != nil {
		_u.SetProgressScore(*v)
	}
	return _u
}

// AddProgressScore adds value to the "progress_score" field.
func (_u *LearningProfileUpdateOne) AddProgressScore(v int) *LearningProfileUpdateOne {
	_u.mutation.AddProgressScore(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *LearningProfileUpdateOne) SetLastUpdated(v time.Time) *LearningProfileUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *LearningProfileUpdateOne) SetNillableLastUpdated(v *time.Time) *LearningProfileUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the LearningProfileMutation object of the builder.
func (_u *LearningProfileUpdateOne) Mutation() *LearningProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningProfileUpdate builder.
func (_u *LearningProfileUpdateOne) Where(ps ...predicate.LearningProfile) *LearningProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningProfileUpdateOne) Select(field string, fields ...string) *LearningProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningProfile entity.
func (_u *LearningProfileUpdateOne) Save(ctx context.Context) (*LearningProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningProfileUpdateOne) SaveX(ctx context.Context) *LearningProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningProfileUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningProfile.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := learningprofile.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LearningProfile.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningProfileUpdateOne) sqlSave(ctx context.Context) (_node *LearningProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningprofile.Table, learningprofile.Columns, sqlgraph.NewFieldSpec(learningprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningprofile.FieldID)
		for _, f := range fields {
			if !learningprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningprofile.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(learningprofile.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(learningprofile.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningprofile.FieldWeakAreas, value)
		})
	}
	if _u.mutation.WeakAreasCleared() {
		_spec.ClearField(learningprofile.FieldWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(learningprofile.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningprofile.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(learningprofile.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressScore(); ok {
		_spec.SetField(learningprofile.FieldProgressScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressScore(); ok {
		_spec.AddField(learningprofile.FieldProgressScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(learningprofile.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &LearningProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
