// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studypal/ent/usagecounter"
)

// UsageCounterCreate is the builder for creating a UsageCounter entity.
type UsageCounterCreate struct {
	config
	mutation *UsageCounterMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UsageCounterCreate) SetUserID(v string) *UsageCounterCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *UsageCounterCreate) SetAction(v string) *UsageCounterCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *UsageCounterCreate) SetCount(v int) *UsageCounterCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *UsageCounterCreate) SetNillableCount(v *int) *UsageCounterCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// Mutation returns the UsageCounterMutation object of the builder.
func (_c *UsageCounterCreate) Mutation() *UsageCounterMutation {
	return _c.mutation
}

// Save creates the UsageCounter in the database.
func (_c *UsageCounterCreate) Save(ctx context.Context) (*UsageCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageCounterCreate) SaveX(ctx context.Context) *UsageCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageCounterCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := usagecounter.DefaultCount
		_c.mutation.SetCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageCounterCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UsageCounter.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := usagecounter.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UsageCounter.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "UsageCounter.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := usagecounter.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "UsageCounter.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "UsageCounter.count"`)}
	}
	if v, ok := _c.mutation.Count(); ok {
		if err := usagecounter.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "UsageCounter.count": %w`, err)}
		}
	}
	return nil
}

func (_c *UsageCounterCreate) sqlSave(ctx context.Context) (*UsageCounter, error) {
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

func (_c *UsageCounterCreate) createSpec() (*UsageCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagecounter.Table, sqlgraph.NewFieldSpec(usagecounter.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usagecounter.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(usagecounter.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(usagecounter.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	return _node, _spec
}

// UsageCounterCreateBulk is the builder for creating many UsageCounter entities in bulk.
type UsageCounterCreateBulk struct {
	config
	err      error
	builders []*UsageCounterCreate
}

// Save creates the UsageCounter entities in the database.
func (_c *UsageCounterCreateBulk) Save(ctx context.Context) ([]*UsageCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageCounterMutation)
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
func (_c *UsageCounterCreateBulk) SaveX(ctx context.Context) []*UsageCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
