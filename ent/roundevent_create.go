// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/feedrank/feedrank/ent/roundevent"
)

// RoundEventCreate is the builder for creating a RoundEvent entity.
type RoundEventCreate struct {
	config
	mutation *RoundEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RoundEventCreate) SetSequence(v int64) *RoundEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RoundEventCreate) SetTimestamp(v time.Time) *RoundEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableTimestamp(v *time.Time) *RoundEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RoundEventCreate) SetSessionID(v string) *RoundEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRound sets the "round" field.
func (_c *RoundEventCreate) SetRound(v int) *RoundEventCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetExampleID sets the "example_id" field.
func (_c *RoundEventCreate) SetExampleID(v int) *RoundEventCreate {
	_c.mutation.SetExampleID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RoundEventCreate) SetTitle(v string) *RoundEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableTitle(v *string) *RoundEventCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *RoundEventCreate) SetDifficulty(v string) *RoundEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *RoundEventCreate) SetConcept(v string) *RoundEventCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetSynthesized sets the "synthesized" field.
func (_c *RoundEventCreate) SetSynthesized(v bool) *RoundEventCreate {
	_c.mutation.SetSynthesized(v)
	return _c
}

// SetNillableSynthesized sets the "synthesized" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableSynthesized(v *bool) *RoundEventCreate {
	if v != nil {
		_c.SetSynthesized(*v)
	}
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *RoundEventCreate) SetItemCount(v int) *RoundEventCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// SetExactMatches sets the "exact_matches" field.
func (_c *RoundEventCreate) SetExactMatches(v int) *RoundEventCreate {
	_c.mutation.SetExactMatches(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *RoundEventCreate) SetScore(v int) *RoundEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *RoundEventCreate) SetMaxScore(v int) *RoundEventCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetPerfect sets the "perfect" field.
func (_c *RoundEventCreate) SetPerfect(v bool) *RoundEventCreate {
	_c.mutation.SetPerfect(v)
	return _c
}

// SetStreak sets the "streak" field.
func (_c *RoundEventCreate) SetStreak(v int) *RoundEventCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableStreak(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetSubmittedOrder sets the "submitted_order" field.
func (_c *RoundEventCreate) SetSubmittedOrder(v []int) *RoundEventCreate {
	_c.mutation.SetSubmittedOrder(v)
	return _c
}

// SetActualOrder sets the "actual_order" field.
func (_c *RoundEventCreate) SetActualOrder(v []int) *RoundEventCreate {
	_c.mutation.SetActualOrder(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *RoundEventCreate) SetDurationMs(v int64) *RoundEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableDurationMs(v *int64) *RoundEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the RoundEventMutation object of the builder.
func (_c *RoundEventCreate) Mutation() *RoundEventMutation {
	return _c.mutation
}

// Save creates the RoundEvent in the database.
func (_c *RoundEventCreate) Save(ctx context.Context) (*RoundEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoundEventCreate) SaveX(ctx context.Context) *RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoundEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := roundevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := roundevent.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Synthesized(); !ok {
		v := roundevent.DefaultSynthesized
		_c.mutation.SetSynthesized(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := roundevent.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := roundevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoundEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RoundEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RoundEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RoundEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := roundevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Round(); !ok {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required field "RoundEvent.round"`)}
	}
	if v, ok := _c.mutation.Round(); ok {
		if err := roundevent.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExampleID(); !ok {
		return &ValidationError{Name: "example_id", err: errors.New(`ent: missing required field "RoundEvent.example_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "RoundEvent.title"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "RoundEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := roundevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "RoundEvent.concept"`)}
	}
	if v, ok := _c.mutation.Concept(); ok {
		if err := roundevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.concept": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Synthesized(); !ok {
		return &ValidationError{Name: "synthesized", err: errors.New(`ent: missing required field "RoundEvent.synthesized"`)}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "RoundEvent.item_count"`)}
	}
	if _, ok := _c.mutation.ExactMatches(); !ok {
		return &ValidationError{Name: "exact_matches", err: errors.New(`ent: missing required field "RoundEvent.exact_matches"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "RoundEvent.score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "RoundEvent.max_score"`)}
	}
	if _, ok := _c.mutation.Perfect(); !ok {
		return &ValidationError{Name: "perfect", err: errors.New(`ent: missing required field "RoundEvent.perfect"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "RoundEvent.streak"`)}
	}
	if _, ok := _c.mutation.SubmittedOrder(); !ok {
		return &ValidationError{Name: "submitted_order", err: errors.New(`ent: missing required field "RoundEvent.submitted_order"`)}
	}
	if _, ok := _c.mutation.ActualOrder(); !ok {
		return &ValidationError{Name: "actual_order", err: errors.New(`ent: missing required field "RoundEvent.actual_order"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "RoundEvent.duration_ms"`)}
	}
	return nil
}

func (_c *RoundEventCreate) sqlSave(ctx context.Context) (*RoundEvent, error) {
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

func (_c *RoundEventCreate) createSpec() (*RoundEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RoundEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roundevent.Table, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(roundevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(roundevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(roundevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(roundevent.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.ExampleID(); ok {
		_spec.SetField(roundevent.FieldExampleID, field.TypeInt, value)
		_node.ExampleID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(roundevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(roundevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(roundevent.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.Synthesized(); ok {
		_spec.SetField(roundevent.FieldSynthesized, field.TypeBool, value)
		_node.Synthesized = value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(roundevent.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	if value, ok := _c.mutation.ExactMatches(); ok {
		_spec.SetField(roundevent.FieldExactMatches, field.TypeInt, value)
		_node.ExactMatches = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(roundevent.FieldMaxScore, field.TypeInt, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.Perfect(); ok {
		_spec.SetField(roundevent.FieldPerfect, field.TypeBool, value)
		_node.Perfect = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(roundevent.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.SubmittedOrder(); ok {
		_spec.SetField(roundevent.FieldSubmittedOrder, field.TypeJSON, value)
		_node.SubmittedOrder = value
	}
	if value, ok := _c.mutation.ActualOrder(); ok {
		_spec.SetField(roundevent.FieldActualOrder, field.TypeJSON, value)
		_node.ActualOrder = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(roundevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// RoundEventCreateBulk is the builder for creating many RoundEvent entities in bulk.
type RoundEventCreateBulk struct {
	config
	err      error
	builders []*RoundEventCreate
}

// Save creates the RoundEvent entities in the database.
func (_c *RoundEventCreateBulk) Save(ctx context.Context) ([]*RoundEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoundEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoundEventMutation)
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
func (_c *RoundEventCreateBulk) SaveX(ctx context.Context) []*RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
