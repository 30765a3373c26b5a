// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/feedrank/feedrank/ent/predicate"
	"github.com/feedrank/feedrank/ent/roundevent"
)

// RoundEventUpdate is the builder for updating RoundEvent entities.
type RoundEventUpdate struct {
	config
	hooks    []Hook
	mutation *RoundEventMutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdate) Where(ps ...predicate.RoundEvent) *RoundEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RoundEventUpdate) SetSessionID(v string) *RoundEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableSessionID(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *RoundEventUpdate) SetRound(v int) *RoundEventUpdate {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableRound(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *RoundEventUpdate) AddRound(v int) *RoundEventUpdate {
	_u.mutation.AddRound(v)
	return _u
}

// SetExampleID sets the "example_id" field.
func (_u *RoundEventUpdate) SetExampleID(v int) *RoundEventUpdate {
	_u.mutation.ResetExampleID()
	_u.mutation.SetExampleID(v)
	return _u
}

// SetNillableExampleID sets the "example_id" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableExampleID(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetExampleID(*v)
	}
	return _u
}

// AddExampleID adds value to the "example_id" field.
func (_u *RoundEventUpdate) AddExampleID(v int) *RoundEventUpdate {
	_u.mutation.AddExampleID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RoundEventUpdate) SetTitle(v string) *RoundEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableTitle(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *RoundEventUpdate) SetDifficulty(v string) *RoundEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableDifficulty(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *RoundEventUpdate) SetConcept(v string) *RoundEventUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableConcept(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetSynthesized sets the "synthesized" field.
func (_u *RoundEventUpdate) SetSynthesized(v bool) *RoundEventUpdate {
	_u.mutation.SetSynthesized(v)
	return _u
}

// SetNillableSynthesized sets the "synthesized" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableSynthesized(v *bool) *RoundEventUpdate {
	if v != nil {
		_u.SetSynthesized(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *RoundEventUpdate) SetItemCount(v int) *RoundEventUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableItemCount(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *RoundEventUpdate) AddItemCount(v int) *RoundEventUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetExactMatches sets the "exact_matches" field.
func (_u *RoundEventUpdate) SetExactMatches(v int) *RoundEventUpdate {
	_u.mutation.ResetExactMatches()
	_u.mutation.SetExactMatches(v)
	return _u
}

// SetNillableExactMatches sets the "exact_matches" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableExactMatches(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetExactMatches(*v)
	}
	return _u
}

// AddExactMatches adds value to the "exact_matches" field.
func (_u *RoundEventUpdate) AddExactMatches(v int) *RoundEventUpdate {
	_u.mutation.AddExactMatches(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RoundEventUpdate) SetScore(v int) *RoundEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableScore(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RoundEventUpdate) AddScore(v int) *RoundEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *RoundEventUpdate) SetMaxScore(v int) *RoundEventUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableMaxScore(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *RoundEventUpdate) AddMaxScore(v int) *RoundEventUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetPerfect sets the "perfect" field.
func (_u *RoundEventUpdate) SetPerfect(v bool) *RoundEventUpdate {
	_u.mutation.SetPerfect(v)
	return _u
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillablePerfect(v *bool) *RoundEventUpdate {
	if v != nil {
		_u.SetPerfect(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *RoundEventUpdate) SetStreak(v int) *RoundEventUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableStreak(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *RoundEventUpdate) AddStreak(v int) *RoundEventUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetSubmittedOrder sets the "submitted_order" field.
func (_u *RoundEventUpdate) SetSubmittedOrder(v []int) *RoundEventUpdate {
	_u.mutation.SetSubmittedOrder(v)
	return _u
}

// AppendSubmittedOrder appends value to the "submitted_order" field.
func (_u *RoundEventUpdate) AppendSubmittedOrder(v []int) *RoundEventUpdate {
	_u.mutation.AppendSubmittedOrder(v)
	return _u
}

// SetActualOrder sets the "actual_order" field.
func (_u *RoundEventUpdate) SetActualOrder(v []int) *RoundEventUpdate {
	_u.mutation.SetActualOrder(v)
	return _u
}

// AppendActualOrder appends value to the "actual_order" field.
func (_u *RoundEventUpdate) AppendActualOrder(v []int) *RoundEventUpdate {
	_u.mutation.AppendActualOrder(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RoundEventUpdate) SetDurationMs(v int64) *RoundEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableDurationMs(v *int64) *RoundEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RoundEventUpdate) AddDurationMs(v int64) *RoundEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdate) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoundEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoundEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := roundevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Round(); ok {
		if err := roundevent.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := roundevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := roundevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.concept": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(roundevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(roundevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(roundevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExampleID(); ok {
		_spec.SetField(roundevent.FieldExampleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExampleID(); ok {
		_spec.AddField(roundevent.FieldExampleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(roundevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(roundevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(roundevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.Synthesized(); ok {
		_spec.SetField(roundevent.FieldSynthesized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(roundevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(roundevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExactMatches(); ok {
		_spec.SetField(roundevent.FieldExactMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExactMatches(); ok {
		_spec.AddField(roundevent.FieldExactMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(roundevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(roundevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Perfect(); ok {
		_spec.SetField(roundevent.FieldPerfect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(roundevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(roundevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmittedOrder(); ok {
		_spec.SetField(roundevent.FieldSubmittedOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubmittedOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roundevent.FieldSubmittedOrder, value)
		})
	}
	if value, ok := _u.mutation.ActualOrder(); ok {
		_spec.SetField(roundevent.FieldActualOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActualOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roundevent.FieldActualOrder, value)
		})
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(roundevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(roundevent.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoundEventUpdateOne is the builder for updating a single RoundEvent entity.
type RoundEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoundEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *RoundEventUpdateOne) SetSessionID(v string) *RoundEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableSessionID(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *RoundEventUpdateOne) SetRound(v int) *RoundEventUpdateOne {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableRound(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *RoundEventUpdateOne) AddRound(v int) *RoundEventUpdateOne {
	_u.mutation.AddRound(v)
	return _u
}

// SetExampleID sets the "example_id" field.
func (_u *RoundEventUpdateOne) SetExampleID(v int) *RoundEventUpdateOne {
	_u.mutation.ResetExampleID()
	_u.mutation.SetExampleID(v)
	return _u
}

// SetNillableExampleID sets the "example_id" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableExampleID(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetExampleID(*v)
	}
	return _u
}

// AddExampleID adds value to the "example_id" field.
func (_u *RoundEventUpdateOne) AddExampleID(v int) *RoundEventUpdateOne {
	_u.mutation.AddExampleID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RoundEventUpdateOne) SetTitle(v string) *RoundEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableTitle(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *RoundEventUpdateOne) SetDifficulty(v string) *RoundEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableDifficulty(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *RoundEventUpdateOne) SetConcept(v string) *RoundEventUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableConcept(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetSynthesized sets the "synthesized" field.
func (_u *RoundEventUpdateOne) SetSynthesized(v bool) *RoundEventUpdateOne {
	_u.mutation.SetSynthesized(v)
	return _u
}

// SetNillableSynthesized sets the "synthesized" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableSynthesized(v *bool) *RoundEventUpdateOne {
	if v != nil {
		_u.SetSynthesized(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *RoundEventUpdateOne) SetItemCount(v int) *RoundEventUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableItemCount(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *RoundEventUpdateOne) AddItemCount(v int) *RoundEventUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetExactMatches sets the "exact_matches" field.
func (_u *RoundEventUpdateOne) SetExactMatches(v int) *RoundEventUpdateOne {
	_u.mutation.ResetExactMatches()
	_u.mutation.SetExactMatches(v)
	return _u
}

// SetNillableExactMatches sets the "exact_matches" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableExactMatches(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetExactMatches(*v)
	}
	return _u
}

// AddExactMatches adds value to the "exact_matches" field.
func (_u *RoundEventUpdateOne) AddExactMatches(v int) *RoundEventUpdateOne {
	_u.mutation.AddExactMatches(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RoundEventUpdateOne) SetScore(v int) *RoundEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableScore(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RoundEventUpdateOne) AddScore(v int) *RoundEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *RoundEventUpdateOne) SetMaxScore(v int) *RoundEventUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableMaxScore(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *RoundEventUpdateOne) AddMaxScore(v int) *RoundEventUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetPerfect sets the "perfect" field.
func (_u *RoundEventUpdateOne) SetPerfect(v bool) *RoundEventUpdateOne {
	_u.mutation.SetPerfect(v)
	return _u
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillablePerfect(v *bool) *RoundEventUpdateOne {
	if v != nil {
		_u.SetPerfect(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *RoundEventUpdateOne) SetStreak(v int) *RoundEventUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableStreak(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *RoundEventUpdateOne) AddStreak(v int) *RoundEventUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetSubmittedOrder sets the "submitted_order" field.
func (_u *RoundEventUpdateOne) SetSubmittedOrder(v []int) *RoundEventUpdateOne {
	_u.mutation.SetSubmittedOrder(v)
	return _u
}

// AppendSubmittedOrder appends value to the "submitted_order" field.
func (_u *RoundEventUpdateOne) AppendSubmittedOrder(v []int) *RoundEventUpdateOne {
	_u.mutation.AppendSubmittedOrder(v)
	return _u
}

// SetActualOrder sets the "actual_order" field.
func (_u *RoundEventUpdateOne) SetActualOrder(v []int) *RoundEventUpdateOne {
	_u.mutation.SetActualOrder(v)
	return _u
}

// AppendActualOrder appends value to the "actual_order" field.
func (_u *RoundEventUpdateOne) AppendActualOrder(v []int) *RoundEventUpdateOne {
	_u.mutation.AppendActualOrder(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RoundEventUpdateOne) SetDurationMs(v int64) *RoundEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableDurationMs(v *int64) *RoundEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RoundEventUpdateOne) AddDurationMs(v int64) *RoundEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdateOne) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdateOne) Where(ps ...predicate.RoundEvent) *RoundEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoundEventUpdateOne) Select(field string, fields ...string) *RoundEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoundEvent entity.
func (_u *RoundEventUpdateOne) Save(ctx context.Context) (*RoundEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdateOne) SaveX(ctx context.Context) *RoundEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoundEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := roundevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Round(); ok {
		if err := roundevent.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := roundevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := roundevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.concept": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdateOne) sqlSave(ctx context.Context) (_node *RoundEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoundEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roundevent.FieldID)
		for _, f := range fields {
			if !roundevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roundevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(roundevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(roundevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(roundevent.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExampleID(); ok {
		_spec.SetField(roundevent.FieldExampleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExampleID(); ok {
		_spec.AddField(roundevent.FieldExampleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(roundevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(roundevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(roundevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.Synthesized(); ok {
		_spec.SetField(roundevent.FieldSynthesized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(roundevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(roundevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExactMatches(); ok {
		_spec.SetField(roundevent.FieldExactMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExactMatches(); ok {
		_spec.AddField(roundevent.FieldExactMatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(roundevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(roundevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Perfect(); ok {
		_spec.SetField(roundevent.FieldPerfect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(roundevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(roundevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmittedOrder(); ok {
		_spec.SetField(roundevent.FieldSubmittedOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubmittedOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roundevent.FieldSubmittedOrder, value)
		})
	}
	if value, ok := _u.mutation.ActualOrder(); ok {
		_spec.SetField(roundevent.FieldActualOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActualOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roundevent.FieldActualOrder, value)
		})
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(roundevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(roundevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &RoundEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
