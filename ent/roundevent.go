// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/feedrank/feedrank/ent/roundevent"
)

// RoundEvent is the model entity for the RoundEvent schema.
type RoundEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the session the round belongs to
	SessionID string `json:"session_id,omitempty"`
	// 1-based round number within the session
	Round int `json:"round,omitempty"`
	// Curated or synthesized example set id
	ExampleID int `json:"example_id,omitempty"`
	// Example set title
	Title string `json:"title,omitempty"`
	// beginner, intermediate or advanced
	Difficulty string `json:"difficulty,omitempty"`
	// sample_size, perfect_scores, similar_ratios or high_volume
	Concept string `json:"concept,omitempty"`
	// Whether the set was generated rather than curated
	Synthesized bool `json:"synthesized,omitempty"`
	// Number of items ranked
	ItemCount int `json:"item_count,omitempty"`
	// Items placed at their actual rank
	ExactMatches int `json:"exact_matches,omitempty"`
	// Weighted score
	Score int `json:"score,omitempty"`
	// Maximum weighted score
	MaxScore int `json:"max_score,omitempty"`
	// Every item placed at its actual rank
	Perfect bool `json:"perfect,omitempty"`
	// Perfect-round streak after this round
	Streak int `json:"streak,omitempty"`
	// Item ids in the learner's order
	SubmittedOrder []int `json:"submitted_order,omitempty"`
	// Item ids in Wilson order
	ActualOrder []int `json:"actual_order,omitempty"`
	// Time from round start to submission
	DurationMs   int64 `json:"duration_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoundEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roundevent.FieldSubmittedOrder, roundevent.FieldActualOrder:
			values[i] = new([]byte)
		case roundevent.FieldSynthesized, roundevent.FieldPerfect:
			values[i] = new(sql.NullBool)
		case roundevent.FieldID, roundevent.FieldSequence, roundevent.FieldRound, roundevent.FieldExampleID, roundevent.FieldItemCount, roundevent.FieldExactMatches, roundevent.FieldScore, roundevent.FieldMaxScore, roundevent.FieldStreak, roundevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case roundevent.FieldSessionID, roundevent.FieldTitle, roundevent.FieldDifficulty, roundevent.FieldConcept:
			values[i] = new(sql.NullString)
		case roundevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoundEvent fields.
func (_m *RoundEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roundevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case roundevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case roundevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case roundevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case roundevent.FieldRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round", values[i])
			} else if value.Valid {
				_m.Round = int(value.Int64)
			}
		case roundevent.FieldExampleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field example_id", values[i])
			} else if value.Valid {
				_m.ExampleID = int(value.Int64)
			}
		case roundevent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case roundevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case roundevent.FieldConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept", values[i])
			} else if value.Valid {
				_m.Concept = value.String
			}
		case roundevent.FieldSynthesized:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field synthesized", values[i])
			} else if value.Valid {
				_m.Synthesized = value.Bool
			}
		case roundevent.FieldItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_count", values[i])
			} else if value.Valid {
				_m.ItemCount = int(value.Int64)
			}
		case roundevent.FieldExactMatches:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exact_matches", values[i])
			} else if value.Valid {
				_m.ExactMatches = int(value.Int64)
			}
		case roundevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case roundevent.FieldMaxScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_score", values[i])
			} else if value.Valid {
				_m.MaxScore = int(value.Int64)
			}
		case roundevent.FieldPerfect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field perfect", values[i])
			} else if value.Valid {
				_m.Perfect = value.Bool
			}
		case roundevent.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case roundevent.FieldSubmittedOrder:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_order", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubmittedOrder); err != nil {
					return fmt.Errorf("unmarshal field submitted_order: %w", err)
				}
			}
		case roundevent.FieldActualOrder:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field actual_order", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActualOrder); err != nil {
					return fmt.Errorf("unmarshal field actual_order: %w", err)
				}
			}
		case roundevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoundEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RoundEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RoundEvent.
// Note that you need to call RoundEvent.Unwrap() before calling this method if this RoundEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoundEvent) Update() *RoundEventUpdateOne {
	return NewRoundEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoundEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoundEvent) Unwrap() *RoundEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoundEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoundEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RoundEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("round=")
	builder.WriteString(fmt.Sprintf("%v", _m.Round))
	builder.WriteString(", ")
	builder.WriteString("example_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExampleID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("concept=")
	builder.WriteString(_m.Concept)
	builder.WriteString(", ")
	builder.WriteString("synthesized=")
	builder.WriteString(fmt.Sprintf("%v", _m.Synthesized))
	builder.WriteString(", ")
	builder.WriteString("item_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemCount))
	builder.WriteString(", ")
	builder.WriteString("exact_matches=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExactMatches))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("max_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxScore))
	builder.WriteString(", ")
	builder.WriteString("perfect=")
	builder.WriteString(fmt.Sprintf("%v", _m.Perfect))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("submitted_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmittedOrder))
	builder.WriteString(", ")
	builder.WriteString("actual_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActualOrder))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// RoundEvents is a parsable slice of RoundEvent.
type RoundEvents []*RoundEvent
