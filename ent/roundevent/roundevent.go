// Code generated by ent, DO NOT EDIT.

package roundevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the roundevent type in the database.
	Label = "round_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRound holds the string denoting the round field in the database.
	FieldRound = "round"
	// FieldExampleID holds the string denoting the example_id field in the database.
	FieldExampleID = "example_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldSynthesized holds the string denoting the synthesized field in the database.
	FieldSynthesized = "synthesized"
	// FieldItemCount holds the string denoting the item_count field in the database.
	FieldItemCount = "item_count"
	// FieldExactMatches holds the string denoting the exact_matches field in the database.
	FieldExactMatches = "exact_matches"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldMaxScore holds the string denoting the max_score field in the database.
	FieldMaxScore = "max_score"
	// FieldPerfect holds the string denoting the perfect field in the database.
	FieldPerfect = "perfect"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldSubmittedOrder holds the string denoting the submitted_order field in the database.
	FieldSubmittedOrder = "submitted_order"
	// FieldActualOrder holds the string denoting the actual_order field in the database.
	FieldActualOrder = "actual_order"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// Table holds the table name of the roundevent in the database.
	Table = "round_events"
)

// Columns holds all SQL columns for roundevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldRound,
	FieldExampleID,
	FieldTitle,
	FieldDifficulty,
	FieldConcept,
	FieldSynthesized,
	FieldItemCount,
	FieldExactMatches,
	FieldScore,
	FieldMaxScore,
	FieldPerfect,
	FieldStreak,
	FieldSubmittedOrder,
	FieldActualOrder,
	FieldDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// RoundValidator is a validator for the "round" field. It is called by the builders before save.
	RoundValidator func(int) error
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	ConceptValidator func(string) error
	// DefaultSynthesized holds the default value on creation for the "synthesized" field.
	DefaultSynthesized bool
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
)

// OrderOption defines the ordering options for the RoundEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByRound orders the results by the round field.
func ByRound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRound, opts...).ToFunc()
}

// ByExampleID orders the results by the example_id field.
func ByExampleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExampleID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByConcept orders the results by the concept field.
func ByConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcept, opts...).ToFunc()
}

// BySynthesized orders the results by the synthesized field.
func BySynthesized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynthesized, opts...).ToFunc()
}

// ByItemCount orders the results by the item_count field.
func ByItemCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemCount, opts...).ToFunc()
}

// ByExactMatches orders the results by the exact_matches field.
func ByExactMatches(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExactMatches, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByMaxScore orders the results by the max_score field.
func ByMaxScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxScore, opts...).ToFunc()
}

// ByPerfect orders the results by the perfect field.
func ByPerfect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerfect, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}
