// Code generated by ent, DO NOT EDIT.

package roundevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/feedrank/feedrank/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSessionID, v))
}

// Round applies equality check predicate on the "round" field. It's identical to RoundEQ.
func Round(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRound, v))
}

// ExampleID applies equality check predicate on the "example_id" field. It's identical to ExampleIDEQ.
func ExampleID(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldExampleID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTitle, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldConcept, v))
}

// Synthesized applies equality check predicate on the "synthesized" field. It's identical to SynthesizedEQ.
func Synthesized(v bool) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSynthesized, v))
}

// ItemCount applies equality check predicate on the "item_count" field. It's identical to ItemCountEQ.
func ItemCount(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldItemCount, v))
}

// ExactMatches applies equality check predicate on the "exact_matches" field. It's identical to ExactMatchesEQ.
func ExactMatches(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldExactMatches, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldScore, v))
}

// MaxScore applies equality check predicate on the "max_score" field. It's identical to MaxScoreEQ.
func MaxScore(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldMaxScore, v))
}

// Perfect applies equality check predicate on the "perfect" field. It's identical to PerfectEQ.
func Perfect(v bool) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldPerfect, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldStreak, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldDurationMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// RoundEQ applies the EQ predicate on the "round" field.
func RoundEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRound, v))
}

// RoundNEQ applies the NEQ predicate on the "round" field.
func RoundNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldRound, v))
}

// RoundIn applies the In predicate on the "round" field.
func RoundIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldRound, vs...))
}

// RoundNotIn applies the NotIn predicate on the "round" field.
func RoundNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldRound, vs...))
}

// RoundGT applies the GT predicate on the "round" field.
func RoundGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldRound, v))
}

// RoundGTE applies the GTE predicate on the "round" field.
func RoundGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldRound, v))
}

// RoundLT applies the LT predicate on the "round" field.
func RoundLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldRound, v))
}

// RoundLTE applies the LTE predicate on the "round" field.
func RoundLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldRound, v))
}

// ExampleIDEQ applies the EQ predicate on the "example_id" field.
func ExampleIDEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldExampleID, v))
}

// ExampleIDNEQ applies the NEQ predicate on the "example_id" field.
func ExampleIDNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldExampleID, v))
}

// ExampleIDIn applies the In predicate on the "example_id" field.
func ExampleIDIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldExampleID, vs...))
}

// ExampleIDNotIn applies the NotIn predicate on the "example_id" field.
func ExampleIDNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldExampleID, vs...))
}

// ExampleIDGT applies the GT predicate on the "example_id" field.
func ExampleIDGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldExampleID, v))
}

// ExampleIDGTE applies the GTE predicate on the "example_id" field.
func ExampleIDGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldExampleID, v))
}

// ExampleIDLT applies the LT predicate on the "example_id" field.
func ExampleIDLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldExampleID, v))
}

// ExampleIDLTE applies the LTE predicate on the "example_id" field.
func ExampleIDLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldExampleID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldTitle, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldConcept, v))
}

// SynthesizedEQ applies the EQ predicate on the "synthesized" field.
func SynthesizedEQ(v bool) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSynthesized, v))
}

// SynthesizedNEQ applies the NEQ predicate on the "synthesized" field.
func SynthesizedNEQ(v bool) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldSynthesized, v))
}

// ItemCountEQ applies the EQ predicate on the "item_count" field.
func ItemCountEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldItemCount, v))
}

// ItemCountNEQ applies the NEQ predicate on the "item_count" field.
func ItemCountNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldItemCount, v))
}

// ItemCountIn applies the In predicate on the "item_count" field.
func ItemCountIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldItemCount, vs...))
}

// ItemCountNotIn applies the NotIn predicate on the "item_count" field.
func ItemCountNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldItemCount, vs...))
}

// ItemCountGT applies the GT predicate on the "item_count" field.
func ItemCountGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldItemCount, v))
}

// ItemCountGTE applies the GTE predicate on the "item_count" field.
func ItemCountGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldItemCount, v))
}

// ItemCountLT applies the LT predicate on the "item_count" field.
func ItemCountLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldItemCount, v))
}

// ItemCountLTE applies the LTE predicate on the "item_count" field.
func ItemCountLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldItemCount, v))
}

// ExactMatchesEQ applies the EQ predicate on the "exact_matches" field.
func ExactMatchesEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldExactMatches, v))
}

// ExactMatchesNEQ applies the NEQ predicate on the "exact_matches" field.
func ExactMatchesNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldExactMatches, v))
}

// ExactMatchesIn applies the In predicate on the "exact_matches" field.
func ExactMatchesIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldExactMatches, vs...))
}

// ExactMatchesNotIn applies the NotIn predicate on the "exact_matches" field.
func ExactMatchesNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldExactMatches, vs...))
}

// ExactMatchesGT applies the GT predicate on the "exact_matches" field.
func ExactMatchesGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldExactMatches, v))
}

// ExactMatchesGTE applies the GTE predicate on the "exact_matches" field.
func ExactMatchesGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldExactMatches, v))
}

// ExactMatchesLT applies the LT predicate on the "exact_matches" field.
func ExactMatchesLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldExactMatches, v))
}

// ExactMatchesLTE applies the LTE predicate on the "exact_matches" field.
func ExactMatchesLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldExactMatches, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldScore, v))
}

// MaxScoreEQ applies the EQ predicate on the "max_score" field.
func MaxScoreEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldMaxScore, v))
}

// MaxScoreNEQ applies the NEQ predicate on the "max_score" field.
func MaxScoreNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldMaxScore, v))
}

// MaxScoreIn applies the In predicate on the "max_score" field.
func MaxScoreIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldMaxScore, vs...))
}

// MaxScoreNotIn applies the NotIn predicate on the "max_score" field.
func MaxScoreNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldMaxScore, vs...))
}

// MaxScoreGT applies the GT predicate on the "max_score" field.
func MaxScoreGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldMaxScore, v))
}

// MaxScoreGTE applies the GTE predicate on the "max_score" field.
func MaxScoreGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldMaxScore, v))
}

// MaxScoreLT applies the LT predicate on the "max_score" field.
func MaxScoreLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldMaxScore, v))
}

// MaxScoreLTE applies the LTE predicate on the "max_score" field.
func MaxScoreLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldMaxScore, v))
}

// PerfectEQ applies the EQ predicate on the "perfect" field.
func PerfectEQ(v bool) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldPerfect, v))
}

// PerfectNEQ applies the NEQ predicate on the "perfect" field.
func PerfectNEQ(v bool) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldPerfect, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldStreak, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.NotPredicates(p))
}
