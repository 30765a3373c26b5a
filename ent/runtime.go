// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/feedrank/feedrank/ent/llmrequestevent"
	"github.com/feedrank/feedrank/ent/roundevent"
	"github.com/feedrank/feedrank/ent/schema"
	"github.com/feedrank/feedrank/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	roundeventMixin := schema.RoundEvent{}.Mixin()
	roundeventMixinFields0 := roundeventMixin[0].Fields()
	_ = roundeventMixinFields0
	roundeventFields := schema.RoundEvent{}.Fields()
	_ = roundeventFields
	// roundeventDescTimestamp is the schema descriptor for timestamp field.
	roundeventDescTimestamp := roundeventMixinFields0[1].Descriptor()
	// roundevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	roundevent.DefaultTimestamp = roundeventDescTimestamp.Default.(func() time.Time)
	// roundeventDescSessionID is the schema descriptor for session_id field.
	roundeventDescSessionID := roundeventFields[0].Descriptor()
	// roundevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	roundevent.SessionIDValidator = roundeventDescSessionID.Validators[0].(func(string) error)
	// roundeventDescRound is the schema descriptor for round field.
	roundeventDescRound := roundeventFields[1].Descriptor()
	// roundevent.RoundValidator is a validator for the "round" field. It is called by the builders before save.
	roundevent.RoundValidator = roundeventDescRound.Validators[0].(func(int) error)
	// roundeventDescTitle is the schema descriptor for title field.
	roundeventDescTitle := roundeventFields[3].Descriptor()
	// roundevent.DefaultTitle holds the default value on creation for the title field.
	roundevent.DefaultTitle = roundeventDescTitle.Default.(string)
	// roundeventDescDifficulty is the schema descriptor for difficulty field.
	roundeventDescDifficulty := roundeventFields[4].Descriptor()
	// roundevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	roundevent.DifficultyValidator = roundeventDescDifficulty.Validators[0].(func(string) error)
	// roundeventDescConcept is the schema descriptor for concept field.
	roundeventDescConcept := roundeventFields[5].Descriptor()
	// roundevent.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	roundevent.ConceptValidator = roundeventDescConcept.Validators[0].(func(string) error)
	// roundeventDescSynthesized is the schema descriptor for synthesized field.
	roundeventDescSynthesized := roundeventFields[6].Descriptor()
	// roundevent.DefaultSynthesized holds the default value on creation for the synthesized field.
	roundevent.DefaultSynthesized = roundeventDescSynthesized.Default.(bool)
	// roundeventDescStreak is the schema descriptor for streak field.
	roundeventDescStreak := roundeventFields[12].Descriptor()
	// roundevent.DefaultStreak holds the default value on creation for the streak field.
	roundevent.DefaultStreak = roundeventDescStreak.Default.(int)
	// roundeventDescDurationMs is the schema descriptor for duration_ms field.
	roundeventDescDurationMs := roundeventFields[15].Descriptor()
	// roundevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	roundevent.DefaultDurationMs = roundeventDescDurationMs.Default.(int64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescRoundsPlayed is the schema descriptor for rounds_played field.
	sessioneventDescRoundsPlayed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultRoundsPlayed holds the default value on creation for the rounds_played field.
	sessionevent.DefaultRoundsPlayed = sessioneventDescRoundsPlayed.Default.(int)
	// sessioneventDescTotalScore is the schema descriptor for total_score field.
	sessioneventDescTotalScore := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTotalScore holds the default value on creation for the total_score field.
	sessionevent.DefaultTotalScore = sessioneventDescTotalScore.Default.(int)
	// sessioneventDescMaxPossibleScore is the schema descriptor for max_possible_score field.
	sessioneventDescMaxPossibleScore := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultMaxPossibleScore holds the default value on creation for the max_possible_score field.
	sessionevent.DefaultMaxPossibleScore = sessioneventDescMaxPossibleScore.Default.(int)
	// sessioneventDescBestStreak is the schema descriptor for best_streak field.
	sessioneventDescBestStreak := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultBestStreak holds the default value on creation for the best_streak field.
	sessionevent.DefaultBestStreak = sessioneventDescBestStreak.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
