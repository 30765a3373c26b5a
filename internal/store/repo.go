package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// RoundEventData captures one scored round.
type RoundEventData struct {
	SessionID      string
	Round          int
	ExampleID      int
	Title          string
	Difficulty     string
	Concept        string
	Synthesized    bool
	ItemCount      int
	ExactMatches   int
	Score          int
	MaxScore       int
	Perfect        bool
	Streak         int
	SubmittedOrder []int
	ActualOrder    []int
	DurationMs     int64
}

// RoundRecord is a stored round event.
type RoundRecord struct {
	Sequence  int64
	Timestamp time.Time
	RoundEventData
}

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	SessionID        string
	Action           string // start, reset or end
	RoundsPlayed     int
	TotalScore       int
	MaxPossibleScore int
	BestStreak       int
	DurationSecs     int
}

// SessionRecord summarizes one session from its lifecycle events.
type SessionRecord struct {
	SessionID        string
	StartedAt        time.Time
	EndedAt          time.Time // zero while the session has no closing event
	EndAction        string    // reset, end, or "" while open
	RoundsPlayed     int
	TotalScore       int
	MaxPossibleScore int
	BestStreak       int
}

// ConceptStat aggregates rounds for one concept.
type ConceptStat struct {
	Concept      string
	Rounds       int
	Perfect      int
	ExactMatches int
	Items        int
}

// Accuracy is the fraction of items placed at their actual rank.
func (c ConceptStat) Accuracy() float64 {
	if c.Items == 0 {
		return 0
	}
	return float64(c.ExactMatches) / float64(c.Items)
}

// DifficultyStat aggregates rounds for one difficulty.
type DifficultyStat struct {
	Difficulty string
	Rounds     int
	Perfect    int
	Score      int
	MaxScore   int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event.
type LLMRequestRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls by purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls by model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendRoundEvent records a scored round.
	AppendRoundEvent(ctx context.Context, data RoundEventData) error

	// AppendSessionEvent records a session lifecycle transition.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentRounds returns round events, newest first.
	RecentRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error)

	// ConceptStats aggregates all rounds by concept, sorted by concept.
	ConceptStats(ctx context.Context) ([]ConceptStat, error)

	// DifficultyStats aggregates all rounds by difficulty, sorted by name.
	DifficultyStats(ctx context.Context) ([]DifficultyStat, error)

	// Sessions returns session summaries, newest first.
	Sessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// GetLLMEvent returns one LLM request event, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestRecord, error)

	// LLMUsageByPurpose aggregates LLM calls by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates LLM calls by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
