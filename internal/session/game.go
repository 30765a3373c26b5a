package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/progression"
	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/store"
	"github.com/feedrank/feedrank/internal/wilson"
)

var (
	// ErrNoActiveRound is returned when submitting without a started round.
	ErrNoActiveRound = errors.New("no active round")
	// ErrRoundAlreadyScored is returned when submitting twice for one round.
	ErrRoundAlreadyScored = errors.New("round already scored")
)

// Session lifecycle actions written to the event log.
const (
	ActionStart = "start"
	ActionReset = "reset"
	ActionEnd   = "end"
)

// Round is one served example set with its items annotated by Wilson score
// and actual rank. Items are in display order.
type Round struct {
	Number    int
	Set       catalog.ExampleSet
	Items     []ranking.ScoredItem
	StartedAt time.Time
	// Confidence is the level Items were ranked at.
	Confidence wilson.Confidence
}

func (r *Round) clone() *Round {
	c := *r
	c.Set.VoteRecords = append([]ranking.VoteRecord(nil), r.Set.VoteRecords...)
	c.Items = append([]ranking.ScoredItem(nil), r.Items...)
	return &c
}

// RoundOutcome is everything the results view needs after a submission.
type RoundOutcome struct {
	Round      *Round
	Result     ranking.ScoreResult
	Submitted  []ranking.ScoredItem // in the learner's order
	Actual     []ranking.ScoredItem // best to worst by Wilson score
	NaiveOrder []int
	KeyInsight string
	Session    GameSession

	// Milestone is the streak milestone reached by this round, or 0.
	Milestone int
}

// Option configures a Game.
type Option func(*Game)

// WithEventRepo logs round and session events to repo.
func WithEventRepo(repo store.EventRepo) Option {
	return func(g *Game) { g.events = repo }
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Game) { g.log = log }
}

// WithConfidence sets the Wilson confidence level used for ranking.
func WithConfidence(c wilson.Confidence) Option {
	return func(g *Game) { g.confidence = c }
}

// Game owns a GameSession and drives rounds through selection, ranking and
// scoring. All methods are safe for concurrent use; mutations are
// serialized so scoring one round never interleaves with starting the next.
type Game struct {
	mu         sync.Mutex
	session    GameSession
	selector   *progression.Selector
	scorer     ranking.Scorer
	confidence wilson.Confidence
	events     store.EventRepo
	log        logrus.FieldLogger

	round   *Round
	scored  bool
	started bool
}

// NewGame creates a Game with a fresh session.
func NewGame(selector *progression.Selector, scorer ranking.Scorer, opts ...Option) *Game {
	g := &Game{
		session:    New(),
		selector:   selector,
		scorer:     scorer,
		confidence: wilson.DefaultConfidence,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Snapshot returns a copy of the current session.
func (g *Game) Snapshot() GameSession {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Clone()
}

// CurrentRound returns a copy of the active round, or nil.
func (g *Game) CurrentRound() *Round {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.round == nil {
		return nil
	}
	return g.round.clone()
}

// StartRound selects the next example set from the session counters and
// ranks its items. An unscored active round is abandoned.
func (g *Game) StartRound(ctx context.Context) (*Round, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.started {
		g.started = true
		g.appendSession(ctx, ActionStart)
	}
	if g.round != nil && !g.scored {
		g.log.WithFields(g.fields()).WithField("example_id", g.round.Set.ID).Debug("abandoning unscored round")
	}

	set := g.selector.NextExample(g.session.RoundsPlayed, g.session.ConsecutiveCorrect, g.session.ConceptsLearned)
	items, err := ranking.Rank(set.VoteRecords, g.confidence)
	if err != nil {
		return nil, fmt.Errorf("rank example set %d: %w", set.ID, err)
	}

	g.session.Difficulty = set.Difficulty
	g.round = &Round{
		Number:     g.session.RoundsPlayed + 1,
		Set:        set,
		Items:      items,
		StartedAt:  time.Now(),
		Confidence: g.confidence,
	}
	g.scored = false

	g.log.WithFields(g.fields()).WithFields(logrus.Fields{
		"example_id":  set.ID,
		"difficulty":  set.Difficulty,
		"concept":     set.ConceptName(),
		"synthesized": set.Synthesized,
	}).Info("round started")

	return g.round.clone(), nil
}

// Submit scores the learner's order for the active round and updates the
// session. order lists item ids from best to worst.
func (g *Game) Submit(ctx context.Context, order []int) (RoundOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil {
		return RoundOutcome{}, ErrNoActiveRound
	}
	if g.scored {
		return RoundOutcome{}, ErrRoundAlreadyScored
	}

	submitted, err := ranking.Arrange(g.round.Items, order)
	if err != nil {
		return RoundOutcome{}, err
	}
	result, err := g.scorer.Score(submitted)
	if err != nil {
		return RoundOutcome{}, err
	}

	n := len(g.round.Items)
	g.session = RecordRound(g.session, result, n, g.round.Set.ConceptName())
	g.scored = true

	out := RoundOutcome{
		Round:      g.round.clone(),
		Result:     result,
		Submitted:  submitted,
		Actual:     ranking.ByActualRank(g.round.Items),
		NaiveOrder: ranking.NaiveOrder(g.round.Items),
		KeyInsight: g.round.Set.KeyInsight,
		Session:    g.session.Clone(),
	}
	if result.Perfect() && IsStreakMilestone(g.session.Streak) {
		out.Milestone = g.session.Streak
	}

	g.log.WithFields(g.fields()).WithFields(logrus.Fields{
		"example_id": g.round.Set.ID,
		"exact":      result.ExactMatches,
		"score":      result.TotalScore,
		"max_score":  result.MaxScore,
		"streak":     g.session.Streak,
	}).Info("round scored")

	g.appendRound(ctx, out, order)
	return out, nil
}

// Restart discards the session and starts a fresh one.
func (g *Game) Restart(ctx context.Context) GameSession {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		g.appendSession(ctx, ActionReset)
	}
	g.session = g.session.Reset()
	g.round = nil
	g.scored = false
	g.started = false

	g.log.WithFields(g.fields()).Info("session restarted")
	return g.session.Clone()
}

// Close records the end of the session if any round was started.
func (g *Game) Close(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		g.appendSession(ctx, ActionEnd)
		g.started = false
	}
}

func (g *Game) fields() logrus.Fields {
	return logrus.Fields{
		"session_id": g.session.ID,
		"round":      g.session.RoundsPlayed,
	}
}

// appendSession and appendRound write to the event log. Failures are
// logged and otherwise ignored.
func (g *Game) appendSession(ctx context.Context, action string) {
	if g.events == nil {
		return
	}
	err := g.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:        g.session.ID,
		Action:           action,
		RoundsPlayed:     g.session.RoundsPlayed,
		TotalScore:       g.session.TotalScore,
		MaxPossibleScore: g.session.MaxPossibleScore,
		BestStreak:       g.session.BestStreak,
		DurationSecs:     int(time.Since(g.session.StartedAt).Seconds()),
	})
	if err != nil {
		g.log.WithFields(g.fields()).WithError(err).Warn("failed to record session event")
	}
}

func (g *Game) appendRound(ctx context.Context, out RoundOutcome, order []int) {
	if g.events == nil {
		return
	}
	actual := make([]int, len(out.Actual))
	for i, it := range out.Actual {
		actual[i] = it.ID
	}
	set := out.Round.Set
	err := g.events.AppendRoundEvent(ctx, store.RoundEventData{
		SessionID:      g.session.ID,
		Round:          out.Round.Number,
		ExampleID:      set.ID,
		Title:          set.Title,
		Difficulty:     string(set.Difficulty),
		Concept:        set.ConceptName(),
		Synthesized:    set.Synthesized,
		ItemCount:      out.Result.ItemCount(),
		ExactMatches:   out.Result.ExactMatches,
		Score:          out.Result.TotalScore,
		MaxScore:       out.Result.MaxScore,
		Perfect:        out.Result.Perfect(),
		Streak:         out.Session.Streak,
		SubmittedOrder: append([]int(nil), order...),
		ActualOrder:    actual,
		DurationMs:     time.Since(out.Round.StartedAt).Milliseconds(),
	})
	if err != nil {
		g.log.WithFields(g.fields()).WithError(err).Warn("failed to record round event")
	}
}
