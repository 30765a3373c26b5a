package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/progression"
	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/store"
	"github.com/feedrank/feedrank/internal/wilson"
)

// fakeEvents records appended events. Methods not overridden panic through
// the nil embedded interface.
type fakeEvents struct {
	store.EventRepo

	mu       sync.Mutex
	rounds   []store.RoundEventData
	sessions []store.SessionEventData
	err      error
}

func (f *fakeEvents) AppendRoundEvent(_ context.Context, d store.RoundEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.rounds = append(f.rounds, d)
	return nil
}

func (f *fakeEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sessions = append(f.sessions, d)
	return nil
}

func (f *fakeEvents) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, s := range f.sessions {
		out = append(out, s.Action)
	}
	return out
}

func newTestGame(t *testing.T, seed uint64, opts ...Option) *Game {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed*31+7))
	cat := catalog.New(rng, catalog.DefaultSynthConfig())
	sel := progression.NewSelector(progression.DefaultPolicy(), cat, rng)
	logger, _ := logtest.NewNullLogger()
	opts = append([]Option{WithLogger(logger)}, opts...)
	return NewGame(sel, ranking.NewScorer(ranking.DefaultWeights()), opts...)
}

func correctOrder(r *Round) []int {
	var ids []int
	for _, it := range ranking.ByActualRank(r.Items) {
		ids = append(ids, it.ID)
	}
	return ids
}

func wrongOrder(r *Round) []int {
	ids := correctOrder(r)
	// Reversing three distinct ranks always misplaces the first and last.
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

func TestGame_SubmitWithoutRound(t *testing.T) {
	g := newTestGame(t, 1)
	_, err := g.Submit(context.Background(), []int{1, 2, 3})
	if !errors.Is(err, ErrNoActiveRound) {
		t.Fatalf("err = %v, want ErrNoActiveRound", err)
	}
}

func TestGame_FirstRoundIsBeginner(t *testing.T) {
	g := newTestGame(t, 2)
	r, err := g.StartRound(context.Background())
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if r.Number != 1 {
		t.Errorf("Number = %d, want 1", r.Number)
	}
	if r.Set.Difficulty != catalog.Beginner {
		t.Errorf("Difficulty = %s, want beginner", r.Set.Difficulty)
	}
	if len(r.Items) != 3 {
		t.Fatalf("%d items, want 3", len(r.Items))
	}
	for i, it := range r.Items {
		if it.ID != r.Set.VoteRecords[i].ID {
			t.Errorf("items not in display order: %v", r.Items)
		}
	}
}

func TestGame_RoundCarriesConfidence(t *testing.T) {
	for _, c := range []wilson.Confidence{wilson.Confidence95, wilson.Confidence90} {
		g := newTestGame(t, 3, WithConfidence(c))
		r, err := g.StartRound(context.Background())
		if err != nil {
			t.Fatalf("StartRound: %v", err)
		}
		if r.Confidence != c {
			t.Errorf("Confidence = %s, want %s", r.Confidence, c)
		}
	}
}

func TestGame_PerfectRound(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, 3)

	r, err := g.StartRound(ctx)
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	out, err := g.Submit(ctx, correctOrder(r))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if !out.Result.Perfect() {
		t.Errorf("expected perfect result, got %+v", out.Result)
	}
	if out.Result.TotalScore != 9 || out.Result.MaxScore != 9 {
		t.Errorf("score = %d/%d, want 9/9", out.Result.TotalScore, out.Result.MaxScore)
	}
	if out.Session.Streak != 1 || out.Session.RoundsPlayed != 1 {
		t.Errorf("session = %+v", out.Session)
	}
	if out.KeyInsight == "" {
		t.Error("expected a key insight")
	}
	if len(out.NaiveOrder) != 3 || len(out.Actual) != 3 {
		t.Errorf("naive = %v, actual = %v", out.NaiveOrder, out.Actual)
	}
	if !g.Snapshot().ConceptsLearned[r.Set.ConceptName()] {
		t.Error("concept should be learned")
	}
}

func TestGame_DoubleSubmit(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, 4)

	r, err := g.StartRound(ctx)
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if _, err := g.Submit(ctx, correctOrder(r)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	_, err = g.Submit(ctx, correctOrder(r))
	if !errors.Is(err, ErrRoundAlreadyScored) {
		t.Fatalf("err = %v, want ErrRoundAlreadyScored", err)
	}
	if g.Snapshot().RoundsPlayed != 1 {
		t.Errorf("RoundsPlayed = %d, want 1", g.Snapshot().RoundsPlayed)
	}
}

func TestGame_InvalidSubmissionKeepsRoundOpen(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, 5)

	r, err := g.StartRound(ctx)
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	_, err = g.Submit(ctx, []int{r.Items[0].ID, r.Items[0].ID, r.Items[1].ID})
	if !errors.Is(err, ranking.ErrIncompleteSubmission) {
		t.Fatalf("err = %v, want ErrIncompleteSubmission", err)
	}
	if g.Snapshot().RoundsPlayed != 0 {
		t.Error("invalid submission must not count as a round")
	}
	if _, err := g.Submit(ctx, correctOrder(r)); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
}

func TestGame_WrongOrderResetsStreak(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, 6)

	for i := 0; i < 2; i++ {
		r, err := g.StartRound(ctx)
		if err != nil {
			t.Fatalf("StartRound: %v", err)
		}
		if _, err := g.Submit(ctx, correctOrder(r)); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	if g.Snapshot().Streak != 2 {
		t.Fatalf("Streak = %d, want 2", g.Snapshot().Streak)
	}

	r, err := g.StartRound(ctx)
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	// Two perfect rounds fast-track past beginner.
	if r.Set.Difficulty != catalog.Intermediate {
		t.Errorf("Difficulty = %s, want intermediate", r.Set.Difficulty)
	}
	out, err := g.Submit(ctx, wrongOrder(r))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out.Result.Perfect() {
		t.Fatal("reversed order should not be perfect")
	}
	if out.Session.Streak != 0 || out.Session.ConsecutiveCorrect != 0 {
		t.Errorf("streak = %d, consecutive = %d, want 0, 0", out.Session.Streak, out.Session.ConsecutiveCorrect)
	}
}

func TestGame_StreakMilestone(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, 7)

	var last RoundOutcome
	for i := 0; i < 5; i++ {
		r, err := g.StartRound(ctx)
		if err != nil {
			t.Fatalf("StartRound: %v", err)
		}
		last, err = g.Submit(ctx, correctOrder(r))
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if i < 4 && last.Milestone != 0 {
			t.Errorf("round %d: unexpected milestone %d", i+1, last.Milestone)
		}
	}
	if last.Milestone != 5 {
		t.Errorf("Milestone = %d, want 5", last.Milestone)
	}
}

func TestGame_EventLog(t *testing.T) {
	ctx := context.Background()
	events := &fakeEvents{}
	g := newTestGame(t, 8, WithEventRepo(events))

	r, err := g.StartRound(ctx)
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	order := correctOrder(r)
	if _, err := g.Submit(ctx, order); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	first := g.Snapshot().ID

	g.Restart(ctx)
	if g.Snapshot().ID == first {
		t.Error("restart should start a new session")
	}
	if _, err := g.StartRound(ctx); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	g.Close(ctx)

	want := []string{ActionStart, ActionReset, ActionStart, ActionEnd}
	got := events.actions()
	if len(got) != len(want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("actions = %v, want %v", got, want)
		}
	}

	if len(events.rounds) != 1 {
		t.Fatalf("%d round events, want 1", len(events.rounds))
	}
	re := events.rounds[0]
	if re.SessionID != first || re.Round != 1 || !re.Perfect || re.ExactMatches != 3 {
		t.Errorf("round event = %+v", re)
	}
	for i := range order {
		if re.SubmittedOrder[i] != order[i] || re.ActualOrder[i] != order[i] {
			t.Errorf("orders = %v / %v, want %v", re.SubmittedOrder, re.ActualOrder, order)
			break
		}
	}
}

func TestGame_EventLogFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	logger, hook := logtest.NewNullLogger()
	events := &fakeEvents{err: errors.New("disk full")}
	g := newTestGame(t, 9, WithEventRepo(events), WithLogger(logger))

	r, err := g.StartRound(ctx)
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if _, err := g.Submit(ctx, correctOrder(r)); err != nil {
		t.Fatalf("Submit should succeed despite event log failure: %v", err)
	}

	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	if warnings != 2 {
		t.Errorf("%d warnings logged, want 2 (session start and round)", warnings)
	}
}

func TestGame_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, 10)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_ = g.Snapshot()
				_ = g.CurrentRound()
			}
		}()
	}

	for i := 0; i < 20; i++ {
		r, err := g.StartRound(ctx)
		if err != nil {
			t.Fatalf("StartRound: %v", err)
		}
		if _, err := g.Submit(ctx, correctOrder(r)); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	wg.Wait()

	if g.Snapshot().RoundsPlayed != 20 {
		t.Errorf("RoundsPlayed = %d, want 20", g.Snapshot().RoundsPlayed)
	}
}
