package round

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/coach"
	"github.com/feedrank/feedrank/internal/progression"
	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/router"
	"github.com/feedrank/feedrank/internal/screen"
	sess "github.com/feedrank/feedrank/internal/session"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "stats" }
func (s *stubScreen) Title() string                           { return "Stats" }

// fixedExplainer returns the same explanation for every round.
type fixedExplainer struct{ exp coach.Explanation }

func (f fixedExplainer) Explain(context.Context, coach.Input) coach.Explanation { return f.exp }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func shiftKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: tea.ModShift}
}

func newTestGame(seed uint64) *sess.Game {
	rng := rand.New(rand.NewPCG(seed, seed*31+7))
	cat := catalog.New(rng, catalog.DefaultSynthConfig())
	sel := progression.NewSelector(progression.DefaultPolicy(), cat, rng)
	logger, _ := logtest.NewNullLogger()
	return sess.NewGame(sel, ranking.NewScorer(ranking.DefaultWeights()), sess.WithLogger(logger))
}

// startedScreen returns a screen with its first round loaded.
func startedScreen(t *testing.T, explainer coach.Explainer) (*RoundScreen, *sess.Game) {
	t.Helper()
	game := newTestGame(1)
	s := New(game, explainer, func() screen.Screen { return &stubScreen{} })
	s.Update(s.startRound()())
	if s.phase != phaseArranging {
		t.Fatalf("phase = %v, want arranging (err %q)", s.phase, s.errMsg)
	}
	return s, game
}

func correctOrder(items []ranking.ScoredItem) []int {
	var ids []int
	for _, it := range ranking.ByActualRank(items) {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestStartRoundShowsItems(t *testing.T) {
	s, _ := startedScreen(t, nil)

	if got, want := len(s.Order()), len(s.round.Items); got != want {
		t.Fatalf("order has %d items, want %d", got, want)
	}
	for i, it := range s.round.Items {
		if s.Order()[i] != it.ID {
			t.Errorf("initial order[%d] = %d, want %d", i, s.Order()[i], it.ID)
		}
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "Round 1") {
		t.Error("expected round number in view")
	}
	if !strings.Contains(view, "Post #") {
		t.Error("expected posts in view")
	}
}

func TestCursorAndMove(t *testing.T) {
	s, _ := startedScreen(t, nil)
	before := s.Order()

	s.Update(specialKey(tea.KeyUp))
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (no underflow)", s.cursor)
	}

	s.Update(keyPress('j'))
	if s.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", s.cursor)
	}

	s.Update(shiftKey(tea.KeyUp))
	after := s.Order()
	if after[0] != before[1] || after[1] != before[0] {
		t.Errorf("shift+up should swap the first two items: %v -> %v", before, after)
	}
	if s.cursor != 0 {
		t.Errorf("cursor should follow the moved item, got %d", s.cursor)
	}

	s.Update(keyPress('J'))
	if got := s.Order(); got[0] != before[0] || got[1] != before[1] {
		t.Errorf("J should move the item back down: %v", got)
	}

	s.cursor = len(s.order) - 1
	s.Update(keyPress('J'))
	if s.cursor != len(s.order)-1 {
		t.Error("moving past the bottom should be a no-op")
	}
}

func TestHintToggle(t *testing.T) {
	s, _ := startedScreen(t, nil)

	if strings.Contains(s.View(100, 60), "💡") {
		t.Error("hint should be hidden initially")
	}
	s.Update(keyPress('h'))
	if !s.showHint {
		t.Fatal("h should show the hint")
	}
	if !strings.Contains(s.View(100, 60), "💡") {
		t.Error("expected hint card")
	}
	s.Update(keyPress('h'))
	if s.showHint {
		t.Error("h should toggle the hint off")
	}
}

func TestEnterSubmits(t *testing.T) {
	s, _ := startedScreen(t, nil)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	if s.phase != phaseLoading {
		t.Errorf("phase = %v, want loading", s.phase)
	}
}

func TestPerfectSubmission(t *testing.T) {
	s, game := startedScreen(t, fixedExplainer{coach.Explanation{Headline: "Volume wins", Body: "body", Generated: true}})

	s.Update(s.submit(correctOrder(s.round.Items))())
	if s.phase != phaseResults {
		t.Fatalf("phase = %v, want results (err %q)", s.phase, s.errMsg)
	}
	if !s.outcome.Result.Perfect() {
		t.Error("expected a perfect result")
	}
	if got := game.Snapshot().Streak; got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}

	view := s.View(100, 60)
	if !strings.Contains(view, "Perfect ranking!") {
		t.Error("expected perfect banner")
	}
	if !strings.Contains(view, "Asking the coach") {
		t.Error("expected pending explanation")
	}

	s.Update(s.explain(*s.outcome)())
	if s.explanation == nil || s.explanation.Headline != "Volume wins" {
		t.Fatalf("explanation = %+v", s.explanation)
	}
	if !strings.Contains(s.View(100, 60), "Volume wins") {
		t.Error("expected explanation in view")
	}
	if s.busy() {
		t.Error("screen should be idle once explained")
	}
}

func TestStaticExplanationByDefault(t *testing.T) {
	s, _ := startedScreen(t, nil)
	ids := correctOrder(s.round.Items)
	ids[0], ids[len(ids)-1] = ids[len(ids)-1], ids[0]

	s.Update(s.submit(ids)())
	s.Update(s.explain(*s.outcome)())
	if s.explanation.Headline != "Not quite the Wilson order" {
		t.Errorf("headline = %q", s.explanation.Headline)
	}
	if s.explanation.Body != s.round.Set.KeyInsight {
		t.Error("static explanation should carry the key insight")
	}
}

func TestStaleExplanationIgnored(t *testing.T) {
	s, _ := startedScreen(t, nil)
	s.Update(s.submit(correctOrder(s.round.Items))())
	s.Update(explanationMsg{Round: 99, Explanation: coach.Explanation{Headline: "old"}})
	if s.explanation != nil {
		t.Error("explanation for another round should be ignored")
	}
}

func TestSubmitErrorKeepsArranging(t *testing.T) {
	s, _ := startedScreen(t, nil)
	s.Update(roundScoredMsg{Err: errors.New("incomplete submission")})
	if s.phase != phaseArranging {
		t.Errorf("phase = %v, want arranging", s.phase)
	}
	if !strings.Contains(s.View(100, 60), "incomplete submission") {
		t.Error("expected error in view")
	}
}

func TestNextRound(t *testing.T) {
	s, _ := startedScreen(t, nil)
	s.Update(s.submit(correctOrder(s.round.Items))())

	_, cmd := s.Update(keyPress('n'))
	if cmd == nil || s.phase != phaseLoading {
		t.Fatal("n should start the next round")
	}
	s.Update(s.startRound()())
	if s.round.Number != 2 {
		t.Errorf("round = %d, want 2", s.round.Number)
	}
	if s.outcome != nil || s.explanation != nil {
		t.Error("results should be cleared for the new round")
	}
}

func TestRestart(t *testing.T) {
	s, game := startedScreen(t, nil)
	s.Update(s.submit(correctOrder(s.round.Items))())
	oldID := game.Snapshot().ID

	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("r should restart")
	}
	s.Update(s.restart()())

	snap := game.Snapshot()
	if snap.ID == oldID {
		t.Error("restart should begin a new session")
	}
	if snap.RoundsPlayed != 0 || s.round.Number != 1 {
		t.Errorf("rounds played = %d, round = %d", snap.RoundsPlayed, s.round.Number)
	}
}

func TestStatsPushesScreen(t *testing.T) {
	s, _ := startedScreen(t, nil)
	s.Update(s.submit(correctOrder(s.round.Items))())

	_, cmd := s.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "Stats" {
		t.Errorf("pushed %q", push.Screen.Title())
	}
}

func TestStartErrorPopsOnKey(t *testing.T) {
	s := New(newTestGame(1), nil, nil)
	s.Update(roundStartedMsg{Err: errors.New("boom")})
	if !strings.Contains(s.View(80, 24), "boom") {
		t.Error("expected error in view")
	}
	_, cmd := s.Update(keyPress('x'))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestKeyHintsFollowPhase(t *testing.T) {
	s, _ := startedScreen(t, nil)
	if hints := s.KeyHints(); len(hints) == 0 || hints[len(hints)-1].Description != "Submit" {
		t.Errorf("arranging hints = %+v", hints)
	}
	s.Update(s.submit(correctOrder(s.round.Items))())
	if hints := s.KeyHints(); hints[0].Description != "Next round" {
		t.Errorf("results hints = %+v", hints)
	}
}
