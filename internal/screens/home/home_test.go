package home

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/progression"
	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/router"
	"github.com/feedrank/feedrank/internal/session"
	"github.com/feedrank/feedrank/internal/store"
)

type fakeRepo struct{ store.EventRepo }

func newTestGame() *session.Game {
	rng := rand.New(rand.NewPCG(3, 5))
	cat := catalog.New(rng, catalog.DefaultSynthConfig())
	sel := progression.NewSelector(progression.DefaultPolicy(), cat, rng)
	logger, _ := logtest.NewNullLogger()
	return session.NewGame(sel, ranking.NewScorer(ranking.DefaultWeights()), session.WithLogger(logger))
}

func down(h *HomeScreen, n int) {
	for i := 0; i < n; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
}

func pushedTitle(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	return push.Screen.Title()
}

func TestHome_PlayPushesRound(t *testing.T) {
	h := New(newTestGame(), nil, nil)
	if h.Selected() != LabelPlay {
		t.Fatalf("selected = %q", h.Selected())
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := pushedTitle(t, cmd); got != "Round" {
		t.Errorf("pushed %q, want Round", got)
	}
}

func TestHome_TutorialAndStats(t *testing.T) {
	h := New(newTestGame(), nil, nil)

	down(h, 1)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := pushedTitle(t, cmd); got != "How It Works" {
		t.Errorf("pushed %q", got)
	}

	down(h, 1)
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := pushedTitle(t, cmd); got != "Session Stats" {
		t.Errorf("pushed %q", got)
	}
}

func TestHome_HistoryDisabledWithoutRepo(t *testing.T) {
	h := New(newTestGame(), nil, nil)
	down(h, 3)
	if h.Selected() != LabelQuit {
		t.Errorf("selected = %q, want history skipped", h.Selected())
	}
}

func TestHome_HistoryWithRepo(t *testing.T) {
	h := New(newTestGame(), nil, &fakeRepo{})
	down(h, 3)
	if h.Selected() != LabelHistory {
		t.Fatalf("selected = %q", h.Selected())
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := pushedTitle(t, cmd); got != "History" {
		t.Errorf("pushed %q", got)
	}
}

func TestHome_View(t *testing.T) {
	view := New(newTestGame(), nil, nil).View(120, 40)
	for _, want := range []string{"★ 0", "streak", LabelPlay, LabelQuit} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
