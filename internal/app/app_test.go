package app

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/progression"
	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/session"
)

func newTestGame() *session.Game {
	rng := rand.New(rand.NewPCG(9, 9))
	cat := catalog.New(rng, catalog.DefaultSynthConfig())
	sel := progression.NewSelector(progression.DefaultPolicy(), cat, rng)
	logger, _ := logtest.NewNullLogger()
	return session.NewGame(sel, ranking.NewScorer(ranking.DefaultWeights()), session.WithLogger(logger))
}

func TestInitialScreen(t *testing.T) {
	game := newTestGame()
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"home", Options{Game: game}, "Home"},
		{"round", Options{Game: game, SkipHome: true}, "Round"},
		{"tutorial", Options{Game: game, SkipHome: true, ShowTutorial: true}, "How It Works"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := initialScreen(tt.opts).Title(); got != tt.want {
				t.Errorf("title = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunWithoutGame(t *testing.T) {
	if err := Run(Options{}); !errors.Is(err, ErrNoGame) {
		t.Errorf("err = %v, want ErrNoGame", err)
	}
}

func TestViewRendersHeaderAndFooter(t *testing.T) {
	m := newAppModel(Options{Game: newTestGame()})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	content := updated.(AppModel).render()
	for _, want := range []string{"Feed Rank", "★ 0 pts", "Ctrl+C"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(Options{Game: newTestGame()})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Game: newTestGame()})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
