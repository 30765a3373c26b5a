package stats

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/feedrank/feedrank/internal/router"
	"github.com/feedrank/feedrank/internal/session"
)

func testSession() session.GameSession {
	s := session.New()
	s.RoundsPlayed = 4
	s.TotalScore = 10
	s.MaxPossibleScore = 12
	s.Points = 32
	s.MaxPoints = 36
	s.Streak = 3
	s.BestStreak = 3
	s.ConceptsLearned["sample_size"] = true
	return s
}

func TestStatsScreen_Title(t *testing.T) {
	s := New(testSession())
	if s.Title() != "Session Stats" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Stats")
	}
}

func TestStatsScreen_Display(t *testing.T) {
	view := New(testSession()).View(100, 40)
	for _, want := range []string{"Rounds played     4", "10 / 12", "3 in a row", "Sample Size"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStatsScreen_Empty(t *testing.T) {
	view := New(session.New()).View(100, 40)
	if !strings.Contains(view, "No rounds played yet") {
		t.Error("expected empty-state message")
	}
}

func TestStatsScreen_Navigation(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
		{Code: 'q', Text: "q"},
	} {
		_, cmd := New(testSession()).Update(key)
		if cmd == nil {
			t.Fatalf("expected a command on %q", key.String())
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("%q: expected PopScreenMsg", key.String())
		}
	}
}
