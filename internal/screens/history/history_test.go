package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/feedrank/feedrank/internal/router"
	"github.com/feedrank/feedrank/internal/store"
)

// fakeRepo serves canned history. Methods not overridden panic through the
// nil embedded interface.
type fakeRepo struct {
	store.EventRepo
	rounds     []store.RoundRecord
	concepts   []store.ConceptStat
	roundsErr  error
	conceptErr error
}

func (f *fakeRepo) RecentRounds(context.Context, store.QueryOpts) ([]store.RoundRecord, error) {
	return f.rounds, f.roundsErr
}

func (f *fakeRepo) ConceptStats(context.Context) ([]store.ConceptStat, error) {
	return f.concepts, f.conceptErr
}

func testRepo() *fakeRepo {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &fakeRepo{
		rounds: []store.RoundRecord{
			{Sequence: 2, Timestamp: ts, RoundEventData: store.RoundEventData{
				Title: "Small Sample Trap", Difficulty: "beginner", Concept: "sample_size",
				Score: 9, MaxScore: 9, Perfect: true,
				SubmittedOrder: []int{2, 1, 3}, ActualOrder: []int{2, 1, 3},
			}},
			{Sequence: 1, Timestamp: ts, RoundEventData: store.RoundEventData{
				Title: "Perfect Scores", Difficulty: "beginner", Concept: "perfect_scores",
				Score: 2, MaxScore: 9,
				SubmittedOrder: []int{1, 2, 3}, ActualOrder: []int{3, 2, 1},
			}},
		},
		concepts: []store.ConceptStat{{Concept: "sample_size", Rounds: 1, Perfect: 1, ExactMatches: 3, Items: 3}},
	}
}

func loaded(t *testing.T, repo store.EventRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	s.Update(s.Init()())
	if !s.loaded {
		t.Fatal("expected history to be loaded")
	}
	return s
}

func TestHistory_LoadingView(t *testing.T) {
	s := New(testRepo())
	if !strings.Contains(s.View(100, 30), "Loading history") {
		t.Error("expected loading message")
	}
}

func TestHistory_Display(t *testing.T) {
	s := loaded(t, testRepo())
	view := s.View(120, 30)
	for _, want := range []string{"Small Sample Trap", "9/9 pts", "★", "sample_size 100%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistory_Empty(t *testing.T) {
	s := loaded(t, &fakeRepo{})
	if !strings.Contains(s.View(100, 30), "No rounds yet") {
		t.Error("expected empty-state message")
	}
}

func TestHistory_Error(t *testing.T) {
	s := loaded(t, &fakeRepo{roundsErr: errors.New("db locked")})
	if !strings.Contains(s.View(100, 30), "db locked") {
		t.Error("expected error message")
	}
}

func TestHistory_ConceptErrorStillShowsRounds(t *testing.T) {
	repo := testRepo()
	repo.conceptErr = errors.New("boom")
	s := loaded(t, repo)
	if len(s.rounds) != 2 || s.concepts != nil {
		t.Errorf("rounds = %d, concepts = %v", len(s.rounds), s.concepts)
	}
}

func TestHistory_NavigateAndExpand(t *testing.T) {
	s := loaded(t, testRepo())

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Fatalf("selected = %d, want 1", s.selected)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(140, 30), "wilson: #3 #2 #1") {
		t.Error("expected expanded round details")
	}

	s.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
}

func TestHistory_Esc(t *testing.T) {
	s := loaded(t, testRepo())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("a very long title indeed", 6); got != "a ver…" {
		t.Errorf("truncate = %q", got)
	}
}
