// Package history browses rounds recorded in the event log.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/feedrank/feedrank/internal/router"
	"github.com/feedrank/feedrank/internal/screen"
	"github.com/feedrank/feedrank/internal/store"
	"github.com/feedrank/feedrank/internal/ui/layout"
	"github.com/feedrank/feedrank/internal/ui/theme"
)

// pageSize caps how many rounds are loaded.
const pageSize = 50

type historyLoadedMsg struct {
	Rounds   []store.RoundRecord
	Concepts []store.ConceptStat
	Err      error
}

// HistoryScreen displays past rounds and per-concept accuracy.
type HistoryScreen struct {
	eventRepo store.EventRepo
	rounds    []store.RoundRecord
	concepts  []store.ConceptStat
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		rounds, err := repo.RecentRounds(ctx, store.QueryOpts{Limit: pageSize})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Concept stats are secondary; show rounds even if they fail.
		concepts, err := repo.ConceptStats(ctx)
		if err != nil {
			return historyLoadedMsg{Rounds: rounds}
		}

		return historyLoadedMsg{Rounds: rounds, Concepts: concepts}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rounds = msg.Rounds
			s.concepts = msg.Concepts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rounds)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.rounds) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Start ranking!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(s.concepts) > 0 {
		var parts []string
		for _, c := range s.concepts {
			parts = append(parts, fmt.Sprintf("%s %.0f%%", c.Concept, c.Accuracy()*100))
		}
		b.WriteString(layout.Center(theme.Hint.Render(strings.Join(parts, "   ")), width))
		b.WriteString("\n\n")
	}

	for i, r := range s.rounds {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		mark := ""
		if r.Perfect {
			mark = "  ★"
		}
		line := fmt.Sprintf("%s%s  %-12s  %-28s  %d/%d pts%s",
			prefix, r.Timestamp.Format("Jan 02 15:04"), r.Difficulty, truncate(r.Title, 28), r.Score, r.MaxScore, mark)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(layout.Center(style.Render(line), width))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    yours: %s    wilson: %s    concept: %s",
				joinIDs(r.SubmittedOrder), joinIDs(r.ActualOrder), r.Concept)
			b.WriteString(layout.Center(theme.Hint.Render(detail), width))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	return strings.Join(parts, " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
