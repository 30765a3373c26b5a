// Package stats shows the running totals of the current play session.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/router"
	"github.com/feedrank/feedrank/internal/screen"
	"github.com/feedrank/feedrank/internal/session"
	"github.com/feedrank/feedrank/internal/ui/components"
	"github.com/feedrank/feedrank/internal/ui/layout"
	"github.com/feedrank/feedrank/internal/ui/theme"
)

// StatsScreen displays the session summary.
type StatsScreen struct {
	summary session.Summary
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen for a snapshot of the session.
func New(s session.GameSession) *StatsScreen {
	return &StatsScreen{summary: session.BuildSummary(s)}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Session Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to game"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)

	if sum.RoundsPlayed == 0 {
		empty := theme.Hint.Render("No rounds played yet. Rank some posts first!")
		return components.Frame(empty, width, height)
	}

	var sections []string
	sections = append(sections, theme.Title.Render("How you're doing"), "")

	lines := []string{
		fmt.Sprintf("Rounds played     %d", sum.RoundsPlayed),
		fmt.Sprintf("Exact placements  %d / %d", sum.TotalScore, sum.MaxPossibleScore),
		fmt.Sprintf("Points            %d / %d", sum.Points, sum.MaxPoints),
		fmt.Sprintf("Streak            %s", sum.StreakLabel()),
		fmt.Sprintf("Best streak       %d", sum.BestStreak),
		fmt.Sprintf("Next milestone    %d", sum.NextMilestone),
		fmt.Sprintf("Difficulty        %s", sum.Difficulty),
	}
	body := theme.Body.Render(strings.Join(lines, "\n"))

	bar := components.NewProgressBar("Success", sum.SuccessRate/100, true, cw-8)
	if sum.OnFire {
		bar.Fill = theme.Accent
	}
	sections = append(sections, components.Card(body+"\n\n"+bar.View(), cw), "")

	sections = append(sections, theme.Subtitle.Render("Concepts learned"))
	if len(sum.ConceptsLearned) == 0 {
		sections = append(sections, theme.Hint.Render("Rank a round perfectly to learn its concept"))
	} else {
		for _, name := range sum.ConceptsLearned {
			sections = append(sections,
				lipgloss.NewStyle().Foreground(theme.Success).Render("✓ "+conceptTitle(name)))
		}
	}

	return components.Frame(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func conceptTitle(name string) string {
	c, err := catalog.ParseConcept(name)
	if err != nil {
		return name
	}
	return c.Title()
}
