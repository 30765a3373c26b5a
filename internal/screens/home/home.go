// Package home is the main menu.
package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/feedrank/feedrank/internal/coach"
	"github.com/feedrank/feedrank/internal/router"
	"github.com/feedrank/feedrank/internal/screen"
	"github.com/feedrank/feedrank/internal/screens/history"
	"github.com/feedrank/feedrank/internal/screens/round"
	"github.com/feedrank/feedrank/internal/screens/stats"
	"github.com/feedrank/feedrank/internal/screens/tutorial"
	"github.com/feedrank/feedrank/internal/session"
	"github.com/feedrank/feedrank/internal/store"
	"github.com/feedrank/feedrank/internal/ui/components"
	"github.com/feedrank/feedrank/internal/ui/layout"
)

// Menu labels.
const (
	LabelPlay     = "PLAY"
	LabelTutorial = "HOW IT WORKS"
	LabelStats    = "SESSION STATS"
	LabelHistory  = "HISTORY"
	LabelQuit     = "QUIT"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	game *session.Game
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. explainer and eventRepo may be nil; without
// an event repo the history entry is disabled.
func New(game *session.Game, explainer coach.Explainer, eventRepo store.EventRepo) *HomeScreen {
	statsFactory := func() screen.Screen { return stats.New(game.Snapshot()) }
	roundFactory := func() screen.Screen { return round.New(game, explainer, statsFactory) }

	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := factory()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Label: LabelPlay, Action: push(roundFactory)},
		{Label: LabelTutorial, Action: push(func() screen.Screen { return tutorial.New(roundFactory) })},
		{Label: LabelStats, Action: push(statsFactory)},
		{
			Label:    LabelHistory,
			Disabled: eventRepo == nil,
			Action:   push(func() screen.Screen { return history.New(eventRepo) }),
		},
		{Label: LabelQuit, Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		game: game,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+8) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	if compact {
		sections = append(sections, tutorial.RenderBanner(0))
	} else {
		sections = append(sections, tutorial.RenderBanner(width))
	}
	sections = append(sections,
		"",
		renderTagline(),
		"",
		renderStatsBar(session.BuildSummary(h.game.Snapshot()), cw),
		"",
		h.menu.View(cw/2),
	)

	return components.Frame(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Selected returns the highlighted menu label.
func (h *HomeScreen) Selected() string {
	return h.menu.SelectedLabel()
}
