// Package app wires the screens into the root Bubble Tea program.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/feedrank/feedrank/internal/coach"
	"github.com/feedrank/feedrank/internal/router"
	"github.com/feedrank/feedrank/internal/screen"
	"github.com/feedrank/feedrank/internal/screens/home"
	"github.com/feedrank/feedrank/internal/screens/round"
	"github.com/feedrank/feedrank/internal/screens/stats"
	"github.com/feedrank/feedrank/internal/screens/tutorial"
	"github.com/feedrank/feedrank/internal/session"
	"github.com/feedrank/feedrank/internal/store"
	"github.com/feedrank/feedrank/internal/ui/layout"
)

// ErrNoGame is returned by Run when Options has no Game.
var ErrNoGame = errors.New("app: no game configured")

// Options configures the interactive program.
type Options struct {
	Game      *session.Game
	Explainer coach.Explainer    // optional; defaults to the key insight
	EventRepo store.EventRepo    // optional; enables the history screen
	Log       logrus.FieldLogger // optional

	// SkipHome starts directly in a round, via the tutorial when
	// ShowTutorial is set.
	SkipHome     bool
	ShowTutorial bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	game   *session.Game
	width  int
	height int
}

// newAppModel creates a new AppModel with the initial screen chosen by opts.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(initialScreen(opts)),
		game:   opts.Game,
	}
}

func initialScreen(opts Options) screen.Screen {
	if !opts.SkipHome {
		return home.New(opts.Game, opts.Explainer, opts.EventRepo)
	}
	statsFactory := func() screen.Screen { return stats.New(opts.Game.Snapshot()) }
	roundFactory := func() screen.Screen { return round.New(opts.Game, opts.Explainer, statsFactory) }
	if opts.ShowTutorial {
		return tutorial.New(roundFactory)
	}
	return roundFactory()
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStats(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) headerStats() layout.HeaderStats {
	if m.game == nil {
		return layout.HeaderStats{}
	}
	sum := session.BuildSummary(m.game.Snapshot())
	return layout.HeaderStats{
		Points: sum.Points,
		Streak: sum.Streak,
		OnFire: sum.OnFire,
	}
}

// footerHints combines the active screen's hints with navigation hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if m.router.Depth() > 1 {
		return append(hints,
			layout.KeyHint{Key: "Esc", Description: "Back"},
			layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
		)
	}
	if len(hints) == 0 {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and records the end of the session
// when it exits.
func Run(opts Options) error {
	if opts.Game == nil {
		return ErrNoGame
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	opts.Game.Close(context.Background())

	sum := session.BuildSummary(opts.Game.Snapshot())
	log.WithFields(logrus.Fields{
		"rounds":      sum.RoundsPlayed,
		"points":      sum.Points,
		"best_streak": sum.BestStreak,
	}).Info("program exited")

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
