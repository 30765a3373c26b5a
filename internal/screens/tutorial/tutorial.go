// Package tutorial pages through the introduction before the first round.
package tutorial

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/feedrank/feedrank/internal/coach"
	"github.com/feedrank/feedrank/internal/router"
	"github.com/feedrank/feedrank/internal/screen"
	"github.com/feedrank/feedrank/internal/ui/components"
	"github.com/feedrank/feedrank/internal/ui/layout"
	"github.com/feedrank/feedrank/internal/ui/theme"
)

// TutorialScreen shows the tutorial steps one page at a time, then hands
// over to the screen produced by next.
type TutorialScreen struct {
	steps        []coach.TutorialStep
	page         int
	next         func() screen.Screen
	transitioned bool
}

var _ screen.Screen = (*TutorialScreen)(nil)
var _ screen.KeyHintProvider = (*TutorialScreen)(nil)

// New creates a TutorialScreen. When next is nil, finishing the tutorial
// pops back to the previous screen.
func New(next func() screen.Screen) *TutorialScreen {
	return &TutorialScreen{
		steps: coach.Tutorial(),
		next:  next,
	}
}

func (t *TutorialScreen) Init() tea.Cmd {
	return nil
}

func (t *TutorialScreen) Title() string {
	return "How It Works"
}

// Page returns the zero-based index of the visible step.
func (t *TutorialScreen) Page() int {
	return t.page
}

func (t *TutorialScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "←/→", Description: "Page"}}
	if t.page == len(t.steps)-1 {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Start playing"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
	}
	return append(hints, layout.KeyHint{Key: "s", Description: "Skip"})
}

func (t *TutorialScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "right", "l", "enter", "space":
		if t.page < len(t.steps)-1 {
			t.page++
			return t, nil
		}
		return t, t.finish()
	case "left", "h":
		if t.page > 0 {
			t.page--
		}
	case "s":
		return t, t.finish()
	}
	return t, nil
}

func (t *TutorialScreen) finish() tea.Cmd {
	if t.transitioned {
		return nil
	}
	t.transitioned = true
	if t.next == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	nextScreen := t.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: nextScreen}
	}
}

func (t *TutorialScreen) View(width, height int) string {
	step := t.steps[t.page]
	cw := components.ContentWidth(width)

	var sections []string
	if t.page == 0 && !layout.IsCompactHeight(height) {
		sections = append(sections, RenderBanner(width), "")
	}

	sections = append(sections, theme.Title.Render(step.Title), "")

	body := lipgloss.NewStyle().
		Width(cw - 6).
		Foreground(theme.Text).
		Render(step.Content)

	if ex := step.Example; ex != nil {
		up := lipgloss.NewStyle().Foreground(theme.Upvote).Render("▲ " + ex.First)
		down := lipgloss.NewStyle().Foreground(theme.Downvote).Render("▼ " + ex.Second)
		note := theme.Hint.Width(cw - 6).Render(ex.Explanation)
		body = strings.Join([]string{body, "", up, down, "", note}, "\n")
	}
	sections = append(sections, components.Card(body, cw), "")

	dots := make([]string, len(t.steps))
	for i := range t.steps {
		if i == t.page {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Accent).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	sections = append(sections,
		strings.Join(dots, " "),
		theme.Subtitle.Render(fmt.Sprintf("step %d of %d", t.page+1, len(t.steps))),
	)

	return components.Frame(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}
