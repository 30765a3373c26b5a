package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/feedrank/feedrank/internal/session"
	"github.com/feedrank/feedrank/internal/ui/theme"
)

func renderTagline() string {
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Can you rank posts like a statistician?")
}

// renderStatsBar renders the session dashboard in a bordered box.
func renderStatsBar(sum session.Summary, cw int) string {
	pointStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Upvote).Bold(true)
	roundStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	streak := fmt.Sprintf("%d", sum.Streak)
	if sum.OnFire {
		streak += " 🔥"
	}

	parts := []string{
		pointStyle.Render(fmt.Sprintf("★ %d", sum.Points)) + dimStyle.Render(" pts"),
		streakStyle.Render(streak) + dimStyle.Render(" streak"),
		roundStyle.Render(fmt.Sprintf("%d", sum.RoundsPlayed)) + dimStyle.Render(" rounds"),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(parts, dimStyle.Render("  │  ")))
}
