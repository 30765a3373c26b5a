package round

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/feedrank/feedrank/internal/coach"
	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/ui/components"
	"github.com/feedrank/feedrank/internal/ui/theme"
)

func (s *RoundScreen) View(width, height int) string {
	switch s.phase {
	case phaseError:
		return s.renderError(width, height)
	case phaseArranging:
		return components.Frame(s.renderArranging(width), width, height)
	case phaseResults:
		return components.Frame(s.renderResults(width), width, height)
	}
	return components.Frame(s.spinner.View()+" Shuffling the feed...", width, height)
}

func (s *RoundScreen) renderError(width, height int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong")
	detail := theme.Hint.Render(s.errMsg)
	return components.Frame(lipgloss.JoinVertical(lipgloss.Center, msg, "", detail), width, height)
}

func (s *RoundScreen) renderArranging(width int) string {
	cw := components.ContentWidth(width)
	set := s.round.Set

	var sections []string
	sections = append(sections,
		theme.Title.Render(fmt.Sprintf("Round %d: %s", s.round.Number, set.Title)),
		theme.Subtitle.Render("Rank these posts from best (top) to worst (bottom)"),
		"",
	)

	rows := make([]string, len(s.order))
	for i, it := range s.order {
		rows[i] = renderItemRow(i, it, i == s.cursor)
	}
	sections = append(sections, theme.Card.Width(cw).Render(strings.Join(rows, "\n")))

	if issues := coach.Issues(s.round.Items, s.Order()); len(issues) > 0 {
		sections = append(sections, theme.WarningCard.Width(cw).Render("⚠ "+strings.Join(issues, "\n⚠ ")))
	}
	if s.showHint {
		sections = append(sections, theme.HintCard.Width(cw).Render("💡 "+coach.Hint(set)))
	}
	if s.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func renderItemRow(pos int, it ranking.ScoredItem, selected bool) string {
	marker := "  "
	label := theme.Unselected
	if selected {
		marker = "▸ "
		label = theme.Selected
	}
	return fmt.Sprintf("%s%s  %s %s  %s",
		marker,
		label.Render(fmt.Sprintf("%d. Post #%d", pos+1, it.ID)),
		theme.Up.Render(fmt.Sprintf("▲ %-5d", it.Upvotes)),
		theme.Down.Render(fmt.Sprintf("▼ %-5d", it.Downvotes)),
		theme.Hint.Render(fmt.Sprintf("%3.0f%% of %d votes", it.Ratio()*100, it.Total())),
	)
}

func (s *RoundScreen) renderResults(width int) string {
	cw := components.ContentWidth(width)
	out := s.outcome
	res := out.Result

	var sections []string
	if res.Perfect() {
		sections = append(sections, theme.Correct.Render("Perfect ranking!"))
	} else {
		sections = append(sections, theme.Close.Render("Not quite the Wilson order"))
	}
	sections = append(sections,
		theme.Body.Render(fmt.Sprintf("Score: %d / %d pts   Exact: %d / %d",
			res.TotalScore, res.MaxScore, res.ExactMatches, res.ItemCount())),
	)
	if out.Milestone > 0 {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("🔥 %d perfect rounds in a row!", out.Milestone)))
	}
	sections = append(sections, "")

	left := renderSubmittedColumn(res.Placements)
	right := renderActualColumn(out.Actual)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	sections = append(sections, theme.Card.Width(cw).Render(columns))

	if naive := out.NaiveOrder; !sameOrder(naive, out.Actual) {
		sections = append(sections, theme.Hint.Render("By percentage alone: "+joinOrder(naive)))
	}
	sections = append(sections, "")

	if s.explanation == nil {
		sections = append(sections, s.spinner.View()+" Asking the coach...")
	} else {
		sections = append(sections, renderExplanation(*s.explanation, cw))
	}

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func renderSubmittedColumn(placements []ranking.Placement) string {
	lines := []string{theme.Subtitle.Render("Your ranking")}
	for _, p := range placements {
		var mark string
		switch {
		case p.Exact():
			mark = theme.Correct.Render("✓")
		case p.Award > 0:
			mark = theme.Close.Render("~")
		default:
			mark = theme.Incorrect.Render("✗")
		}
		lines = append(lines, fmt.Sprintf("%d. Post #%d %s", p.UserRank, p.ID, mark))
	}
	return strings.Join(lines, "\n")
}

func renderActualColumn(actual []ranking.ScoredItem) string {
	lines := []string{theme.Subtitle.Render("Wilson ranking")}
	for _, it := range actual {
		lines = append(lines, fmt.Sprintf("%d. Post #%d %s",
			it.ActualRank, it.ID,
			theme.Hint.Render(fmt.Sprintf("%.3f (%.0f%%, %d votes)", it.WilsonScore, it.Ratio()*100, it.Total())),
		))
	}
	return strings.Join(lines, "\n")
}

func renderExplanation(exp coach.Explanation, cw int) string {
	var parts []string
	headline := theme.Selected.Render(exp.Headline)
	if exp.Generated {
		headline += theme.Hint.Render("  (coach)")
	}
	parts = append(parts, headline)
	if exp.Body != "" {
		parts = append(parts, "", theme.Body.Render(exp.Body))
	}
	if exp.Tip != "" {
		parts = append(parts, "", theme.Hint.Render("Tip: "+exp.Tip))
	}
	return theme.HintCard.Width(cw).Render(strings.Join(parts, "\n"))
}

func sameOrder(ids []int, items []ranking.ScoredItem) bool {
	if len(ids) != len(items) {
		return false
	}
	for i, it := range items {
		if ids[i] != it.ID {
			return false
		}
	}
	return true
}

func joinOrder(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	return strings.Join(parts, " > ")
}
