package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func key(code rune, text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: text}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	var pressed string
	m := NewMenu([]MenuItem{
		{Label: "OFF", Disabled: true},
		{Label: "PLAY", Action: func() tea.Cmd { pressed = "PLAY"; return nil }},
		{Label: "SKIP", Disabled: true},
		{Label: "QUIT", Action: func() tea.Cmd { pressed = "QUIT"; return nil }},
	})
	if m.SelectedLabel() != "PLAY" {
		t.Fatalf("initial selection = %q, want PLAY", m.SelectedLabel())
	}

	m, _ = m.Update(key(tea.KeyDown, ""))
	if m.SelectedLabel() != "QUIT" {
		t.Fatalf("after down = %q, want QUIT", m.SelectedLabel())
	}
	m, _ = m.Update(key('k', "k"))
	if m.SelectedLabel() != "PLAY" {
		t.Fatalf("after k = %q, want PLAY", m.SelectedLabel())
	}
	m, _ = m.Update(key(tea.KeyUp, ""))
	if m.SelectedLabel() != "PLAY" {
		t.Fatalf("up past a disabled first item moved selection to %q", m.SelectedLabel())
	}

	m.Update(key(tea.KeyEnter, ""))
	if pressed != "PLAY" {
		t.Errorf("pressed = %q, want PLAY", pressed)
	}
}

func TestMenuViewMarksSelection(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd { return nil }},
		{Label: "QUIT", Action: func() tea.Cmd { return nil }},
	})
	view := m.View(24)
	if !strings.Contains(view, "▸ PLAY") {
		t.Errorf("selected item not marked:\n%s", view)
	}
	if !strings.Contains(view, "QUIT") || strings.Contains(view, "▸ QUIT") {
		t.Errorf("unselected item rendered wrong:\n%s", view)
	}
}

func TestProgressBarClampsAndSizes(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
	}{
		{"empty", 0},
		{"half", 0.5},
		{"over", 1.7},
		{"negative", -0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewProgressBar("", tt.percent, false, 20).View()
			if w := lipgloss.Width(bar); w != 20 {
				t.Errorf("width = %d, want 20", w)
			}
		})
	}

	withPct := NewProgressBar("n", 0.89, true, 30).View()
	if !strings.Contains(withPct, "89%") {
		t.Errorf("expected percent label in %q", withPct)
	}
}

func TestContentWidthBounds(t *testing.T) {
	if got := ContentWidth(200); got != 64 {
		t.Errorf("ContentWidth(200) = %d, want 64", got)
	}
	if got := ContentWidth(10); got != 20 {
		t.Errorf("ContentWidth(10) = %d, want 20", got)
	}
}
