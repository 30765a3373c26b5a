package tutorial

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/feedrank/feedrank/internal/router"
	"github.com/feedrank/feedrank/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "round" }
func (s *stubScreen) Title() string                           { return "Round" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestTutorial() (*TutorialScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func TestPaging(t *testing.T) {
	tut, _ := newTestTutorial()

	tut.Update(specialKey(tea.KeyRight))
	if tut.Page() != 1 {
		t.Fatalf("page = %d, want 1", tut.Page())
	}
	tut.Update(specialKey(tea.KeyLeft))
	tut.Update(specialKey(tea.KeyLeft))
	if tut.Page() != 0 {
		t.Errorf("page = %d, want 0 (no underflow)", tut.Page())
	}
}

func TestEnterOnLastPageReplacesScreen(t *testing.T) {
	tut, calls := newTestTutorial()
	var cmd tea.Cmd
	for i := 0; i < len(tut.steps); i++ {
		_, cmd = tut.Update(specialKey(tea.KeyEnter))
	}
	if cmd == nil {
		t.Fatal("expected a command after the last page")
	}
	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if rep.Screen.Title() != "Round" {
		t.Errorf("replacement title = %q", rep.Screen.Title())
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestSkipTransitionsOnce(t *testing.T) {
	tut, calls := newTestTutorial()
	_, cmd := tut.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected a command on skip")
	}
	_, cmd = tut.Update(keyPress('s'))
	if cmd != nil {
		t.Error("second skip should be ignored")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestFinishWithoutNextPops(t *testing.T) {
	tut := New(nil)
	_, cmd := tut.Update(keyPress('s'))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg when no next screen is set")
	}
}

func TestViewShowsStepContent(t *testing.T) {
	tut, _ := newTestTutorial()
	view := tut.View(100, 40)
	if !strings.Contains(view, "step 1 of 5") {
		t.Error("expected step counter")
	}

	tut.Update(specialKey(tea.KeyRight))
	view = tut.View(100, 40)
	if !strings.Contains(view, "Post A: 19 up") {
		t.Error("expected the example on the second page")
	}
}

func TestBannerCompact(t *testing.T) {
	if !strings.Contains(RenderBanner(40), "F E E D") {
		t.Error("expected compact banner for narrow width")
	}
	if strings.Contains(RenderBanner(100), "F E E D") {
		t.Error("expected full banner for wide width")
	}
}
