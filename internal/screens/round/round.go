// Package round is the main game screen: arrange posts, submit, and review
// the Wilson order.
package round

import (
	"context"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/feedrank/feedrank/internal/coach"
	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/router"
	"github.com/feedrank/feedrank/internal/screen"
	sess "github.com/feedrank/feedrank/internal/session"
	"github.com/feedrank/feedrank/internal/ui/layout"
	"github.com/feedrank/feedrank/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseArranging
	phaseResults
	phaseError
)

// RoundScreen implements screen.Screen for a run of ranking rounds.
type RoundScreen struct {
	game         *sess.Game
	explainer    coach.Explainer
	statsFactory func() screen.Screen
	keys         keyMap
	spinner      spinner.Model

	phase       phase
	round       *sess.Round
	order       []ranking.ScoredItem
	cursor      int
	showHint    bool
	outcome     *sess.RoundOutcome
	explanation *coach.Explanation
	errMsg      string
}

var _ screen.Screen = (*RoundScreen)(nil)
var _ screen.KeyHintProvider = (*RoundScreen)(nil)

// New creates a RoundScreen. explainer may be nil, in which case the
// set's key insight is shown. statsFactory, if set, opens the stats screen.
func New(game *sess.Game, explainer coach.Explainer, statsFactory func() screen.Screen) *RoundScreen {
	if explainer == nil {
		explainer = coach.StaticExplainer{}
	}
	return &RoundScreen{
		game:         game,
		explainer:    explainer,
		statsFactory: statsFactory,
		keys:         defaultKeyMap(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Selected),
		),
	}
}

func (s *RoundScreen) Init() tea.Cmd {
	return tea.Batch(s.startRound(), s.spinner.Tick)
}

func (s *RoundScreen) Title() string {
	if s.round == nil {
		return "Round"
	}
	return s.round.Set.Difficulty.DisplayName()
}

func (s *RoundScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseArranging:
		return hints(s.keys.Up, s.keys.MoveUp, s.keys.Hint, s.keys.Submit)
	case phaseResults:
		return hints(s.keys.Next, s.keys.Restart, s.keys.Stats)
	case phaseError:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	return nil
}

// Order returns the ids in the current arrangement, best first.
func (s *RoundScreen) Order() []int {
	ids := make([]int, len(s.order))
	for i, it := range s.order {
		ids[i] = it.ID
	}
	return ids
}

func (s *RoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roundStartedMsg:
		return s.handleStarted(msg)

	case roundScoredMsg:
		return s.handleScored(msg)

	case explanationMsg:
		if s.outcome != nil && s.outcome.Round.Number == msg.Round {
			exp := msg.Explanation
			s.explanation = &exp
		}
		return s, nil

	case spinner.TickMsg:
		if !s.busy() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// busy reports whether a background command is outstanding.
func (s *RoundScreen) busy() bool {
	return s.phase == phaseLoading || (s.phase == phaseResults && s.explanation == nil)
}

func (s *RoundScreen) handleStarted(msg roundStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseError
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.round = msg.Round
	s.order = append([]ranking.ScoredItem(nil), msg.Round.Items...)
	s.cursor = 0
	s.showHint = false
	s.outcome = nil
	s.explanation = nil
	s.errMsg = ""
	s.phase = phaseArranging
	return s, nil
}

func (s *RoundScreen) handleScored(msg roundScoredMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.phase = phaseArranging
		return s, nil
	}
	out := msg.Outcome
	s.outcome = &out
	s.errMsg = ""
	s.phase = phaseResults
	return s, tea.Batch(s.explain(out), s.spinner.Tick)
}

func (s *RoundScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseError:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case phaseArranging:
		switch {
		case key.Matches(msg, s.keys.MoveUp):
			s.move(-1)
		case key.Matches(msg, s.keys.MoveDown):
			s.move(1)
		case key.Matches(msg, s.keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, s.keys.Down):
			if s.cursor < len(s.order)-1 {
				s.cursor++
			}
		case key.Matches(msg, s.keys.Hint):
			s.showHint = !s.showHint
		case key.Matches(msg, s.keys.Submit):
			s.phase = phaseLoading
			return s, tea.Batch(s.submit(s.Order()), s.spinner.Tick)
		}

	case phaseResults:
		switch {
		case key.Matches(msg, s.keys.Next):
			s.phase = phaseLoading
			return s, tea.Batch(s.startRound(), s.spinner.Tick)
		case key.Matches(msg, s.keys.Restart):
			s.phase = phaseLoading
			return s, tea.Batch(s.restart(), s.spinner.Tick)
		case key.Matches(msg, s.keys.Stats):
			if s.statsFactory == nil {
				return s, nil
			}
			stats := s.statsFactory()
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: stats} }
		}
	}
	return s, nil
}

// move swaps the selected item with its neighbour; the cursor follows it.
func (s *RoundScreen) move(delta int) {
	to := s.cursor + delta
	if to < 0 || to >= len(s.order) {
		return
	}
	s.order[s.cursor], s.order[to] = s.order[to], s.order[s.cursor]
	s.cursor = to
}

func (s *RoundScreen) startRound() tea.Cmd {
	game := s.game
	return func() tea.Msg {
		r, err := game.StartRound(context.Background())
		return roundStartedMsg{Round: r, Err: err}
	}
}

func (s *RoundScreen) restart() tea.Cmd {
	game := s.game
	return func() tea.Msg {
		ctx := context.Background()
		game.Restart(ctx)
		r, err := game.StartRound(ctx)
		return roundStartedMsg{Round: r, Err: err}
	}
}

func (s *RoundScreen) submit(order []int) tea.Cmd {
	game := s.game
	return func() tea.Msg {
		out, err := game.Submit(context.Background(), order)
		return roundScoredMsg{Outcome: out, Err: err}
	}
}

func (s *RoundScreen) explain(out sess.RoundOutcome) tea.Cmd {
	explainer := s.explainer
	in := coach.Input{
		Set:        out.Round.Set,
		Submitted:  out.Submitted,
		Actual:     out.Actual,
		Result:     out.Result,
		Confidence: out.Round.Confidence,
	}
	number := out.Round.Number
	return func() tea.Msg {
		return explanationMsg{
			Round:       number,
			Explanation: explainer.Explain(context.Background(), in),
		}
	}
}
