package round

import (
	"github.com/feedrank/feedrank/internal/coach"
	sess "github.com/feedrank/feedrank/internal/session"
)

// roundStartedMsg is sent when the next example set has been selected and ranked.
type roundStartedMsg struct {
	Round *sess.Round
	Err   error
}

// roundScoredMsg is sent when a submission has been scored.
type roundScoredMsg struct {
	Outcome sess.RoundOutcome
	Err     error
}

// explanationMsg carries the explanation for a scored round.
type explanationMsg struct {
	Round       int
	Explanation coach.Explanation
}
