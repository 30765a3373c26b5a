// Package session tracks a learner's progress through a run of ranking
// rounds and orchestrates each round from selection to scoring.
package session

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/ranking"
)

// Phase describes where a session is in its lifecycle.
type Phase string

const (
	PhaseFresh      Phase = "fresh"       // No rounds played yet
	PhaseInProgress Phase = "in-progress" // At least one round scored
)

// GameSession holds the aggregate counters for one play session. It is a
// value type; RecordRound returns an updated copy.
type GameSession struct {
	// ID is the UUID grouping this session's events.
	ID string

	// StartedAt is when the session began.
	StartedAt time.Time

	// RoundsPlayed is the number of scored rounds.
	RoundsPlayed int

	// TotalScore is the sum of exact matches across rounds.
	TotalScore int

	// MaxPossibleScore is the sum of item counts across rounds.
	MaxPossibleScore int

	// Points and MaxPoints accumulate the weighted scores.
	Points    int
	MaxPoints int

	// ConceptsLearned holds the concepts of every perfectly ranked round.
	ConceptsLearned map[string]bool

	// Difficulty is the difficulty of the most recently started round.
	Difficulty catalog.Difficulty

	// Streak counts consecutive perfect rounds.
	Streak int

	// BestStreak is the longest streak seen in this session.
	BestStreak int

	// ConsecutiveCorrect counts consecutive perfect rounds for progression.
	// It moves in lockstep with Streak.
	ConsecutiveCorrect int
}

// New returns a fresh session.
func New() GameSession {
	return GameSession{
		ID:              uuid.New().String(),
		StartedAt:       time.Now().UTC(),
		ConceptsLearned: make(map[string]bool),
		Difficulty:      catalog.Beginner,
	}
}

// Reset discards all progress and returns a fresh session with a new ID.
func (s GameSession) Reset() GameSession {
	return New()
}

// Phase reports whether any round has been played.
func (s GameSession) Phase() Phase {
	if s.RoundsPlayed == 0 {
		return PhaseFresh
	}
	return PhaseInProgress
}

// Clone returns a deep copy.
func (s GameSession) Clone() GameSession {
	learned := make(map[string]bool, len(s.ConceptsLearned))
	for k, v := range s.ConceptsLearned {
		learned[k] = v
	}
	s.ConceptsLearned = learned
	return s
}

// Concepts returns the learned concept names in sorted order.
func (s GameSession) Concepts() []string {
	out := make([]string, 0, len(s.ConceptsLearned))
	for c, ok := range s.ConceptsLearned {
		if ok {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// RecordRound folds one scored round of n items into s and returns the
// updated session. A round is perfect when every item was placed at its
// actual rank; a perfect round extends the streak and marks concept as
// learned, anything else resets the streak. s is not modified.
func RecordRound(s GameSession, r ranking.ScoreResult, n int, concept string) GameSession {
	next := s.Clone()

	next.RoundsPlayed++
	next.TotalScore += r.ExactMatches
	next.MaxPossibleScore += n
	next.Points += r.TotalScore
	next.MaxPoints += r.MaxScore

	if n > 0 && r.ExactMatches == n {
		next.Streak++
		next.ConsecutiveCorrect++
		if concept != "" {
			next.ConceptsLearned[concept] = true
		}
		if next.Streak > next.BestStreak {
			next.BestStreak = next.Streak
		}
	} else {
		next.Streak = 0
		next.ConsecutiveCorrect = 0
	}

	return next
}
