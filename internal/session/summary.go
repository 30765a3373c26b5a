package session

import "fmt"

// OnFireStreak is the streak length at which the session is "on fire".
const OnFireStreak = 3

// Summary holds the data displayed on the stats screen.
type Summary struct {
	RoundsPlayed     int
	TotalScore       int
	MaxPossibleScore int
	SuccessRate      float64 // 0-100
	Points           int
	MaxPoints        int
	Streak           int
	BestStreak       int
	OnFire           bool
	NextMilestone    int
	ConceptsLearned  []string
	Difficulty       string
}

// BuildSummary creates a Summary from the session counters.
func BuildSummary(s GameSession) Summary {
	var rate float64
	if s.MaxPossibleScore > 0 {
		rate = float64(s.TotalScore) / float64(s.MaxPossibleScore) * 100
	}

	return Summary{
		RoundsPlayed:     s.RoundsPlayed,
		TotalScore:       s.TotalScore,
		MaxPossibleScore: s.MaxPossibleScore,
		SuccessRate:      rate,
		Points:           s.Points,
		MaxPoints:        s.MaxPoints,
		Streak:           s.Streak,
		BestStreak:       s.BestStreak,
		OnFire:           s.Streak >= OnFireStreak,
		NextMilestone:    NextStreakMilestone(s.Streak),
		ConceptsLearned:  s.Concepts(),
		Difficulty:       s.Difficulty.DisplayName(),
	}
}

// StreakLabel describes the streak for display.
func (s Summary) StreakLabel() string {
	switch {
	case s.Streak == 0:
		return "no streak"
	case s.OnFire:
		return fmt.Sprintf("%d in a row, on fire", s.Streak)
	default:
		return fmt.Sprintf("%d in a row", s.Streak)
	}
}

// NextStreakMilestone returns the next streak milestone above current.
func NextStreakMilestone(current int) int {
	milestones := []int{5, 10, 15, 20}
	for _, m := range milestones {
		if m > current {
			return m
		}
	}
	// Beyond 20, every 5.
	return ((current / 5) + 1) * 5
}

// IsStreakMilestone reports whether streak has just reached a milestone.
func IsStreakMilestone(streak int) bool {
	return streak > 0 && NextStreakMilestone(streak-1) == streak
}
