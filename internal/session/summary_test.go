package session

import (
	"math"
	"strings"
	"testing"
)

func TestBuildSummary_Fresh(t *testing.T) {
	sum := BuildSummary(New())
	if sum.SuccessRate != 0 {
		t.Errorf("SuccessRate = %f, want 0", sum.SuccessRate)
	}
	if sum.OnFire {
		t.Error("fresh session should not be on fire")
	}
	if sum.NextMilestone != 5 {
		t.Errorf("NextMilestone = %d, want 5", sum.NextMilestone)
	}
	if sum.StreakLabel() != "no streak" {
		t.Errorf("StreakLabel = %q", sum.StreakLabel())
	}
}

func TestBuildSummary_SuccessRateAndFire(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s = RecordRound(s, perfectResult(3), 3, "sample_size")
	}
	s = RecordRound(s, partialResult(0, 3), 3, "sample_size")
	s = RecordRound(s, perfectResult(3), 3, "sample_size")
	s = RecordRound(s, perfectResult(3), 3, "sample_size")
	s = RecordRound(s, perfectResult(3), 3, "sample_size")

	sum := BuildSummary(s)
	// 18 exact out of 21.
	if math.Abs(sum.SuccessRate-18.0/21.0*100) > 1e-9 {
		t.Errorf("SuccessRate = %f", sum.SuccessRate)
	}
	if !sum.OnFire {
		t.Error("expected on fire at streak 3")
	}
	if !strings.Contains(sum.StreakLabel(), "on fire") {
		t.Errorf("StreakLabel = %q", sum.StreakLabel())
	}
	if sum.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3", sum.BestStreak)
	}
}

func TestNextStreakMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 5},
		{4, 5},
		{5, 10},
		{12, 15},
		{19, 20},
		{20, 25},
		{24, 25},
		{25, 30},
		{42, 45},
	}
	for _, tt := range tests {
		if got := NextStreakMilestone(tt.current); got != tt.want {
			t.Errorf("NextStreakMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestIsStreakMilestone(t *testing.T) {
	for streak, want := range map[int]bool{0: false, 1: false, 5: true, 6: false, 10: true, 20: true, 25: true, 26: false} {
		if got := IsStreakMilestone(streak); got != want {
			t.Errorf("IsStreakMilestone(%d) = %v, want %v", streak, got, want)
		}
	}
}
