package session

import (
	"testing"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/ranking"
)

func perfectResult(n int) ranking.ScoreResult {
	return ranking.ScoreResult{ExactMatches: n, TotalScore: n * 3, MaxScore: n * 3, Placements: make([]ranking.Placement, n)}
}

func partialResult(exact, n int) ranking.ScoreResult {
	return ranking.ScoreResult{ExactMatches: exact, TotalScore: exact * 3, MaxScore: n * 3, Placements: make([]ranking.Placement, n)}
}

func TestNew(t *testing.T) {
	s := New()
	if s.ID == "" {
		t.Error("expected a session ID")
	}
	if s.Phase() != PhaseFresh {
		t.Errorf("Phase = %s, want fresh", s.Phase())
	}
	if s.Difficulty != catalog.Beginner {
		t.Errorf("Difficulty = %s, want beginner", s.Difficulty)
	}
	if s.ConceptsLearned == nil {
		t.Error("ConceptsLearned should be initialized")
	}
}

func TestReset(t *testing.T) {
	s := RecordRound(New(), perfectResult(3), 3, "sample_size")
	r := s.Reset()

	if r.ID == s.ID {
		t.Error("reset should assign a new session ID")
	}
	if r.RoundsPlayed != 0 || r.TotalScore != 0 || r.Streak != 0 || len(r.ConceptsLearned) != 0 {
		t.Errorf("reset session not fresh: %+v", r)
	}
}

func TestRecordRound_Perfect(t *testing.T) {
	s := RecordRound(New(), perfectResult(3), 3, "sample_size")

	if s.RoundsPlayed != 1 {
		t.Errorf("RoundsPlayed = %d, want 1", s.RoundsPlayed)
	}
	if s.TotalScore != 3 || s.MaxPossibleScore != 3 {
		t.Errorf("score = %d/%d, want 3/3", s.TotalScore, s.MaxPossibleScore)
	}
	if s.Points != 9 || s.MaxPoints != 9 {
		t.Errorf("points = %d/%d, want 9/9", s.Points, s.MaxPoints)
	}
	if s.Streak != 1 || s.ConsecutiveCorrect != 1 {
		t.Errorf("streak = %d, consecutive = %d, want 1, 1", s.Streak, s.ConsecutiveCorrect)
	}
	if !s.ConceptsLearned["sample_size"] {
		t.Error("concept should be learned after a perfect round")
	}
	if s.Phase() != PhaseInProgress {
		t.Errorf("Phase = %s, want in-progress", s.Phase())
	}
}

func TestRecordRound_ImperfectResetsStreak(t *testing.T) {
	s := New()
	s = RecordRound(s, perfectResult(3), 3, "sample_size")
	s = RecordRound(s, perfectResult(3), 3, "perfect_scores")
	s = RecordRound(s, partialResult(1, 3), 3, "similar_ratios")

	if s.Streak != 0 || s.ConsecutiveCorrect != 0 {
		t.Errorf("streak = %d, consecutive = %d, want 0, 0", s.Streak, s.ConsecutiveCorrect)
	}
	if s.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", s.BestStreak)
	}
	if s.ConceptsLearned["similar_ratios"] {
		t.Error("concept should not be learned from an imperfect round")
	}
	if s.TotalScore != 7 || s.MaxPossibleScore != 9 {
		t.Errorf("score = %d/%d, want 7/9", s.TotalScore, s.MaxPossibleScore)
	}
}

func TestRecordRound_DoesNotMutateInput(t *testing.T) {
	before := New()
	after := RecordRound(before, perfectResult(3), 3, "high_volume")

	if before.RoundsPlayed != 0 || len(before.ConceptsLearned) != 0 {
		t.Errorf("input session was modified: %+v", before)
	}
	if !after.ConceptsLearned["high_volume"] {
		t.Error("expected concept in returned session")
	}
}

func TestRecordRound_PerfectStreakProperty(t *testing.T) {
	// k consecutive perfect rounds give streak k; any imperfect round resets it.
	for k := 1; k <= 12; k++ {
		s := New()
		for i := 0; i < k; i++ {
			s = RecordRound(s, perfectResult(3), 3, "sample_size")
		}
		if s.Streak != k || s.ConsecutiveCorrect != k {
			t.Fatalf("after %d perfect rounds streak = %d, consecutive = %d", k, s.Streak, s.ConsecutiveCorrect)
		}
		s = RecordRound(s, partialResult(2, 3), 3, "sample_size")
		if s.Streak != 0 || s.ConsecutiveCorrect != 0 {
			t.Fatalf("imperfect round after %d left streak = %d", k, s.Streak)
		}
	}
}

func TestRecordRound_EmptyRoundIsNotPerfect(t *testing.T) {
	s := RecordRound(New(), ranking.ScoreResult{}, 0, "sample_size")
	if s.Streak != 0 {
		t.Errorf("Streak = %d, want 0", s.Streak)
	}
	if s.ConceptsLearned["sample_size"] {
		t.Error("empty round should not teach a concept")
	}
}

func TestConcepts_Sorted(t *testing.T) {
	s := New()
	s = RecordRound(s, perfectResult(3), 3, "similar_ratios")
	s = RecordRound(s, perfectResult(3), 3, "high_volume")
	s = RecordRound(s, perfectResult(3), 3, "perfect_scores")

	got := s.Concepts()
	want := []string{"high_volume", "perfect_scores", "similar_ratios"}
	if len(got) != len(want) {
		t.Fatalf("Concepts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Concepts = %v, want %v", got, want)
			break
		}
	}
}
