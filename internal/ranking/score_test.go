package ranking

import (
	"errors"
	"testing"

	"github.com/feedrank/feedrank/internal/wilson"
)

func scoreSubmission(t *testing.T, s Scorer, submission []int) ScoreResult {
	t.Helper()
	items, err := Rank(canonicalRecords(), wilson.Confidence95)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	arranged, err := Arrange(items, submission)
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	res, err := s.Score(arranged)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	return res
}

func TestScore_CanonicalScenario(t *testing.T) {
	s := NewScorer(DefaultWeights())

	tests := []struct {
		name       string
		submission []int
		exact      int
		total      int
	}{
		// Actual order is 2, 3, 1.
		{"perfect", []int{2, 3, 1}, 3, 9},
		{"naive ratio order", []int{1, 2, 3}, 0, 2},
		{"swap bottom two", []int{2, 1, 3}, 1, 5},
		{"reversed", []int{1, 3, 2}, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := scoreSubmission(t, s, tt.submission)
			if res.ExactMatches != tt.exact {
				t.Errorf("ExactMatches = %d, want %d", res.ExactMatches, tt.exact)
			}
			if res.TotalScore != tt.total {
				t.Errorf("TotalScore = %d, want %d", res.TotalScore, tt.total)
			}
			if res.MaxScore != 9 {
				t.Errorf("MaxScore = %d, want 9", res.MaxScore)
			}
		})
	}
}

func TestScore_PerfectSubmission(t *testing.T) {
	res := scoreSubmission(t, NewScorer(DefaultWeights()), []int{2, 3, 1})
	if !res.Perfect() {
		t.Error("expected perfect result")
	}
	if res.ItemCount() != 3 {
		t.Errorf("ItemCount = %d, want 3", res.ItemCount())
	}
	for _, p := range res.Placements {
		if !p.Exact() || p.Award != 3 {
			t.Errorf("placement %+v: want exact with award 3", p)
		}
	}
}

func TestScore_Idempotent(t *testing.T) {
	items, err := Rank(canonicalRecords(), wilson.Confidence95)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	arranged, err := Arrange(items, []int{3, 2, 1})
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}

	s := NewScorer(DefaultWeights())
	first, err := s.Score(arranged)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	second, err := s.Score(arranged)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if first.TotalScore != second.TotalScore || first.ExactMatches != second.ExactMatches {
		t.Errorf("scores differ: %+v vs %+v", first, second)
	}
}

func TestScore_EmptyRound(t *testing.T) {
	_, err := NewScorer(DefaultWeights()).Score(nil)
	if !errors.Is(err, ErrEmptyRound) {
		t.Fatalf("err = %v, want ErrEmptyRound", err)
	}
}

func TestScore_CustomWeights(t *testing.T) {
	s := NewScorer(Weights{Exact: 5, Adjacent: 2})
	res := scoreSubmission(t, s, []int{2, 1, 3})

	// 2 is exact, 1 and 3 are each one off.
	if res.TotalScore != 9 {
		t.Errorf("TotalScore = %d, want 9", res.TotalScore)
	}
	if res.MaxScore != 15 {
		t.Errorf("MaxScore = %d, want 15", res.MaxScore)
	}
}

func TestScore_FarMissEarnsNothing(t *testing.T) {
	records := []VoteRecord{
		{ID: 1, Upvotes: 900, Downvotes: 100},
		{ID: 2, Upvotes: 90, Downvotes: 10},
		{ID: 3, Upvotes: 9, Downvotes: 1},
		{ID: 4, Upvotes: 1, Downvotes: 1},
	}
	items, err := Rank(records, wilson.Confidence95)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	arranged, err := Arrange(items, []int{4, 2, 3, 1})
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	res, err := NewScorer(DefaultWeights()).Score(arranged)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	awards := map[int]int{}
	for _, p := range res.Placements {
		awards[p.ID] = p.Award
	}
	if awards[4] != 0 || awards[1] != 0 {
		t.Errorf("far misses should earn nothing, got %v", awards)
	}
	if res.ExactMatches != 2 {
		t.Errorf("ExactMatches = %d, want 2", res.ExactMatches)
	}
}

func TestExactMatches(t *testing.T) {
	items, err := Rank(canonicalRecords(), wilson.Confidence95)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	arranged, err := Arrange(items, []int{2, 1, 3})
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	if got := ExactMatches(arranged); got != 1 {
		t.Errorf("ExactMatches = %d, want 1", got)
	}
}
