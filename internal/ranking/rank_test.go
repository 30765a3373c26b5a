package ranking

import (
	"errors"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/feedrank/feedrank/internal/wilson"
)

func canonicalRecords() []VoteRecord {
	return []VoteRecord{
		{ID: 1, Upvotes: 19, Downvotes: 1},
		{ID: 2, Upvotes: 178, Downvotes: 22},
		{ID: 3, Upvotes: 95, Downvotes: 15},
	}
}

func TestNewVoteRecord(t *testing.T) {
	if _, err := NewVoteRecord(1, 3, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		up, down int
	}{
		{"negative upvotes", -1, 4},
		{"negative downvotes", 4, -1},
		{"both negative", -2, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVoteRecord(1, tt.up, tt.down)
			if !errors.Is(err, ErrInvalidVoteCounts) {
				t.Fatalf("err = %v, want ErrInvalidVoteCounts", err)
			}
		})
	}
}

func TestRank_CanonicalScenario(t *testing.T) {
	items, err := Rank(canonicalRecords(), wilson.Confidence95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[int]int{2: 1, 3: 2, 1: 3}
	for _, it := range items {
		if it.ActualRank != want[it.ID] {
			t.Errorf("item %d rank = %d, want %d", it.ID, it.ActualRank, want[it.ID])
		}
	}

	// Items come back in input order.
	for i, it := range items {
		if it.ID != i+1 {
			t.Errorf("items[%d].ID = %d, want %d", i, it.ID, i+1)
		}
	}
}

func TestRank_TiesBrokenByInputOrder(t *testing.T) {
	records := []VoteRecord{
		{ID: 7, Upvotes: 10, Downvotes: 2},
		{ID: 3, Upvotes: 40, Downvotes: 1},
		{ID: 9, Upvotes: 10, Downvotes: 2},
		{ID: 4, Upvotes: 0, Downvotes: 0},
		{ID: 5, Upvotes: 0, Downvotes: 0},
	}
	items, err := Rank(records, wilson.Confidence95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[int]int{}
	for _, it := range items {
		got[it.ID] = it.ActualRank
	}
	want := map[int]int{3: 1, 7: 2, 9: 3, 4: 4, 5: 5}
	for id, rank := range want {
		if got[id] != rank {
			t.Errorf("item %d rank = %d, want %d", id, got[id], rank)
		}
	}
}

func TestRank_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.IntN(8)
		records := make([]VoteRecord, n)
		for i := range records {
			records[i] = VoteRecord{
				ID:        i + 100,
				Upvotes:   rng.IntN(6),
				Downvotes: rng.IntN(6),
			}
		}

		items, err := Rank(records, wilson.Confidence95)
		if err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}

		ranks := make([]int, n)
		for i, it := range items {
			ranks[i] = it.ActualRank
		}
		sort.Ints(ranks)
		for i, r := range ranks {
			if r != i+1 {
				t.Fatalf("trial %d: ranks = %v, want permutation of 1..%d", trial, ranks, n)
			}
		}
	}
}

func TestRank_RejectsInvalidInput(t *testing.T) {
	_, err := Rank([]VoteRecord{{ID: 1, Upvotes: -3}}, wilson.Confidence95)
	if !errors.Is(err, ErrInvalidVoteCounts) {
		t.Errorf("negative counts: err = %v, want ErrInvalidVoteCounts", err)
	}

	_, err = Rank([]VoteRecord{{ID: 1}, {ID: 1}}, wilson.Confidence95)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate ids: err = %v, want ErrDuplicateID", err)
	}

	_, err = Rank(canonicalRecords(), wilson.Confidence(0.5))
	if !errors.Is(err, wilson.ErrUnsupportedConfidence) {
		t.Errorf("bad confidence: err = %v, want ErrUnsupportedConfidence", err)
	}
}

func TestNaiveOrderAndDisagrees(t *testing.T) {
	items, err := Rank(canonicalRecords(), wilson.Confidence95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	naive := NaiveOrder(items)
	want := []int{1, 2, 3}
	for i := range want {
		if naive[i] != want[i] {
			t.Fatalf("NaiveOrder = %v, want %v", naive, want)
		}
	}
	if !Disagrees(items) {
		t.Error("expected naive and Wilson orders to disagree")
	}

	agreeing, err := Rank([]VoteRecord{
		{ID: 1, Upvotes: 900, Downvotes: 100},
		{ID: 2, Upvotes: 50, Downvotes: 50},
	}, wilson.Confidence95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Disagrees(agreeing) {
		t.Error("expected orders to agree")
	}
}

func TestArrange(t *testing.T) {
	items, err := Rank(canonicalRecords(), wilson.Confidence95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	arranged, err := Arrange(items, []int{3, 1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, id := range []int{3, 1, 2} {
		if arranged[i].ID != id {
			t.Errorf("arranged[%d].ID = %d, want %d", i, arranged[i].ID, id)
		}
	}
}

func TestArrange_RejectsNonPermutations(t *testing.T) {
	items, err := Rank(canonicalRecords(), wilson.Confidence95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name       string
		submission []int
	}{
		{"missing id", []int{1, 2}},
		{"duplicate id", []int{1, 2, 2}},
		{"unknown id", []int{1, 2, 4}},
		{"too many", []int{1, 2, 3, 1}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Arrange(items, tt.submission)
			if !errors.Is(err, ErrIncompleteSubmission) {
				t.Fatalf("err = %v, want ErrIncompleteSubmission", err)
			}
		})
	}
}
