// Package ranking assigns statistically correct ranks to a round of vote
// records and scores a learner's submitted order against them.
package ranking

import (
	"fmt"
	"sort"

	"github.com/feedrank/feedrank/internal/wilson"
)

// Rank computes the Wilson lower bound for every record and assigns ranks
// 1..N by descending score. Ties keep input order, so the first-seen record
// gets the better rank. The returned items are in input order.
func Rank(records []VoteRecord, c wilson.Confidence) ([]ScoredItem, error) {
	seen := make(map[int]bool, len(records))
	items := make([]ScoredItem, len(records))

	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = true

		score, err := wilson.LowerBound(uint64(r.Upvotes), uint64(r.Downvotes), c)
		if err != nil {
			return nil, fmt.Errorf("score item %d: %w", r.ID, err)
		}
		items[i] = ScoredItem{VoteRecord: r, WilsonScore: score}
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return items[order[a]].WilsonScore > items[order[b]].WilsonScore
	})
	for rank, idx := range order {
		items[idx].ActualRank = rank + 1
	}

	return items, nil
}

// ByActualRank returns a copy of items sorted best to worst.
func ByActualRank(items []ScoredItem) []ScoredItem {
	out := make([]ScoredItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ActualRank < out[j].ActualRank
	})
	return out
}

// NaiveOrder returns item ids ordered by raw approval ratio, highest first.
// Ties keep input order. This is the ordering the game teaches learners to
// distrust.
func NaiveOrder(items []ScoredItem) []int {
	sorted := make([]ScoredItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Ratio() > sorted[j].Ratio()
	})
	ids := make([]int, len(sorted))
	for i, it := range sorted {
		ids[i] = it.ID
	}
	return ids
}

// Disagrees reports whether the naive ratio order differs from the Wilson
// order for the given items.
func Disagrees(items []ScoredItem) bool {
	naive := NaiveOrder(items)
	for i, it := range ByActualRank(items) {
		if naive[i] != it.ID {
			return true
		}
	}
	return false
}

// Arrange reorders items to match a submitted order of ids. The submission
// must contain every item id exactly once.
func Arrange(items []ScoredItem, submission []int) ([]ScoredItem, error) {
	if err := ValidateSubmission(items, submission); err != nil {
		return nil, err
	}

	byID := make(map[int]ScoredItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	out := make([]ScoredItem, len(submission))
	for i, id := range submission {
		out[i] = byID[id]
	}
	return out, nil
}

// ValidateSubmission checks that submission is a permutation of the item ids.
func ValidateSubmission(items []ScoredItem, submission []int) error {
	if len(submission) != len(items) {
		return fmt.Errorf("%w: got %d ids, want %d", ErrIncompleteSubmission, len(submission), len(items))
	}

	known := make(map[int]bool, len(items))
	for _, it := range items {
		known[it.ID] = true
	}

	used := make(map[int]bool, len(submission))
	for _, id := range submission {
		if !known[id] {
			return fmt.Errorf("%w: unknown id %d", ErrIncompleteSubmission, id)
		}
		if used[id] {
			return fmt.Errorf("%w: id %d submitted twice", ErrIncompleteSubmission, id)
		}
		used[id] = true
	}
	return nil
}
