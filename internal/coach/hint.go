// Package coach produces the learner-facing guidance around a round:
// hints before submitting, warnings about the current order, and an
// explanation after scoring.
package coach

import (
	"fmt"
	"slices"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/ranking"
)

// Thresholds used by Issues.
const (
	// SmallSample is the vote count below which an item's ratio is treated
	// as unreliable.
	SmallSample = 10
	// LargeSample is the vote count from which an item counts as well
	// established.
	LargeSample = 100
)

// Hint returns a concept-specific nudge for set.
func Hint(set catalog.ExampleSet) string {
	switch set.Concept.(type) {
	case catalog.SampleSize:
		return "Compare how many people voted on each item, not just the percentage. Which rating would you trust to hold up?"
	case catalog.PerfectScores:
		return "A 100% rating from a handful of votes can happen by luck. How many votes does each perfect score rest on?"
	case catalog.SimilarRatios:
		return "The percentages are close. When ratios nearly tie, the item with more votes is the more certain one."
	case catalog.HighVolume:
		return "Even large vote counts leave some uncertainty. Look at both the gap between percentages and the gap between vote counts."
	default:
		return "Think about how confident you can be in each rating, not only how high it is."
	}
}

// Issues inspects the learner's current order (ids, best first) and
// returns warnings about placements that trust small samples. Unknown ids
// are ignored.
func Issues(items []ranking.ScoredItem, order []int) []string {
	byID := make(map[int]ranking.ScoredItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	placed := make([]ranking.ScoredItem, 0, len(order))
	for _, id := range order {
		if it, ok := byID[id]; ok {
			placed = append(placed, it)
		}
	}
	if len(placed) == 0 {
		return nil
	}

	var issues []string

	top := placed[0]
	if top.Total() < SmallSample {
		for _, other := range placed[1:] {
			if other.Total() > top.Total() && (other.Total() >= SmallSample*top.Total() || other.Total() >= LargeSample) {
				issues = append(issues, fmt.Sprintf(
					"Item %d is on top with only %d votes, while item %d has %d. Small samples are unreliable.",
					top.ID, top.Total(), other.ID, other.Total()))
				break
			}
		}
	}

	for i, hi := range placed {
		if hi.Downvotes != 0 || hi.Total() >= SmallSample || hi.Total() == 0 {
			continue
		}
		for _, lo := range placed[i+1:] {
			if lo.Total() >= LargeSample {
				issues = append(issues, fmt.Sprintf(
					"Item %d's perfect score comes from just %d votes but sits above item %d with %d votes.",
					hi.ID, hi.Total(), lo.ID, lo.Total()))
				break
			}
		}
	}

	if len(placed) == len(items) && len(items) > 1 && slices.Equal(order, ranking.NaiveOrder(items)) {
		issues = append(issues, "This is exactly the order by percentage. Does sample size change anything?")
	}

	return issues
}
