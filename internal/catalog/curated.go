package catalog

import "github.com/feedrank/feedrank/internal/ranking"

// curatedSets are hand-picked scenarios in which ranking by raw approval
// ratio and ranking by Wilson lower bound disagree. Item ids are 1..3 in
// display order.
var curatedSets = []ExampleSet{
	{
		ID:         1,
		Title:      "Three votes, all up",
		Difficulty: Beginner,
		Concept:    SampleSize{},
		VoteRecords: []ranking.VoteRecord{
			{ID: 1, Upvotes: 3, Downvotes: 0},
			{ID: 2, Upvotes: 30, Downvotes: 3},
			{ID: 3, Upvotes: 15, Downvotes: 5},
		},
		KeyInsight: "Three upvotes out of three looks flawless, but it is far less certain than 30 of 33. Even 15 of 20 carries more evidence than the tiny perfect post.",
	},
	{
		ID:         2,
		Title:      "Perfect but thin",
		Difficulty: Beginner,
		Concept:    PerfectScores{},
		VoteRecords: []ranking.VoteRecord{
			{ID: 1, Upvotes: 5, Downvotes: 0},
			{ID: 2, Upvotes: 95, Downvotes: 5},
			{ID: 3, Upvotes: 28, Downvotes: 2},
		},
		KeyInsight: "Five perfect votes could be luck. A 95% rating across 100 votes and a 93% rating across 30 both earn more trust, so the perfect post drops to the bottom.",
	},
	{
		ID:         3,
		Title:      "Two kinds of perfect",
		Difficulty: Beginner,
		Concept:    PerfectScores{},
		VoteRecords: []ranking.VoteRecord{
			{ID: 1, Upvotes: 5, Downvotes: 0},
			{ID: 2, Upvotes: 15, Downvotes: 0},
			{ID: 3, Upvotes: 40, Downvotes: 2},
		},
		KeyInsight: "Both perfect posts lose to 40 of 42. Among the perfect ones, 15 votes beat 5 because every extra vote tightens the interval.",
	},
	{
		ID:         4,
		Title:      "Small numbers",
		Difficulty: Intermediate,
		Concept:    SampleSize{},
		VoteRecords: []ranking.VoteRecord{
			{ID: 1, Upvotes: 2, Downvotes: 0},
			{ID: 2, Upvotes: 4, Downvotes: 2},
			{ID: 3, Upvotes: 1, Downvotes: 0},
		},
		KeyInsight: "With a handful of votes chance dominates. A single upvote says almost nothing, so 4 of 6 edges it out despite the lower percentage.",
	},
	{
		ID:         5,
		Title:      "95% of 20 vs 89% of 200",
		Difficulty: Intermediate,
		Concept:    SimilarRatios{},
		VoteRecords: []ranking.VoteRecord{
			{ID: 1, Upvotes: 19, Downvotes: 1},
			{ID: 2, Upvotes: 178, Downvotes: 22},
			{ID: 3, Upvotes: 95, Downvotes: 15},
		},
		KeyInsight: "95% from 20 votes ranks last. 89% from 200 votes has the tightest interval and wins, and 86% from 110 votes still beats the small sample.",
	},
	{
		ID:         6,
		Title:      "Close calls",
		Difficulty: Intermediate,
		Concept:    SimilarRatios{},
		VoteRecords: []ranking.VoteRecord{
			{ID: 1, Upvotes: 48, Downvotes: 12},
			{ID: 2, Upvotes: 470, Downvotes: 130},
			{ID: 3, Upvotes: 9, Downvotes: 1},
		},
		KeyInsight: "80% and 78% are nearly identical, so the one with ten times the votes wins. The 90% post has only 10 votes and falls to last.",
	},
	{
		ID:         7,
		Title:      "Big numbers, small gaps",
		Difficulty: Intermediate,
		Concept:    HighVolume{},
		VoteRecords: []ranking.VoteRecord{
			{ID: 1, Upvotes: 88, Downvotes: 12},
			{ID: 2, Upvotes: 430, Downvotes: 70},
			{ID: 3, Upvotes: 7, Downvotes: 0},
		},
		KeyInsight: "Hundreds of votes at 86% outrank 100 votes at 88%, and seven perfect votes cannot compete with either.",
	},
	{
		ID:         8,
		Title:      "Thousands of votes",
		Difficulty: Advanced,
		Concept:    HighVolume{},
		VoteRecords: []ranking.VoteRecord{
			{ID: 1, Upvotes: 900, Downvotes: 100},
			{ID: 2, Upvotes: 800, Downvotes: 50},
			{ID: 3, Upvotes: 60, Downvotes: 1},
		},
		KeyInsight: "Even at this scale sample size matters. 60 of 61 has the best ratio, but 800 of 850 is more certain and takes first place.",
	},
	{
		ID:         9,
		Title:      "Crowded middle",
		Difficulty: Advanced,
		Concept:    HighVolume{},
		VoteRecords: []ranking.VoteRecord{
			{ID: 1, Upvotes: 1200, Downvotes: 300},
			{ID: 2, Upvotes: 310, Downvotes: 60},
			{ID: 3, Upvotes: 45, Downvotes: 5},
		},
		KeyInsight: "The three lower bounds sit within two points of each other. 84% of 370 edges out 90% of 50, and 80% of 1500 trails despite its huge sample.",
	},
	{
		ID:         10,
		Title:      "Perfect is not enough",
		Difficulty: Advanced,
		Concept:    PerfectScores{},
		VoteRecords: []ranking.VoteRecord{
			{ID: 1, Upvotes: 99, Downvotes: 1},
			{ID: 2, Upvotes: 49, Downvotes: 0},
			{ID: 3, Upvotes: 19, Downvotes: 1},
		},
		KeyInsight: "49 of 49 is impressive, yet 99 of 100 has twice the evidence. Doubling the sample outweighs a single downvote.",
	},
}

// Curated returns copies of all curated example sets.
func Curated() []ExampleSet {
	out := make([]ExampleSet, len(curatedSets))
	for i, s := range curatedSets {
		out[i] = s.clone()
	}
	return out
}

func maxCuratedID() int {
	m := 0
	for _, s := range curatedSets {
		if s.ID > m {
			m = s.ID
		}
	}
	return m
}
