package ranking

import (
	"errors"
	"fmt"

	"github.com/feedrank/feedrank/internal/wilson"
)

var (
	// ErrInvalidVoteCounts is returned for negative upvote or downvote counts.
	ErrInvalidVoteCounts = errors.New("invalid vote counts")
	// ErrIncompleteSubmission is returned when a submitted order is not a
	// permutation of the round's item ids.
	ErrIncompleteSubmission = errors.New("incomplete submission")
	// ErrDuplicateID is returned when two vote records in a round share an id.
	ErrDuplicateID = errors.New("duplicate item id")
	// ErrEmptyRound is returned when scoring a round with no items.
	ErrEmptyRound = errors.New("round has no items")
)

// VoteRecord is one rankable item: an id plus its vote counts.
type VoteRecord struct {
	ID        int `json:"id" yaml:"id"`
	Upvotes   int `json:"upvotes" yaml:"upvotes"`
	Downvotes int `json:"downvotes" yaml:"downvotes"`
}

// NewVoteRecord validates the counts and returns a VoteRecord.
func NewVoteRecord(id, upvotes, downvotes int) (VoteRecord, error) {
	v := VoteRecord{ID: id, Upvotes: upvotes, Downvotes: downvotes}
	if err := v.Validate(); err != nil {
		return VoteRecord{}, err
	}
	return v, nil
}

// Validate reports ErrInvalidVoteCounts if either count is negative.
func (v VoteRecord) Validate() error {
	if v.Upvotes < 0 || v.Downvotes < 0 {
		return fmt.Errorf("%w: item %d has %d up / %d down", ErrInvalidVoteCounts, v.ID, v.Upvotes, v.Downvotes)
	}
	return nil
}

// Total returns upvotes + downvotes.
func (v VoteRecord) Total() int {
	return v.Upvotes + v.Downvotes
}

// Ratio returns the naive approval ratio.
func (v VoteRecord) Ratio() float64 {
	return wilson.Ratio(uint64(v.Upvotes), uint64(v.Downvotes))
}

// ScoredItem is a VoteRecord annotated with its Wilson score and its
// statistically correct rank (1 = best).
type ScoredItem struct {
	VoteRecord
	WilsonScore float64 `json:"wilsonScore"`
	ActualRank  int     `json:"actualRank"`
}

// Placement describes how one item fared in a scored submission.
type Placement struct {
	ID         int
	UserRank   int
	ActualRank int
	Award      int
}

// Exact reports whether the item was placed at its actual rank.
func (p Placement) Exact() bool {
	return p.UserRank == p.ActualRank
}

// ScoreResult is the outcome of scoring one submission.
type ScoreResult struct {
	ExactMatches int
	TotalScore   int
	MaxScore     int
	Placements   []Placement
}

// Perfect reports whether every item was placed at its actual rank.
func (r ScoreResult) Perfect() bool {
	return len(r.Placements) > 0 && r.ExactMatches == len(r.Placements)
}

// ItemCount returns the number of scored items.
func (r ScoreResult) ItemCount() int {
	return len(r.Placements)
}
