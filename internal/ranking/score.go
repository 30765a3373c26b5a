package ranking

// Weights controls partial credit in weighted scoring.
type Weights struct {
	// Exact is awarded when the user rank equals the actual rank.
	Exact int `yaml:"exact"`
	// Adjacent is awarded when the user rank is off by one.
	Adjacent int `yaml:"adjacent"`
}

// DefaultWeights awards 3 for an exact placement and 1 for an adjacent one.
func DefaultWeights() Weights {
	return Weights{Exact: 3, Adjacent: 1}
}

// Scorer compares a submitted order with the actual Wilson ranks.
type Scorer struct {
	Weights Weights
}

// NewScorer creates a Scorer with the given weights.
func NewScorer(w Weights) Scorer {
	return Scorer{Weights: w}
}

// Score scores items given in the user's submitted order: position i is
// user rank i+1. Items must already carry their actual ranks.
func (s Scorer) Score(items []ScoredItem) (ScoreResult, error) {
	if len(items) == 0 {
		return ScoreResult{}, ErrEmptyRound
	}

	res := ScoreResult{
		MaxScore:   len(items) * s.Weights.Exact,
		Placements: make([]Placement, len(items)),
	}

	for i, it := range items {
		p := Placement{
			ID:         it.ID,
			UserRank:   i + 1,
			ActualRank: it.ActualRank,
		}
		switch diff := p.UserRank - p.ActualRank; {
		case diff == 0:
			p.Award = s.Weights.Exact
			res.ExactMatches++
		case diff == 1 || diff == -1:
			p.Award = s.Weights.Adjacent
		}
		res.TotalScore += p.Award
		res.Placements[i] = p
	}

	return res, nil
}

// ExactMatches counts the positions where the user rank equals the actual
// rank. It is the unweighted score used by session totals.
func ExactMatches(items []ScoredItem) int {
	n := 0
	for i, it := range items {
		if i+1 == it.ActualRank {
			n++
		}
	}
	return n
}
