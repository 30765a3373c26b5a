// Package wilson computes the Wilson score confidence interval for a
// Bernoulli sample of upvotes and downvotes.
//
// The lower bound of the interval is the ranking score used throughout
// feedrank: it is deliberately pessimistic about small samples, so an item
// with 19 of 20 positive votes ranks below one with 178 of 200.
package wilson

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedConfidence is returned for confidence levels that have no
// tabulated z-value.
var ErrUnsupportedConfidence = errors.New("unsupported confidence level")

// Confidence is a two-sided confidence level.
type Confidence float64

const (
	Confidence95 Confidence = 0.95
	Confidence90 Confidence = 0.90
)

// DefaultConfidence is the level used when none is configured.
const DefaultConfidence = Confidence95

// zValues maps each supported level to its standard normal quantile.
var zValues = map[Confidence]float64{
	Confidence95: 1.96,
	Confidence90: 1.64485,
}

// ParseConfidence converts a raw level such as 0.95 into a Confidence.
func ParseConfidence(level float64) (Confidence, error) {
	c := Confidence(level)
	if _, ok := zValues[c]; !ok {
		return 0, fmt.Errorf("%w: %v (supported: 0.95, 0.90)", ErrUnsupportedConfidence, level)
	}
	return c, nil
}

// Z returns the z-value for the level.
func (c Confidence) Z() (float64, error) {
	z, ok := zValues[c]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedConfidence, float64(c))
	}
	return z, nil
}

func (c Confidence) String() string {
	return fmt.Sprintf("%.0f%%", float64(c)*100)
}

// Bounds is the full Wilson interval for one vote pair.
type Bounds struct {
	LowerBound      float64
	UpperBound      float64
	PointEstimate   float64 // upvotes / n
	ConfidenceRange float64 // UpperBound - LowerBound before clamping
	SampleSize      uint64
}

// LowerBound returns the lower bound of the Wilson score interval.
// It returns exactly 0 when there are no votes.
func LowerBound(upvotes, downvotes uint64, c Confidence) (float64, error) {
	b, err := Interval(upvotes, downvotes, c)
	if err != nil {
		return 0, err
	}
	return b.LowerBound, nil
}

// MustLowerBound is LowerBound at the default 95% level. The default level
// is always supported, so it never fails.
func MustLowerBound(upvotes, downvotes uint64) float64 {
	lb, err := LowerBound(upvotes, downvotes, DefaultConfidence)
	if err != nil {
		panic(err)
	}
	return lb
}

// Interval computes center ± margin for the vote pair.
func Interval(upvotes, downvotes uint64, c Confidence) (Bounds, error) {
	z, err := c.Z()
	if err != nil {
		return Bounds{}, err
	}

	n := upvotes + downvotes
	if n == 0 {
		return Bounds{}, nil
	}

	nf := float64(n)
	phat := float64(upvotes) / nf
	z2 := z * z
	denom := 1 + z2/nf

	center := (phat + z2/(2*nf)) / denom
	margin := z * math.Sqrt((phat*(1-phat)+z2/(4*nf))/nf) / denom

	return Bounds{
		LowerBound:      clamp(center-margin, 0, phat),
		UpperBound:      clamp(center+margin, phat, 1),
		PointEstimate:   phat,
		ConfidenceRange: 2 * margin,
		SampleSize:      n,
	}, nil
}

// Ratio is the naive approval ratio upvotes / (upvotes + downvotes), or 0
// when there are no votes.
func Ratio(upvotes, downvotes uint64) float64 {
	n := upvotes + downvotes
	if n == 0 {
		return 0
	}
	return float64(upvotes) / float64(n)
}

// clamp absorbs floating-point residue at the edges. The interval always
// contains phat, so an all-downvote sample has a lower bound of exactly 0
// rather than 2.8e-17.
func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
