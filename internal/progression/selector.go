// Package progression decides which difficulty and example set a learner
// sees next, based only on their session counters and an injected random
// source.
package progression

import (
	"github.com/feedrank/feedrank/internal/catalog"
)

// Rand is the random source used for difficulty mixes and synthesis.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Source supplies example sets. *catalog.Catalog implements it.
type Source interface {
	PickCurated(d catalog.Difficulty) catalog.ExampleSet
	Synthesize(c catalog.Concept, d catalog.Difficulty) catalog.ExampleSet
}

// Selector picks the next round's difficulty and example set.
type Selector struct {
	Policy Policy
	source Source
	rng    Rand
}

// NewSelector creates a Selector.
func NewSelector(policy Policy, source Source, rng Rand) *Selector {
	return &Selector{Policy: policy, source: source, rng: rng}
}

// NextDifficulty applies the progression schedule:
//
//   - no rounds played: beginner
//   - a perfect streak of FastTrackStreak: intermediate, or advanced from
//     FastTrackAdvancedAt rounds on
//   - fewer than BeginnerUntil rounds: beginner
//   - fewer than MixedUntil rounds: beginner or intermediate
//   - otherwise: intermediate or advanced
func (s *Selector) NextDifficulty(roundsPlayed, consecutiveCorrect int) catalog.Difficulty {
	p := s.Policy
	switch {
	case roundsPlayed <= 0:
		return catalog.Beginner
	case consecutiveCorrect >= p.FastTrackStreak:
		if roundsPlayed < p.FastTrackAdvancedAt {
			return catalog.Intermediate
		}
		return catalog.Advanced
	case roundsPlayed < p.BeginnerUntil:
		return catalog.Beginner
	case roundsPlayed < p.MixedUntil:
		if s.rng.Float64() < p.MixedIntermediateRate {
			return catalog.Intermediate
		}
		return catalog.Beginner
	default:
		if s.rng.Float64() < p.AdvancedRate {
			return catalog.Advanced
		}
		return catalog.Intermediate
	}
}

// NextExample picks the difficulty, then serves either a curated set or a
// synthesized one. Synthesis happens with probability SynthesizeRate, or
// whenever the curated pick teaches a concept the learner has already
// mastered while an unmastered concept remains. A synthesized set targets
// the first unmastered concept in a randomly rotated order.
func (s *Selector) NextExample(roundsPlayed, consecutiveCorrect int, mastered map[string]bool) catalog.ExampleSet {
	d := s.NextDifficulty(roundsPlayed, consecutiveCorrect)
	curated := s.source.PickCurated(d)

	target, hasUnmastered := s.targetConcept(mastered)
	synthesize := s.rng.Float64() < s.Policy.SynthesizeRate
	if !synthesize && hasUnmastered && mastered[curated.ConceptName()] {
		synthesize = true
	}

	if !synthesize {
		return curated
	}
	return s.source.Synthesize(target, d)
}

// targetConcept walks the concepts from a random starting point and returns
// the first one not yet mastered. When all are mastered it returns the
// starting concept and false.
func (s *Selector) targetConcept(mastered map[string]bool) (catalog.Concept, bool) {
	all := catalog.Concepts()
	start := s.rng.IntN(len(all))
	for i := range all {
		c := all[(start+i)%len(all)]
		if !mastered[c.Name()] {
			return c, true
		}
	}
	return all[start], false
}
