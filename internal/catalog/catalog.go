// Package catalog holds the curated example sets and synthesizes new ones
// biased toward a concept.
package catalog

import (
	"sync"

	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/wilson"
)

// Rand is the random source used for picking and synthesizing sets.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// ExampleSet is one round's scenario.
type ExampleSet struct {
	ID          int
	Title       string
	Difficulty  Difficulty
	Concept     Concept
	VoteRecords []ranking.VoteRecord
	KeyInsight  string
	Synthesized bool
}

func (s ExampleSet) clone() ExampleSet {
	s.VoteRecords = append([]ranking.VoteRecord(nil), s.VoteRecords...)
	return s
}

// ConceptName returns the concept identifier, or "" if the set has none.
func (s ExampleSet) ConceptName() string {
	if s.Concept == nil {
		return ""
	}
	return s.Concept.Name()
}

// Catalog serves curated sets and synthesizes fresh ones. It is safe for
// concurrent use.
type Catalog struct {
	mu     sync.Mutex
	rng    Rand
	cfg    SynthConfig
	nextID int
}

// New creates a Catalog drawing randomness from rng.
func New(rng Rand, cfg SynthConfig) *Catalog {
	return &Catalog{
		rng:    rng,
		cfg:    cfg,
		nextID: maxCuratedID() + 1,
	}
}

// ForDifficulty returns copies of the curated sets at difficulty d.
func ForDifficulty(d Difficulty) []ExampleSet {
	var out []ExampleSet
	for _, s := range curatedSets {
		if s.Difficulty == d {
			out = append(out, s.clone())
		}
	}
	return out
}

// ByID returns the curated set with the given id.
func ByID(id int) (ExampleSet, bool) {
	for _, s := range curatedSets {
		if s.ID == id {
			return s.clone(), true
		}
	}
	return ExampleSet{}, false
}

// PickCurated returns a uniformly random curated set at difficulty d. When
// no curated set has that difficulty it returns the first curated set.
func (c *Catalog) PickCurated(d Difficulty) ExampleSet {
	matches := ForDifficulty(d)
	if len(matches) == 0 {
		return curatedSets[0].clone()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return matches[c.rng.IntN(len(matches))]
}

// Synthesize builds a fresh three-item set biased toward concept. It draws
// up to SynthConfig.MaxAttempts scenarios and keeps the first whose naive
// and Wilson orders disagree, or the last one drawn.
func (c *Catalog) Synthesize(concept Concept, d Difficulty) ExampleSet {
	c.mu.Lock()
	defer c.mu.Unlock()

	attempts := max(c.cfg.MaxAttempts, 1)
	scale := c.cfg.scale(d)

	var records []ranking.VoteRecord
	for i := 0; i < attempts; i++ {
		records = buildRecords(c.rng, concept.synthesize(c.rng, c.cfg, scale))
		items, err := ranking.Rank(records, wilson.DefaultConfidence)
		if err == nil && ranking.Disagrees(items) {
			break
		}
	}

	id := c.nextID
	c.nextID++

	return ExampleSet{
		ID:          id,
		Title:       concept.Title() + " (generated)",
		Difficulty:  d,
		Concept:     concept,
		VoteRecords: records,
		KeyInsight:  concept.Insight(),
		Synthesized: true,
	}
}
