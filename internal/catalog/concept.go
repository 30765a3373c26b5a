package catalog

import (
	"fmt"
	"strings"
)

// Concept is the statistical idea an example set teaches. The set of
// concepts is closed: only the variants in this package implement it, and
// each owns the synthesis of scenarios biased toward itself.
type Concept interface {
	// Name is the stable identifier, e.g. "sample_size".
	Name() string
	// Title is a human-readable label.
	Title() string
	// Insight explains why Wilson order differs from naive order for
	// scenarios built around this concept.
	Insight() string

	synthesize(r Rand, cfg SynthConfig, scale float64) [3]draft
}

// SampleSize teaches that more votes buy more confidence.
type SampleSize struct{}

// PerfectScores teaches that a flawless ratio on a handful of votes is weak
// evidence.
type PerfectScores struct{}

// SimilarRatios teaches that volume breaks near-ties between ratios.
type SimilarRatios struct{}

// HighVolume teaches that even at scale small ratio gaps and sample sizes
// still move ranks.
type HighVolume struct{}

func (SampleSize) Name() string    { return "sample_size" }
func (PerfectScores) Name() string { return "perfect_scores" }
func (SimilarRatios) Name() string { return "similar_ratios" }
func (HighVolume) Name() string    { return "high_volume" }

func (SampleSize) Title() string    { return "Sample Size" }
func (PerfectScores) Title() string { return "Perfect Scores" }
func (SimilarRatios) Title() string { return "Similar Ratios" }
func (HighVolume) Title() string    { return "High Volume" }

func (SampleSize) Insight() string {
	return "A slightly lower approval rate backed by many more votes is a safer bet than a high rate from a few votes. Wilson ranks certainty, not just the percentage."
}

func (PerfectScores) Insight() string {
	return "A perfect score from a handful of votes could easily be luck. Wilson needs volume before it trusts a 100% rating, so a near-perfect item with many votes wins."
}

func (SimilarRatios) Insight() string {
	return "When approval rates are close, the item with more votes has the narrower confidence interval and therefore the higher lower bound."
}

func (HighVolume) Insight() string {
	return "Even with hundreds or thousands of votes, a small percentage gap or a smaller sample still shifts the lower bound enough to change the order."
}

// Concepts returns every concept in display order.
func Concepts() []Concept {
	return []Concept{SampleSize{}, PerfectScores{}, SimilarRatios{}, HighVolume{}}
}

// ParseConcept returns the concept with the given name.
func ParseConcept(name string) (Concept, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	for _, c := range Concepts() {
		if c.Name() == n {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownConcept, name)
}

// SampleSize: one high-ratio item on a tiny sample, one slightly lower ratio
// on a much larger sample, and one intermediate item.
func (SampleSize) synthesize(r Rand, cfg SynthConfig, scale float64) [3]draft {
	t := cfg.SampleSize
	small := t.SmallRatio.draw(r)
	return [3]draft{
		{volume: t.SmallVolume.scaled(r, 1), ratio: small},
		{volume: t.LargeVolume.scaled(r, scale), ratio: small - t.RatioDrop.draw(r)},
		{volume: t.MidVolume.scaled(r, scale), ratio: t.MidRatio.draw(r)},
	}
}

// PerfectScores: two flawless items on small samples against one steady
// item with many votes.
func (PerfectScores) synthesize(r Rand, cfg SynthConfig, scale float64) [3]draft {
	t := cfg.PerfectScores
	return [3]draft{
		{volume: t.TinyVolume.scaled(r, 1), ratio: 1},
		{volume: t.SmallVolume.scaled(r, 1), ratio: 1},
		{volume: t.SteadyVolume.scaled(r, scale), ratio: t.SteadyRatio.draw(r)},
	}
}

// SimilarRatios: three ratios around a shared base, the highest on the
// smallest sample.
func (SimilarRatios) synthesize(r Rand, cfg SynthConfig, scale float64) [3]draft {
	t := cfg.SimilarRatios
	base := t.BaseRatio.draw(r)
	spread := t.Spread.draw(r)
	return [3]draft{
		{volume: t.SmallVolume.scaled(r, 1), ratio: base + spread},
		{volume: t.LargeVolume.scaled(r, scale), ratio: base},
		{volume: t.MidVolume.scaled(r, scale), ratio: base - spread},
	}
}

// HighVolume: two large samples a few points apart and one near-perfect
// item with comparatively few votes.
func (HighVolume) synthesize(r Rand, cfg SynthConfig, scale float64) [3]draft {
	t := cfg.HighVolume
	base := t.BaseRatio.draw(r)
	return [3]draft{
		{volume: t.LargeVolume.scaled(r, scale), ratio: base},
		{volume: t.MidVolume.scaled(r, scale), ratio: base + t.Gap.draw(r)},
		{volume: t.SmallVolume.scaled(r, 1), ratio: t.NearPerfect.draw(r)},
	}
}
