package catalog

import (
	"fmt"
	"math"

	"github.com/feedrank/feedrank/internal/ranking"
)

// Range is an inclusive float range sampled uniformly.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r Range) draw(rng Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func (r Range) validate(name string) error {
	if r.Min < 0 || r.Max > 1 || r.Min > r.Max {
		return fmt.Errorf("%s: ratio range [%g, %g] must satisfy 0 <= min <= max <= 1", name, r.Min, r.Max)
	}
	return nil
}

// IntRange is an inclusive vote-volume range sampled uniformly.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// scaled draws a volume and multiplies it by scale. The result is at least 1.
func (r IntRange) scaled(rng Rand, scale float64) int {
	v := r.Min
	if r.Max > r.Min {
		v += rng.IntN(r.Max - r.Min + 1)
	}
	v = int(math.Round(float64(v) * scale))
	if v < 1 {
		v = 1
	}
	return v
}

func (r IntRange) validate(name string) error {
	if r.Min < 1 || r.Min > r.Max {
		return fmt.Errorf("%s: volume range [%d, %d] must satisfy 1 <= min <= max", name, r.Min, r.Max)
	}
	return nil
}

// SampleSizeTuning shapes sample_size scenarios.
type SampleSizeTuning struct {
	SmallVolume IntRange `yaml:"small_volume"`
	SmallRatio  Range    `yaml:"small_ratio"`
	LargeVolume IntRange `yaml:"large_volume"`
	RatioDrop   Range    `yaml:"ratio_drop"`
	MidVolume   IntRange `yaml:"mid_volume"`
	MidRatio    Range    `yaml:"mid_ratio"`
}

// PerfectScoresTuning shapes perfect_scores scenarios.
type PerfectScoresTuning struct {
	TinyVolume   IntRange `yaml:"tiny_volume"`
	SmallVolume  IntRange `yaml:"small_volume"`
	SteadyVolume IntRange `yaml:"steady_volume"`
	SteadyRatio  Range    `yaml:"steady_ratio"`
}

// SimilarRatiosTuning shapes similar_ratios scenarios.
type SimilarRatiosTuning struct {
	BaseRatio   Range    `yaml:"base_ratio"`
	Spread      Range    `yaml:"spread"`
	SmallVolume IntRange `yaml:"small_volume"`
	MidVolume   IntRange `yaml:"mid_volume"`
	LargeVolume IntRange `yaml:"large_volume"`
}

// HighVolumeTuning shapes high_volume scenarios.
type HighVolumeTuning struct {
	BaseRatio   Range    `yaml:"base_ratio"`
	Gap         Range    `yaml:"gap"`
	NearPerfect Range    `yaml:"near_perfect"`
	LargeVolume IntRange `yaml:"large_volume"`
	MidVolume   IntRange `yaml:"mid_volume"`
	SmallVolume IntRange `yaml:"small_volume"`
}

// SynthConfig holds the tunable targets used to synthesize example sets.
type SynthConfig struct {
	SampleSize    SampleSizeTuning    `yaml:"sample_size"`
	PerfectScores PerfectScoresTuning `yaml:"perfect_scores"`
	SimilarRatios SimilarRatiosTuning `yaml:"similar_ratios"`
	HighVolume    HighVolumeTuning    `yaml:"high_volume"`

	// VolumeScale multiplies the larger volumes per difficulty. Larger
	// samples narrow the intervals and make the ordering subtler.
	VolumeScale map[Difficulty]float64 `yaml:"volume_scale"`

	// MaxAttempts bounds how many scenarios are drawn while looking for one
	// where naive order and Wilson order disagree.
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultSynthConfig returns the built-in synthesis targets.
func DefaultSynthConfig() SynthConfig {
	return SynthConfig{
		SampleSize: SampleSizeTuning{
			SmallVolume: IntRange{Min: 3, Max: 12},
			SmallRatio:  Range{Min: 0.9, Max: 1.0},
			LargeVolume: IntRange{Min: 150, Max: 600},
			RatioDrop:   Range{Min: 0.03, Max: 0.08},
			MidVolume:   IntRange{Min: 20, Max: 60},
			MidRatio:    Range{Min: 0.72, Max: 0.85},
		},
		PerfectScores: PerfectScoresTuning{
			TinyVolume:   IntRange{Min: 1, Max: 5},
			SmallVolume:  IntRange{Min: 8, Max: 20},
			SteadyVolume: IntRange{Min: 40, Max: 150},
			SteadyRatio:  Range{Min: 0.9, Max: 0.97},
		},
		SimilarRatios: SimilarRatiosTuning{
			BaseRatio:   Range{Min: 0.78, Max: 0.9},
			Spread:      Range{Min: 0.01, Max: 0.04},
			SmallVolume: IntRange{Min: 8, Max: 25},
			MidVolume:   IntRange{Min: 60, Max: 150},
			LargeVolume: IntRange{Min: 300, Max: 900},
		},
		HighVolume: HighVolumeTuning{
			BaseRatio:   Range{Min: 0.84, Max: 0.9},
			Gap:         Range{Min: 0.02, Max: 0.05},
			NearPerfect: Range{Min: 0.97, Max: 1.0},
			LargeVolume: IntRange{Min: 800, Max: 3000},
			MidVolume:   IntRange{Min: 400, Max: 1200},
			SmallVolume: IntRange{Min: 15, Max: 45},
		},
		VolumeScale: map[Difficulty]float64{
			Beginner:     1,
			Intermediate: 1.5,
			Advanced:     3,
		},
		MaxAttempts: 8,
	}
}

// Validate checks that every range is well formed.
func (c SynthConfig) Validate() error {
	checks := []error{
		c.SampleSize.SmallVolume.validate("sample_size.small_volume"),
		c.SampleSize.SmallRatio.validate("sample_size.small_ratio"),
		c.SampleSize.LargeVolume.validate("sample_size.large_volume"),
		c.SampleSize.RatioDrop.validate("sample_size.ratio_drop"),
		c.SampleSize.MidVolume.validate("sample_size.mid_volume"),
		c.SampleSize.MidRatio.validate("sample_size.mid_ratio"),
		c.PerfectScores.TinyVolume.validate("perfect_scores.tiny_volume"),
		c.PerfectScores.SmallVolume.validate("perfect_scores.small_volume"),
		c.PerfectScores.SteadyVolume.validate("perfect_scores.steady_volume"),
		c.PerfectScores.SteadyRatio.validate("perfect_scores.steady_ratio"),
		c.SimilarRatios.BaseRatio.validate("similar_ratios.base_ratio"),
		c.SimilarRatios.Spread.validate("similar_ratios.spread"),
		c.SimilarRatios.SmallVolume.validate("similar_ratios.small_volume"),
		c.SimilarRatios.MidVolume.validate("similar_ratios.mid_volume"),
		c.SimilarRatios.LargeVolume.validate("similar_ratios.large_volume"),
		c.HighVolume.BaseRatio.validate("high_volume.base_ratio"),
		c.HighVolume.Gap.validate("high_volume.gap"),
		c.HighVolume.NearPerfect.validate("high_volume.near_perfect"),
		c.HighVolume.LargeVolume.validate("high_volume.large_volume"),
		c.HighVolume.MidVolume.validate("high_volume.mid_volume"),
		c.HighVolume.SmallVolume.validate("high_volume.small_volume"),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	for d, s := range c.VolumeScale {
		if s <= 0 {
			return fmt.Errorf("volume_scale.%s: must be positive, got %g", d, s)
		}
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts: must be at least 1, got %d", c.MaxAttempts)
	}
	return nil
}

func (c SynthConfig) scale(d Difficulty) float64 {
	if s, ok := c.VolumeScale[d]; ok && s > 0 {
		return s
	}
	return 1
}

// draft is a synthesized item before it is turned into vote counts.
type draft struct {
	volume int
	ratio  float64
}

// votes converts a draft into counts: upvotes = round(volume × ratio),
// downvotes = volume − upvotes.
func (d draft) votes() (up, down int) {
	ratio := math.Max(0, math.Min(1, d.ratio))
	up = int(math.Round(float64(d.volume) * ratio))
	if up > d.volume {
		up = d.volume
	}
	return up, d.volume - up
}

// buildRecords shuffles the drafts and assigns ids 1..3 by final position,
// so neither position nor id reveals which item was built to win.
func buildRecords(r Rand, drafts [3]draft) []ranking.VoteRecord {
	r.Shuffle(len(drafts), func(i, j int) {
		drafts[i], drafts[j] = drafts[j], drafts[i]
	})
	records := make([]ranking.VoteRecord, len(drafts))
	for i, d := range drafts {
		up, down := d.votes()
		records[i] = ranking.VoteRecord{ID: i + 1, Upvotes: up, Downvotes: down}
	}
	return records
}
