package progression

import "fmt"

// Policy holds the thresholds and probabilities that drive difficulty
// selection.
type Policy struct {
	// FastTrackStreak is the number of consecutive perfect rounds that skips
	// the round-count schedule.
	FastTrackStreak int `yaml:"fast_track_streak"`
	// FastTrackAdvancedAt is the round count from which a fast-tracked
	// learner goes straight to advanced instead of intermediate.
	FastTrackAdvancedAt int `yaml:"fast_track_advanced_at"`
	// BeginnerUntil is the round count below which every round is beginner.
	BeginnerUntil int `yaml:"beginner_until"`
	// MixedUntil is the round count below which rounds mix beginner and
	// intermediate.
	MixedUntil int `yaml:"mixed_until"`
	// MixedIntermediateRate is the chance of intermediate in the mixed phase.
	MixedIntermediateRate float64 `yaml:"mixed_intermediate_rate"`
	// AdvancedRate is the chance of advanced after the mixed phase.
	AdvancedRate float64 `yaml:"advanced_rate"`
	// SynthesizeRate is the chance of serving a synthesized set instead of
	// a curated one.
	SynthesizeRate float64 `yaml:"synthesize_rate"`
}

// DefaultPolicy returns the standard progression schedule.
func DefaultPolicy() Policy {
	return Policy{
		FastTrackStreak:       2,
		FastTrackAdvancedAt:   5,
		BeginnerUntil:         3,
		MixedUntil:            7,
		MixedIntermediateRate: 0.5,
		AdvancedRate:          0.3,
		SynthesizeRate:        0.3,
	}
}

// Validate checks that thresholds are ordered and rates are probabilities.
func (p Policy) Validate() error {
	if p.FastTrackStreak < 1 {
		return fmt.Errorf("fast_track_streak: must be at least 1, got %d", p.FastTrackStreak)
	}
	if p.FastTrackAdvancedAt < 1 {
		return fmt.Errorf("fast_track_advanced_at: must be at least 1, got %d", p.FastTrackAdvancedAt)
	}
	if p.BeginnerUntil < 1 || p.MixedUntil < p.BeginnerUntil {
		return fmt.Errorf("beginner_until (%d) and mixed_until (%d) must satisfy 1 <= beginner_until <= mixed_until",
			p.BeginnerUntil, p.MixedUntil)
	}
	rates := map[string]float64{
		"mixed_intermediate_rate": p.MixedIntermediateRate,
		"advanced_rate":           p.AdvancedRate,
		"synthesize_rate":         p.SynthesizeRate,
	}
	for name, r := range rates {
		if r < 0 || r > 1 {
			return fmt.Errorf("%s: must be within [0, 1], got %g", name, r)
		}
	}
	return nil
}
