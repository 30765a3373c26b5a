package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/progression"
	"github.com/feedrank/feedrank/internal/ranking"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTuningPartialOverride(t *testing.T) {
	path := writeTuning(t, `
progression:
  synthesize_rate: 0.6
synthesis:
  max_attempts: 3
  volume_scale:
    advanced: 5
  high_volume:
    small_volume: {min: 10, max: 20}
weights:
  exact: 4
  adjacent: 2
`)

	tun, err := LoadTuning(path)
	require.NoError(t, err)

	assert.Equal(t, 0.6, tun.Progression.SynthesizeRate)
	assert.Equal(t, progression.DefaultPolicy().BeginnerUntil, tun.Progression.BeginnerUntil)

	assert.Equal(t, 3, tun.Synthesis.MaxAttempts)
	assert.Equal(t, 5.0, tun.Synthesis.VolumeScale[catalog.Advanced])
	assert.Equal(t, 1.5, tun.Synthesis.VolumeScale[catalog.Intermediate])
	assert.Equal(t, catalog.IntRange{Min: 10, Max: 20}, tun.Synthesis.HighVolume.SmallVolume)
	assert.Equal(t, catalog.DefaultSynthConfig().SampleSize, tun.Synthesis.SampleSize)

	assert.Equal(t, ranking.Weights{Exact: 4, Adjacent: 2}, tun.ResolveWeights(Config{WeightExact: 3, WeightAdjacent: 1}))
}

func TestLoadTuningInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"rate out of range", "progression:\n  advanced_rate: 1.5\n"},
		{"fast track at round zero", "progression:\n  fast_track_advanced_at: 0\n"},
		{"inverted range", "synthesis:\n  perfect_scores:\n    steady_ratio: {min: 0.9, max: 0.5}\n"},
		{"bad weights", "weights:\n  exact: 1\n  adjacent: 3\n"},
		{"malformed", "progression: [1, 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTuning(writeTuning(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTuningRoundTrip(t *testing.T) {
	out, err := DefaultTuning().Marshal()
	require.NoError(t, err)

	path := writeTuning(t, string(out))
	tun, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning().Synthesis, tun.Synthesis)
	assert.Equal(t, DefaultTuning().Progression, tun.Progression)
	assert.Nil(t, tun.Weights)
}

func TestResolveWeightsFallsBackToEnv(t *testing.T) {
	cfg := Config{WeightExact: 5, WeightAdjacent: 0}
	assert.Equal(t, ranking.Weights{Exact: 5, Adjacent: 0}, DefaultTuning().ResolveWeights(cfg))
}
