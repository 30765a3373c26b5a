package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/wilson"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"FEEDRANK_CONFIDENCE", "FEEDRANK_WEIGHT_EXACT", "FEEDRANK_WEIGHT_ADJACENT", "FEEDRANK_LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, wilson.Confidence95, cfg.ConfidenceLevel())
	assert.Equal(t, ranking.DefaultWeights(), cfg.Weights())
	assert.True(t, cfg.LLMEnabled)
	assert.Zero(t, cfg.Seed)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FEEDRANK_CONFIDENCE", "0.90")
	t.Setenv("FEEDRANK_WEIGHT_EXACT", "5")
	t.Setenv("FEEDRANK_WEIGHT_ADJACENT", "2")
	t.Setenv("FEEDRANK_LLM_ENABLED", "false")
	t.Setenv("FEEDRANK_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, wilson.Confidence90, cfg.ConfidenceLevel())
	assert.Equal(t, ranking.Weights{Exact: 5, Adjacent: 2}, cfg.Weights())
	assert.False(t, cfg.LLMEnabled)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unsupported confidence", "FEEDRANK_CONFIDENCE", "0.5"},
		{"zero exact weight", "FEEDRANK_WEIGHT_EXACT", "0"},
		{"adjacent above exact", "FEEDRANK_WEIGHT_ADJACENT", "7"},
		{"not a number", "FEEDRANK_WEIGHT_EXACT", "three"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfidenceErrorWraps(t *testing.T) {
	cfg := Config{Confidence: 0.99, WeightExact: 3, WeightAdjacent: 1}
	err := cfg.Validate()
	assert.ErrorIs(t, err, wilson.ErrUnsupportedConfidence)
}
