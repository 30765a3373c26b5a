// Package config loads feedrank settings from FEEDRANK_* environment
// variables and optional YAML tuning files.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/wilson"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "FEEDRANK_"

// Config is the process-wide application configuration.
type Config struct {
	// LogFile overrides the log location; empty uses the data dir.
	// The event log path (FEEDRANK_DB) is resolved by the store package.
	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Confidence     float64 `env:"CONFIDENCE" envDefault:"0.95"`
	WeightExact    int     `env:"WEIGHT_EXACT" envDefault:"3"`
	WeightAdjacent int     `env:"WEIGHT_ADJACENT" envDefault:"1"`

	// TuningFile points at a YAML file with synthesis and progression
	// overrides.
	TuningFile string `env:"TUNING"`

	// LLMEnabled turns the LLM-backed explainer on when a provider is
	// configured.
	LLMEnabled bool `env:"LLM_ENABLED" envDefault:"true"`

	// Seed fixes the random source; 0 seeds from the clock.
	Seed uint64 `env:"SEED"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: EnvPrefix})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the confidence level and scoring weights.
func (c Config) Validate() error {
	if _, err := wilson.ParseConfidence(c.Confidence); err != nil {
		return fmt.Errorf("FEEDRANK_CONFIDENCE: %w", err)
	}
	return validateWeights(c.Weights())
}

// ConfidenceLevel returns the parsed confidence. Call after Validate.
func (c Config) ConfidenceLevel() wilson.Confidence {
	level, err := wilson.ParseConfidence(c.Confidence)
	if err != nil {
		return wilson.DefaultConfidence
	}
	return level
}

// Weights returns the scoring weights from the environment.
func (c Config) Weights() ranking.Weights {
	return ranking.Weights{Exact: c.WeightExact, Adjacent: c.WeightAdjacent}
}

func validateWeights(w ranking.Weights) error {
	if w.Exact <= 0 {
		return fmt.Errorf("exact weight must be positive, got %d", w.Exact)
	}
	if w.Adjacent < 0 || w.Adjacent > w.Exact {
		return fmt.Errorf("adjacent weight must be within [0, %d], got %d", w.Exact, w.Adjacent)
	}
	return nil
}
