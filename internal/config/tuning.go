package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/progression"
	"github.com/feedrank/feedrank/internal/ranking"
)

// Tuning groups the knobs that shape the game: how scenarios are
// synthesized, how difficulty progresses, and how placements are scored.
type Tuning struct {
	Synthesis   catalog.SynthConfig `yaml:"synthesis"`
	Progression progression.Policy  `yaml:"progression"`
	Weights     *ranking.Weights    `yaml:"weights,omitempty"`
}

// DefaultTuning returns the built-in tuning. Weights stay nil so the
// environment settings apply.
func DefaultTuning() Tuning {
	return Tuning{
		Synthesis:   catalog.DefaultSynthConfig(),
		Progression: progression.DefaultPolicy(),
	}
}

// LoadTuning reads YAML overrides from path on top of DefaultTuning.
// Keys absent from the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate checks every section.
func (t Tuning) Validate() error {
	if err := t.Synthesis.Validate(); err != nil {
		return fmt.Errorf("synthesis: %w", err)
	}
	if err := t.Progression.Validate(); err != nil {
		return fmt.Errorf("progression: %w", err)
	}
	if t.Weights != nil {
		if err := validateWeights(*t.Weights); err != nil {
			return fmt.Errorf("weights: %w", err)
		}
	}
	return nil
}

// Marshal renders t as YAML, e.g. for `feedrank examples --dump-tuning`.
func (t Tuning) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}

// ResolveWeights prefers the tuning file weights over the environment.
func (t Tuning) ResolveWeights(cfg Config) ranking.Weights {
	if t.Weights != nil {
		return *t.Weights
	}
	return cfg.Weights()
}
