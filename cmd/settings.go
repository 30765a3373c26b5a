package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feedrank/feedrank/internal/config"
)

// settings is the resolved configuration for a command run.
type settings struct {
	cfg    *config.Config
	tuning config.Tuning
}

// loadSettings reads FEEDRANK_* variables, applies global flag overrides and
// loads the tuning file if one is named.
func loadSettings(cmd *cobra.Command) (settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return settings{}, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if p, _ := cmd.Flags().GetString("tuning"); p != "" {
		cfg.TuningFile = p
	}

	tuning := config.DefaultTuning()
	if cfg.TuningFile != "" {
		tuning, err = config.LoadTuning(cfg.TuningFile)
		if err != nil {
			return settings{}, fmt.Errorf("load tuning: %w", err)
		}
	}
	return settings{cfg: cfg, tuning: tuning}, nil
}
