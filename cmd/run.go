package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/feedrank/feedrank/internal/app"
	"github.com/feedrank/feedrank/internal/catalog"
	"github.com/feedrank/feedrank/internal/coach"
	"github.com/feedrank/feedrank/internal/llm"
	"github.com/feedrank/feedrank/internal/logging"
	"github.com/feedrank/feedrank/internal/progression"
	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/session"
	"github.com/feedrank/feedrank/internal/store"
)

// playOptions selects the first screen.
type playOptions struct {
	skipHome bool
	tutorial bool
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, opts playOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logPath := st.cfg.LogFile
	if logPath == "" {
		if logPath, err = logging.DefaultPath(); err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
	}
	log, closer, err := logging.Open(logPath, st.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()
	eventRepo := db.EventRepo()

	rng := newRand(st.cfg.Seed)
	cat := catalog.New(rng, st.tuning.Synthesis)
	selector := progression.NewSelector(st.tuning.Progression, cat, rng)
	scorer := ranking.NewScorer(st.tuning.ResolveWeights(*st.cfg))

	game := session.NewGame(selector, scorer,
		session.WithEventRepo(eventRepo),
		session.WithLogger(log),
		session.WithConfidence(st.cfg.ConfidenceLevel()),
	)

	log.WithFields(logrus.Fields{
		"db":         dbPath,
		"confidence": st.cfg.ConfidenceLevel().String(),
		"seed":       st.cfg.Seed,
	}).Info("starting feedrank")

	return app.Run(app.Options{
		Game:         game,
		Explainer:    newExplainer(ctx, st.cfg.LLMEnabled, eventRepo, log),
		EventRepo:    eventRepo,
		Log:          log,
		SkipHome:     opts.skipHome,
		ShowTutorial: opts.tutorial,
	})
}

// newExplainer returns the LLM-backed explainer when a provider is
// configured, and the static key-insight explainer otherwise.
func newExplainer(ctx context.Context, enabled bool, eventRepo store.EventRepo, log logrus.FieldLogger) coach.Explainer {
	if !enabled {
		return coach.StaticExplainer{}
	}
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo, log)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			log.Info("no LLM provider configured; using built-in explanations")
		} else {
			log.WithError(err).Warn("LLM provider unavailable; using built-in explanations")
		}
		return coach.StaticExplainer{}
	}
	return coach.NewLLMExplainer(provider, coach.DefaultConfig(), log)
}

// newRand returns a PCG source seeded from seed, or from the runtime's
// random source when seed is 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
