package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feedrank/feedrank/internal/datadir"
	"github.com/feedrank/feedrank/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "feedrank",
	Short: "Learn to rank posts like a statistician",
	Long: "Feed Rank is a terminal game that teaches why ranking by the Wilson score " +
		"lower bound beats sorting by approval percentage.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, playOptions{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FEEDRANK_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides FEEDRANK_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("tuning", "", "YAML file with synthesis, progression and weight tuning (overrides FEEDRANK_TUNING)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FEEDRANK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, datadir.EnsureParent(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event log for read-only commands.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
