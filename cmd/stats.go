package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/feedrank/feedrank/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show accuracy by concept and difficulty across all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		return printStats(context.Background(), cmd.OutOrStdout(), s.EventRepo())
	},
}

func printStats(ctx context.Context, w io.Writer, repo store.EventRepo) error {
	concepts, err := repo.ConceptStats(ctx)
	if err != nil {
		return fmt.Errorf("query concept stats: %w", err)
	}
	if len(concepts) == 0 {
		fmt.Fprintln(w, "No rounds played yet.")
		return nil
	}

	fmt.Fprintln(w, "By Concept")
	fmt.Fprintln(w, strings.Repeat("─", 56))
	fmt.Fprintf(w, "%-16s  %6s  %7s  %9s\n", "Concept", "Rounds", "Perfect", "Accuracy")
	fmt.Fprintln(w, strings.Repeat("─", 56))
	for _, c := range concepts {
		fmt.Fprintf(w, "%-16s  %6d  %7d  %8.0f%%\n", c.Concept, c.Rounds, c.Perfect, c.Accuracy()*100)
	}

	diffs, err := repo.DifficultyStats(ctx)
	if err != nil {
		return fmt.Errorf("query difficulty stats: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "By Difficulty")
	fmt.Fprintln(w, strings.Repeat("─", 56))
	fmt.Fprintf(w, "%-16s  %6s  %7s  %9s\n", "Difficulty", "Rounds", "Perfect", "Points")
	fmt.Fprintln(w, strings.Repeat("─", 56))
	for _, d := range diffs {
		fmt.Fprintf(w, "%-16s  %6d  %7d  %4d/%-4d\n", d.Difficulty, d.Rounds, d.Perfect, d.Score, d.MaxScore)
	}

	sessions, err := repo.Sessions(ctx, store.QueryOpts{Limit: 5})
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}
	if len(sessions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Recent Sessions")
		fmt.Fprintln(w, strings.Repeat("─", 56))
		for _, s := range sessions {
			state := s.EndAction
			if state == "" {
				state = "open"
			}
			fmt.Fprintf(w, "%-19s  %3d rounds  %3d/%-3d exact  best streak %d  (%s)\n",
				s.StartedAt.Local().Format("2006-01-02 15:04:05"),
				s.RoundsPlayed, s.TotalScore, s.MaxPossibleScore, s.BestStreak, state)
		}
	}
	return nil
}
