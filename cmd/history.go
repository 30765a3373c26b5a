package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/feedrank/feedrank/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently played rounds",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		return printHistory(context.Background(), cmd.OutOrStdout(), s.EventRepo(), limit)
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of rounds to show")
}

func printHistory(ctx context.Context, w io.Writer, repo store.EventRepo, limit int) error {
	rounds, err := repo.RecentRounds(ctx, store.QueryOpts{Limit: limit})
	if err != nil {
		return fmt.Errorf("query rounds: %w", err)
	}
	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds played yet.")
		return nil
	}

	fmt.Fprintf(w, "%-19s  %-12s  %-15s  %-7s  %-12s  %s\n",
		"Timestamp", "Difficulty", "Concept", "Score", "Yours", "Wilson")
	fmt.Fprintln(w, strings.Repeat("─", 90))
	for _, r := range rounds {
		mark := ""
		if r.Perfect {
			mark = " ★"
		}
		fmt.Fprintf(w, "%-19s  %-12s  %-15s  %-7s  %-12s  %s%s\n",
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.Difficulty,
			r.Concept,
			fmt.Sprintf("%d/%d", r.Score, r.MaxScore),
			joinInts(r.SubmittedOrder),
			joinInts(r.ActualOrder),
			mark,
		)
	}
	return nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}
