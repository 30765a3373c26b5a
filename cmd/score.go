package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/feedrank/feedrank/internal/ranking"
	"github.com/feedrank/feedrank/internal/wilson"
)

var scoreCmd = &cobra.Command{
	Use:   "score <up:down>...",
	Short: "Rank vote pairs by Wilson score",
	Long: `Rank ad-hoc vote pairs and compare the naive percentage order with the
Wilson lower bound order. Items are numbered in argument order.

Example:
  feedrank score 19:1 178:22`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetFloat64("confidence")
		conf, err := wilson.ParseConfidence(level)
		if err != nil {
			return err
		}

		records := make([]ranking.VoteRecord, len(args))
		for i, arg := range args {
			rec, err := parseVotePair(i+1, arg)
			if err != nil {
				return err
			}
			records[i] = rec
		}

		return printScores(cmd.OutOrStdout(), records, conf)
	},
}

func init() {
	scoreCmd.Flags().Float64P("confidence", "c", float64(wilson.DefaultConfidence), "Confidence level: 0.95 or 0.90")
}

// parseVotePair parses "up:down" into a VoteRecord with the given id.
func parseVotePair(id int, s string) (ranking.VoteRecord, error) {
	upStr, downStr, ok := strings.Cut(s, ":")
	if !ok {
		return ranking.VoteRecord{}, fmt.Errorf("invalid vote pair %q: want up:down", s)
	}
	up, err := strconv.Atoi(strings.TrimSpace(upStr))
	if err != nil {
		return ranking.VoteRecord{}, fmt.Errorf("invalid upvotes in %q: %w", s, err)
	}
	down, err := strconv.Atoi(strings.TrimSpace(downStr))
	if err != nil {
		return ranking.VoteRecord{}, fmt.Errorf("invalid downvotes in %q: %w", s, err)
	}
	return ranking.NewVoteRecord(id, up, down)
}

func printScores(w io.Writer, records []ranking.VoteRecord, conf wilson.Confidence) error {
	items, err := ranking.Rank(records, conf)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-4s  %7s  %7s  %6s  %7s  %-17s  %4s\n",
		"ID", "Up", "Down", "Ratio", "Wilson", conf.String()+" interval", "Rank")
	fmt.Fprintln(w, strings.Repeat("─", 66))

	for _, it := range items {
		b, err := wilson.Interval(uint64(it.Upvotes), uint64(it.Downvotes), conf)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-4d  %7d  %7d  %5.1f%%  %7.4f  [%.4f, %.4f]  %4d\n",
			it.ID, it.Upvotes, it.Downvotes, it.Ratio()*100, it.WilsonScore,
			b.LowerBound, b.UpperBound, it.ActualRank)
	}

	actual := ranking.ByActualRank(items)
	wilsonIDs := make([]int, len(actual))
	for i, it := range actual {
		wilsonIDs[i] = it.ID
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "By percentage:  %s\n", formatOrder(ranking.NaiveOrder(items)))
	fmt.Fprintf(w, "By Wilson:      %s\n", formatOrder(wilsonIDs))
	if ranking.Disagrees(items) {
		fmt.Fprintln(w, "\nThe orders disagree: small samples are ranked down until they earn more votes.")
	}
	return nil
}

func formatOrder(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "#" + strconv.Itoa(id)
	}
	return strings.Join(parts, " > ")
}
