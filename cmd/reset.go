package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feedrank/feedrank/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprintf(out, "This deletes all rounds, sessions and LLM events in %s.\n", dbPath)
			fmt.Fprintln(out, "Re-run with --yes to confirm.")
			return nil
		}

		if err := store.Remove(dbPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %s\n", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
