package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start ranking rounds right away",
	RunE: func(cmd *cobra.Command, args []string) error {
		tutorial, _ := cmd.Flags().GetBool("tutorial")
		return runApp(cmd, playOptions{skipHome: true, tutorial: tutorial})
	},
}

func init() {
	playCmd.Flags().Bool("tutorial", false, "Show the introduction before the first round")
}
