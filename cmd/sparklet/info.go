package main

import (
	"sparklet/internal/tui"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdInfo)
}

var infoWidth int

func init() {
	cmdInfo.Flags().IntVarP(&infoWidth, "width", "w", tui.DefaultWidth, "Columns to center the output within")
}

// `sparklet info` prints the same lines as the TUI without entering
// full-screen mode.
var cmdInfo = &cobra.Command{
	Use:   "info",
	Short: "Print version and configuration details",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Print(cmd.OutOrStdout(), controller(), infoWidth)
	},
}
