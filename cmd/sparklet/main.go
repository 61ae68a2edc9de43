package main

import (
	"log"
	"os"

	"sparklet/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "sparklet [command]",
	Short:   "sparklet: terminal front end",
	Long:    `sparklet shows version and configuration details, either full-screen or as plain text.`,
	Version: version.Number,
}

// osExit is swapped in tests.
var osExit = os.Exit

func init() {
	rootCmd.Flags().BoolP("version", "V", false, "Print version information and exit")
	rootCmd.SetVersionTemplate(version.CLIName + " {{.Version}}\n")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
