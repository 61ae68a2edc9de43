package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"sparklet/internal/tui"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdTUI)
}

var tuiRenderer string

func init() {
	cmdTUI.Flags().StringVarP(&tuiRenderer, "renderer", "r", "screen", "Front end to use: screen or tea")
}

// renderers maps --renderer values to front ends.
var renderers = map[string]func(tui.Controller) error{
	"screen": func(c tui.Controller) error { return tui.Run(c) },
	"tea":    func(c tui.Controller) error { return tui.RunProgram(c) },
}

var cmdTUI = &cobra.Command{
	Use:   "tui",
	Short: "Launch the full-screen terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		run, ok := renderers[tuiRenderer]
		if !ok {
			return fmt.Errorf("unknown renderer %q (want %s)", tuiRenderer, rendererNames())
		}
		if err := run(controller()); err != nil {
			if errors.Is(err, tui.ErrNoColor) {
				fmt.Fprintln(cmd.ErrOrStderr(), tui.NoColorMessage)
				osExit(1)
				return nil
			}
			return fmt.Errorf("tui exited with error: %w", err)
		}
		return nil
	},
}

func rendererNames() string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, " or ")
}
