package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"sparklet/internal/app"
	"sparklet/internal/tui"
)

func main() {
	os.Exit(run(os.Stderr))
}

// run drives one full-screen session and returns the process exit code.
func run(stderr io.Writer, opts ...tui.Option) int {
	controller := app.New(app.Options{})
	if err := tui.Run(controller, opts...); err != nil {
		if errors.Is(err, tui.ErrNoColor) {
			fmt.Fprintln(stderr, tui.NoColorMessage)
		} else {
			fmt.Fprintf(stderr, "tui exited with error: %v\n", err)
		}
		return 1
	}
	return 0
}
