package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Print writes ctrl's lines to w, each centered within width columns. The
// emphasis color is applied only when w supports it.
func Print(w io.Writer, ctrl Controller, width int) error {
	style := emphasisStyle(lipgloss.NewRenderer(w))
	for _, line := range ctrl.Lines() {
		x := max(ComputeX(width, line), 0)
		if _, err := fmt.Fprintln(w, strings.Repeat(" ", x)+style.Render(line)); err != nil {
			return err
		}
	}
	return nil
}
