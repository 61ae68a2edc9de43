package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	// DefaultWidth replaces a zero width in ComputeX.
	DefaultWidth = 80
	// EmphasisPair is the color pair used for every informational line.
	EmphasisPair int16 = 1
)

// Renderer paints horizontally centered lines onto a Session.
type Renderer struct {
	session *Session
}

// NewRenderer binds a renderer to an acquired session.
func NewRenderer(s *Session) *Renderer {
	return &Renderer{session: s}
}

// RegisterStyle binds a color pair for later use by Paint.
func (r *Renderer) RegisterStyle(index int16, fg, bg tcell.Color) {
	r.session.RegisterPair(index, fg, bg)
}

// ComputeX returns the column at which text starts when centered in width.
// A zero width means DefaultWidth. The result is negative when text is wider
// than width; it is not clamped. Text length is measured in terminal cells
// rather than bytes, so wide and combining runes of non-ASCII text center
// the way they are drawn.
func ComputeX(width int, text string) int {
	if width == 0 {
		width = DefaultWidth
	}
	return (width - runewidth.StringWidth(text)) / 2
}

// DrawCentered writes text on row, centered within width, and flushes.
// Row 0 is the top row.
func DrawCentered(s *Session, row, width int, text string) {
	s.Print(row, ComputeX(width, text), text)
	s.Refresh()
}

// Paint stacks lines from the vertical midpoint downwards using the
// emphasis style (cyan on black).
func (r *Renderer) Paint(lines []string) {
	r.RegisterStyle(EmphasisPair, tcell.ColorTeal, tcell.ColorBlack)
	r.session.AttrOn(EmphasisPair)

	rows, cols := r.session.Size()
	mid := rows / 2
	for i, line := range lines {
		DrawCentered(r.session, mid+i, cols, line)
	}

	r.session.AttrOff()
}
