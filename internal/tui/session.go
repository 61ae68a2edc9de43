package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// minColors is the number of palette entries the emphasis style relies on.
const minColors = 8

// ScreenFactory creates the terminal screen a Session drives.
type ScreenFactory func() (tcell.Screen, error)

// Pair is a foreground/background color assignment.
type Pair struct {
	Fg tcell.Color
	Bg tcell.Color
}

// Session owns the full-screen terminal between Acquire and Release.
// It is not safe for concurrent use.
type Session struct {
	screen tcell.Screen
	pairs  map[int16]Pair
	attr   tcell.Style

	cursorVisible bool
}

// Acquire creates and initializes the screen, switching the terminal into
// full-screen mode. A nil factory uses tcell.NewScreen. Acquire must not be
// called again before Release.
func Acquire(factory ScreenFactory) (*Session, error) {
	if factory == nil {
		factory = tcell.NewScreen
	}
	screen, err := factory()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return &Session{
		screen:        screen,
		pairs:         make(map[int16]Pair),
		attr:          tcell.StyleDefault,
		cursorVisible: true,
	}, nil
}

// Release restores the terminal to its normal mode. Callers invoke it exactly
// once per Acquire.
func (s *Session) Release() {
	s.screen.Fini()
}

// SupportsColor reports whether the terminal can show the base ANSI palette.
func (s *Session) SupportsColor() bool {
	return s.screen.Colors() >= minColors
}

// SetCursorVisible shows or hides the terminal cursor.
func (s *Session) SetCursorVisible(visible bool) {
	if visible {
		s.screen.ShowCursor(0, 0)
	} else {
		s.screen.HideCursor()
	}
	s.cursorVisible = visible
}

// CursorVisible reports the last visibility set through SetCursorVisible.
func (s *Session) CursorVisible() bool {
	return s.cursorVisible
}

// Size returns the screen dimensions as rows and columns.
func (s *Session) Size() (rows, cols int) {
	cols, rows = s.screen.Size()
	return rows, cols
}

// RegisterPair binds index to a color pair. Index 0 is the terminal default
// and is left untouched.
func (s *Session) RegisterPair(index int16, fg, bg tcell.Color) {
	if index == 0 {
		return
	}
	s.pairs[index] = Pair{Fg: fg, Bg: bg}
}

// AttrOn makes the pair at index the active attribute. An unregistered index
// selects the default style.
func (s *Session) AttrOn(index int16) {
	p, ok := s.pairs[index]
	if !ok {
		s.attr = tcell.StyleDefault
		return
	}
	s.attr = tcell.StyleDefault.Foreground(p.Fg).Background(p.Bg)
}

// AttrOff resets the active attribute to the default style.
func (s *Session) AttrOff() {
	s.attr = tcell.StyleDefault
}

// Print writes text starting at (row, col) with the active attribute.
// Zero-width runes combine with the preceding cell. Cells that fall outside
// the screen are dropped by the backend.
func (s *Session) Print(row, col int, text string) {
	x := col
	var (
		base  rune
		comb  []rune
		width int
	)
	emit := func() {
		if width == 0 {
			return
		}
		s.screen.SetContent(x, row, base, comb, s.attr)
		x += width
	}

	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if width == 0 {
				// leading mark with nothing to attach to
				base, width = ' ', 1
			}
			comb = append(comb, r)
			continue
		}
		emit()
		base, comb, width = r, nil, w
	}
	emit()
}

// Refresh flushes pending cells to the physical terminal.
func (s *Session) Refresh() {
	s.screen.Show()
}

// WaitKey blocks until a key is pressed. Other events are discarded.
func (s *Session) WaitKey() {
	for {
		switch s.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		}
	}
}
