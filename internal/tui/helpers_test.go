package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// fakeScreen wraps the tcell simulation screen and records lifecycle calls.
type fakeScreen struct {
	tcell.SimulationScreen

	colors    int
	keyOnInit bool

	inits  int
	finis  int
	writes int
	shows  int
	hidden bool

	frame  []tcell.SimCell
	frameW int
}

func newFakeScreen(colors int) *fakeScreen {
	return &fakeScreen{
		SimulationScreen: tcell.NewSimulationScreen("UTF-8"),
		colors:           colors,
		keyOnInit:        true,
	}
}

func (f *fakeScreen) Init() error {
	f.inits++
	if err := f.SimulationScreen.Init(); err != nil {
		return err
	}
	if f.keyOnInit {
		f.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	}
	return nil
}

func (f *fakeScreen) Fini() {
	f.finis++
	f.SimulationScreen.Fini()
}

func (f *fakeScreen) Colors() int {
	return f.colors
}

func (f *fakeScreen) HideCursor() {
	f.hidden = true
	f.SimulationScreen.HideCursor()
}

func (f *fakeScreen) ShowCursor(x, y int) {
	f.hidden = false
	f.SimulationScreen.ShowCursor(x, y)
}

func (f *fakeScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	f.writes++
	f.SimulationScreen.SetContent(x, y, primary, combining, style)
}

func (f *fakeScreen) Show() {
	f.shows++
	f.SimulationScreen.Show()
	cells, w, _ := f.GetContents()
	f.frame = append([]tcell.SimCell(nil), cells...)
	f.frameW = w
}

func (f *fakeScreen) factory() ScreenFactory {
	return func() (tcell.Screen, error) {
		return f, nil
	}
}

// row returns the text of one row of the last flushed frame, right-trimmed.
func (f *fakeScreen) row(t *testing.T, y int) string {
	t.Helper()
	if f.frameW == 0 {
		t.Fatalf("no frame has been flushed")
	}
	var b strings.Builder
	for x := 0; x < f.frameW; x++ {
		cell := f.frame[y*f.frameW+x]
		if len(cell.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(cell.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func (f *fakeScreen) cell(x, y int) tcell.SimCell {
	return f.frame[y*f.frameW+x]
}

func acquireFake(t *testing.T, colors int) (*Session, *fakeScreen) {
	t.Helper()
	fake := newFakeScreen(colors)
	fake.keyOnInit = false
	s, err := Acquire(fake.factory())
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	t.Cleanup(func() {
		if fake.finis == 0 {
			s.Release()
		}
	})
	return s, fake
}

type stubController struct {
	lines []string
	calls int
	panic bool
}

func (s *stubController) Lines() []string {
	s.calls++
	if s.panic {
		panic("lines unavailable")
	}
	return s.lines
}

var infoLines = []string{
	"sparklet-tui v0.1.0",
	"sparklet v0.1.0",
	"config-dir: /tmp",
}
