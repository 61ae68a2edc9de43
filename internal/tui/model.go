package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Model represents the Bubble Tea state of the alternate front end.
type Model struct {
	controller Controller

	lines []string
	style lipgloss.Style

	width  int
	height int
}

// NewModel constructs a model that renders ctrl's lines with the emphasis style.
func NewModel(ctrl Controller) *Model {
	return &Model{
		controller: ctrl,
		style:      emphasisStyle(lipgloss.DefaultRenderer()),
	}
}

// RunProgram spins up the Bubble Tea program in the alternate screen.
// It returns ErrNoColor before touching the screen when the output has no
// color profile.
func RunProgram(ctrl Controller, opts ...tea.ProgramOption) error {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return ErrNoColor
	}
	m := NewModel(ctrl)
	prog := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.lines = m.controller.Lines()
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	rows := make([]string, m.height)
	mid := m.height / 2
	for i, line := range m.lines {
		row := mid + i
		if row >= m.height {
			break
		}
		// A string cannot start left of column 0; the renderer truncates
		// anything past the right edge.
		x := max(ComputeX(m.width, line), 0)
		rows[row] = strings.Repeat(" ", x) + m.style.Render(line)
	}
	return strings.Join(rows, "\n")
}

func emphasisStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(lipgloss.Color("6")).
		Background(lipgloss.Color("0"))
}
