package tui

import "errors"

// NoColorMessage is the diagnostic printed when a run ends with ErrNoColor.
const NoColorMessage = "Your terminal does not support color"

// ErrNoColor reports a terminal without color support. The terminal has
// already been restored when Run returns it.
var ErrNoColor = errors.New("terminal does not support color")

// Controller supplies the lines shown by the front ends.
type Controller interface {
	Lines() []string
}

// Option customizes Run.
type Option func(*runConfig)

type runConfig struct {
	screen ScreenFactory
}

// WithScreen replaces the default tcell screen.
func WithScreen(f ScreenFactory) Option {
	return func(c *runConfig) {
		c.screen = f
	}
}

// Run acquires the terminal, paints the controller's lines, waits for one key
// and releases the terminal on every path.
func Run(ctrl Controller, opts ...Option) error {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	session, err := Acquire(cfg.screen)
	if err != nil {
		return err
	}
	defer session.Release()

	if !session.SupportsColor() {
		return ErrNoColor
	}

	session.SetCursorVisible(false)
	NewRenderer(session).Paint(ctrl.Lines())

	session.WaitKey()
	return nil
}
