package app

import (
	"sparklet/internal/config"
	"sparklet/internal/version"
)

// Options configures the top-level controller.
type Options struct {
	// Identity names the front end shown on the first line.
	// Defaults to version.TUI.
	Identity version.Info
}

// App exposes the informational content that the CLI/TUI front ends render.
type App struct {
	identity version.Info
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	identity := opts.Identity
	if identity.Name == "" {
		identity = version.TUI
	}
	return &App{
		identity: identity,
	}
}

// Identity returns the front end identity shown on the first line.
func (a *App) Identity() version.Info {
	return a.identity
}

// Lines returns the three informational lines: front end identity, library
// identity and the active config directory. They are rebuilt on every call.
func (a *App) Lines() []string {
	return []string{
		a.identity.String(),
		version.Library.String(),
		"config-dir: " + config.ConfigDir(),
	}
}
