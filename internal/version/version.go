package version

import "fmt"

// Number is set at link time via
// `-ldflags -X sparklet/internal/version.Number=...`.
var Number = "0.1.0"

// Info identifies one sparklet component.
type Info struct {
	Name    string
	Version string
}

// String renders the identity as "name vVERSION".
func (i Info) String() string {
	return Format(i.Name, i.Version)
}

var (
	// TUI is the identity of the full-screen front end.
	TUI = Info{Name: "sparklet-tui", Version: Number}
	// Library is the identity of the shared sparklet core.
	Library = Info{Name: "sparklet", Version: Number}
)

// CLIName is the display name printed by `sparklet --version`.
const CLIName = "Sparklet CLI"

// Format joins a package name and its semantic version.
func Format(name, version string) string {
	return fmt.Sprintf("%s v%s", name, version)
}
