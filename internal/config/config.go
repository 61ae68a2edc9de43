package config

import "os"

const (
	// DefaultConfigDir is shown when no override is present.
	DefaultConfigDir = "~/.config/sparklet"
	envConfigDir     = "SPARKLET_CONFIG_DIR"
)

// Config aggregates the settings displayed by the front ends.
type Config struct {
	Dir string
}

// Load builds a Config from defaults plus environment overrides.
func Load() Config {
	cfg := Config{
		Dir: DefaultConfigDir,
	}

	applyEnvOverrides(&cfg)
	return cfg
}

// ConfigDir resolves the active configuration directory. A present variable
// is returned verbatim, even when empty.
func ConfigDir() string {
	return Load().Dir
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv(envConfigDir); ok {
		cfg.Dir = v
	}
}
