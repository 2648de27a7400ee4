package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI defaults that a user can persist in a TOML file.
// Flags always win over the file; the file wins over built-in defaults.
type Config struct {
	// OutputDir is where trace and render commands write their artifacts
	// when no explicit --output is given.
	OutputDir string `toml:"output_dir"`

	// Format is the default render format: dot, svg or png.
	Format string `toml:"format"`
}

// DefaultConfig returns the built-in defaults: current directory, SVG.
func DefaultConfig() Config {
	return Config{OutputDir: ".", Format: "svg"}
}

// defaultConfigPath resolves the per-user config location,
// e.g. ~/.config/contagio/config.toml on Linux.
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "contagio", "config.toml"), nil
}

// LoadConfig reads the TOML config at path. An empty path means the
// per-user default location; a missing file (at either location) is not
// an error and yields the built-in defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil // no resolvable home; defaults are fine
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	return cfg, nil
}
