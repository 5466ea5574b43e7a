package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/swotboard/internal/server"
)

// Config holds defaults read from config.toml. Command-line flags override
// every field.
type Config struct {
	// Addr is the listen address for serve.
	Addr string `toml:"addr"`
	// StateFile is the document serve and edit start from, and edit saves to.
	StateFile string `toml:"state_file"`
	// OutputDir receives exported PNGs.
	OutputDir string `toml:"output_dir"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Addr:      server.DefaultAddr,
		StateFile: "swot.json",
		OutputDir: ".",
	}
}

// LoadConfig reads path on top of [DefaultConfig]. A missing file is only
// an error when the user named it explicitly.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/swotboard/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultConfigPath returns the config file location, or "" when no home
// directory can be found.
func defaultConfigPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

func displayConfigPath() string {
	if os.Getenv("XDG_CONFIG_HOME") != "" {
		return "$XDG_CONFIG_HOME/" + appName + "/config.toml"
	}
	return "~/.config/" + appName + "/config.toml"
}
