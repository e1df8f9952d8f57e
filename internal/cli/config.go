package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig holds persistent defaults loaded from a TOML file.
// Command-line flags override these values.
//
// Example:
//
//	seed = 42
//	repetitions = 5
type fileConfig struct {
	// Seed is the default random seed; nil means time-seeded runs.
	Seed *int64 `toml:"seed"`

	// Repetitions is the default estimator trial count; 0 keeps the
	// library default.
	Repetitions int `toml:"repetitions"`
}

// defaultConfigPath returns the well-known config location, or "" when
// the user config directory cannot be determined.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mimwidth", "config.toml")
}

// loadConfig reads the TOML config at path. With an empty path the
// default location is probed and a missing file is not an error; an
// explicitly given path must exist.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Repetitions < 0 {
		return cfg, fmt.Errorf("config %s: repetitions must not be negative", path)
	}
	return cfg, nil
}
