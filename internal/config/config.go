// Package config loads the optional fecode configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the optional fecode configuration file.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
}

// DefaultsConfig holds persistent flag defaults. A nil field means the
// flag's built-in default applies.
type DefaultsConfig struct {
	Verify     *bool   `toml:"verify"`
	NoProgress *bool   `toml:"no_progress"`
	ChunkSize  *string `toml:"chunk_size"`
	BWLimit    *string `toml:"bwlimit"`
}

// Path returns the resolved path to the config file.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "fecode", "config.toml")
}

// Load reads the config file from the XDG path. A missing file yields a
// zero Config and no error.
func Load() (Config, error) {
	path := Path()
	if path == "" {
		return Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config file at path.
func LoadFile(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
	}

	// Reject bad sizes at load time rather than when a flag falls back to them.
	if cfg.Defaults.ChunkSize != nil {
		n, err := ParseSize(*cfg.Defaults.ChunkSize)
		if err != nil {
			return Config{}, fmt.Errorf("chunk_size: %w", err)
		}
		if err := CheckChunkSize(n); err != nil {
			return Config{}, fmt.Errorf("chunk_size %q: %w", *cfg.Defaults.ChunkSize, err)
		}
	}
	if cfg.Defaults.BWLimit != nil {
		if _, err := ParseSize(*cfg.Defaults.BWLimit); err != nil {
			return Config{}, fmt.Errorf("bwlimit: %w", err)
		}
	}
	return cfg, nil
}
