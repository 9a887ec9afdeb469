// Package config handles loading the daydid config.toml file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/daydid/daydid/internal/paths"
)

// Config represents the optional ~/.config/daydid/config.toml file.
type Config struct {
	// DataFile overrides the todo document location.
	DataFile string `toml:"data_file"`

	// Days is the lookback window for commit collection.
	Days int `toml:"days"`

	// LogLevel selects logging verbosity (debug, info, warn, error).
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Days:     7,
		LogLevel: "warn",
	}
}

// Load reads the global config file. Returns defaults if the file
// does not exist.
func Load() (*Config, error) {
	path, err := paths.DefaultConfigFile()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path, applying defaults for
// unset fields.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1, got %d", c.Days)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	return nil
}

// ResolveDataFile returns the configured data file location, or the
// default under the state directory.
func (c *Config) ResolveDataFile() (string, error) {
	return paths.ResolveWithDefault(c.DataFile, paths.DefaultDataFile)
}
