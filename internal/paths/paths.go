package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

// DefaultStateDir returns the default daydid state directory.
func DefaultStateDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".local", "state", "daydid"), nil
}

// DefaultDataFile returns the default location of the todo document.
func DefaultDataFile() (string, error) {
	dir, err := DefaultStateDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "todos.json"), nil
}

// DefaultLogFile returns the default location of the log file.
func DefaultLogFile() (string, error) {
	dir, err := DefaultStateDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "did.log"), nil
}

// DefaultConfigFile returns the default location of the config file.
func DefaultConfigFile() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "daydid", "config.toml"), nil
}

// ResolveWithDefault returns override when non-empty, otherwise the
// result of defaultFn.
func ResolveWithDefault(override string, defaultFn func() (string, error)) (string, error) {
	if override != "" {
		return override, nil
	}
	return defaultFn()
}
