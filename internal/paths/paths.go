// Package paths resolves the default filesystem locations for board data.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStateDir returns the default pizarra state directory.
func DefaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "state", "pizarra"), nil
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "pizarra", "config.toml"), nil
}
