// Package datadir locates feedrank's per-user data directory.
package datadir

import (
	"fmt"
	"os"
	"path/filepath"
)

// App is the directory name under the XDG data home.
const App = "feedrank"

// Dir resolves $XDG_DATA_HOME/feedrank, else ~/.local/share/feedrank.
func Dir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, App), nil
}

// File returns name inside Dir.
func File(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// EnsureParent creates the parent directory of path if it doesn't exist.
func EnsureParent(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
