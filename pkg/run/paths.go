package run

import (
	"os"
	"path/filepath"
)

// dbPath resolves the history database path: the -db flag, then the config
// file, then db under ~/.smython, creating the directory as needed.
func dbPath(flagValue string, cfg Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.DB != "" {
		return cfg.DB, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".smython")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "db"), nil
}
