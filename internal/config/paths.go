package config

import (
	"os"
	"path/filepath"
)

const appDir = "aqa"

// DefaultPath returns the config file location:
// $XDG_CONFIG_HOME/aqa/config.yaml, falling back to ~/.config/aqa/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), appDir, "config.yaml")
}

// DefaultLogPath returns the log file location:
// $XDG_STATE_HOME/aqa/aqa.log, falling back to ~/.local/state/aqa/aqa.log.
func DefaultLogPath() string {
	return filepath.Join(xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state")), appDir, "aqa.log")
}

func xdgDir(envVar, homeRel string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, homeRel)
}
