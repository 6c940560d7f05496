package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable that overrides the grepy home directory.
const HomeEnv = "GREPY_HOME"

// GetHome returns the grepy home directory.
// Priority order:
//  1. GREPY_HOME environment variable (if set)
//  2. ~/.grepy
//
// The directory is not created; grepy only ever reads from it.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}

	return filepath.Join(userHome, ".grepy"), nil
}

// ResolveConfigPath finds the config file that applies to a run started in dir.
// Priority order:
//  1. <dir>/.grepy/config.yaml
//  2. <home>/config.yaml (see GetHome)
//
// Returns an empty path when neither file exists.
func ResolveConfigPath(dir string) string {
	local := filepath.Join(dir, ".grepy", "config.yaml")
	if fileExists(local) {
		return local
	}

	// No home directory is not fatal: fall back to defaults
	home, err := GetHome()
	if err != nil {
		return ""
	}

	global := filepath.Join(home, "config.yaml")
	if fileExists(global) {
		return global
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
