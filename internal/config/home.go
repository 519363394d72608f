package config

import (
	"os"
	"path/filepath"
)

const (
	// DirName is the per-project settings directory
	DirName = ".hevcparam"
	// FileName is the settings file inside DirName
	FileName = "config.yaml"
	// EnvConfig names an explicit settings file
	EnvConfig = "HEVCPARAM_CONFIG"
)

// FindConfigPath returns the settings file to load when none was given on
// the command line.
// Priority order:
//  1. HEVCPARAM_CONFIG environment variable (if set)
//  2. the nearest .hevcparam/config.yaml in start or one of its parents
//  3. start/.hevcparam/config.yaml, which may not exist
func FindConfigPath(start string) string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}

	current := start
	for {
		candidate := filepath.Join(current, DirName, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return filepath.Join(start, DirName, FileName)
}
