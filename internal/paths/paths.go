// Package paths resolves configuration and data directory locations.
//
// Both directories default to the current working directory so that a
// viewsync database travels with the table project it describes. Flags and
// environment variables override per invocation.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names.
const (
	DefaultConfigDirName = ".viewsync"
	DefaultDataDirName   = ".viewsync-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "VIEWSYNC_CONFIG_DIR"
	EnvDataDir   = "VIEWSYNC_DATA_DIR"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > VIEWSYNC_CONFIG_DIR env > $(CWD)/.viewsync.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > VIEWSYNC_DATA_DIR env > $(CWD)/.viewsync-db.
//
// configYAMLValue carries the data_dir key loaded from config.yaml, empty
// when the config file does not set one.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
