// Package paths resolves the configuration directory and database file
// locations for the queryboard CLI.
package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative config directory name used when no override is active.
const DefaultConfigDirName = ".queryboard"

// Environment variable names for overrides.
const (
	EnvConfigDir    = "QUERYBOARD_CONFIG_DIR"
	EnvDatabaseFile = "QUERYBOARD_DB"
)

// ErrDatabaseFileUnset is returned when no database file is supplied by
// flag, config, or environment.
var ErrDatabaseFileUnset = errors.New("no database file: pass --db, set database_file in config.yaml, or set QUERYBOARD_DB")

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/queryboard (fallback ~/.config/queryboard)
// macOS:   ~/Library/Application Support/queryboard
// Windows: %APPDATA%/queryboard
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "queryboard"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "queryboard"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "queryboard"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > QUERYBOARD_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDatabaseFile returns the database file path following the precedence
// chain: flag > config.yaml database_file > QUERYBOARD_DB env. There is no
// default; the tool serves queries over an existing database and refuses to
// guess which one.
func ResolveDatabaseFile(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDatabaseFile); env != "" {
		return filepath.Abs(env)
	}
	return "", ErrDatabaseFileUnset
}
