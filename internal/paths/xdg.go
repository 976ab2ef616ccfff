// Package paths resolves where aocday looks for its configuration.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "aocday"

// ConfigFileName is the file looked up inside the config directory.
const ConfigFileName = "config.yaml"

// Env is the interface for environment variable lookups.
// Implementations must return "" for unset variables.
type Env interface {
	Get(key string) string
}

// OSEnv reads from the process environment.
type OSEnv struct{}

func (OSEnv) Get(key string) string { return os.Getenv(key) }

// IsDarwin returns true if the current OS is macOS.
func IsDarwin() bool {
	return runtime.GOOS == "darwin"
}

// ConfigDir computes the config directory.
//
// Resolution order:
//  1. AOC_CONFIG_DIR env var (if set)
//  2. macOS: ~/Library/Preferences/aocday
//  3. XDG_CONFIG_HOME/aocday (if set)
//  4. ~/.config/aocday
//
// homeDir must be absolute. Nothing is created on disk and ~ inside env
// vars is taken literally.
func ConfigDir(env Env, homeDir string) string {
	return ConfigDirWithOS(env, homeDir, IsDarwin())
}

// ConfigDirWithOS is like ConfigDir but accepts an explicit OS flag for testing.
func ConfigDirWithOS(env Env, homeDir string, isDarwin bool) string {
	if v := env.Get("AOC_CONFIG_DIR"); v != "" {
		return v
	}
	if isDarwin {
		return filepath.Join(homeDir, "Library", "Preferences", appName)
	}
	if v := env.Get("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName)
	}
	return filepath.Join(homeDir, ".config", appName)
}

// DefaultConfigFile returns the config file path for env and homeDir.
func DefaultConfigFile(env Env, homeDir string) string {
	return filepath.Join(ConfigDir(env, homeDir), ConfigFileName)
}
