// Package paths resolves the configuration directory and the import files
// listed in its config.yaml.
package paths

import (
	"os"
	"path/filepath"
)

// appName names the per-user configuration subdirectory.
const appName = "directory"

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "DIRECTORY_CONFIG_DIR"

// userConfigDir is replaced in tests.
var userConfigDir = os.UserConfigDir

// DefaultConfigDir returns <user config dir>/directory, where the user
// config dir is $XDG_CONFIG_HOME or ~/.config on Linux,
// ~/Library/Application Support on macOS and %AppData% on Windows.
func DefaultConfigDir() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > DIRECTORY_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveImportFile returns an absolute path for an import file listed in
// config.yaml. Relative paths are taken relative to configDir, not the
// working directory, so a config file stays valid wherever the CLI runs.
func ResolveImportFile(configDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(configDir, path)
}
