// Package paths resolves the per-user directories hookman reads from.
//
// Resolution order for the configuration home:
// 1. HOOKMAN_HOME (portable root) → $HOOKMAN_HOME/config
// 2. The platform user config dir (os.UserConfigDir; honours XDG_CONFIG_HOME on Unix)
package paths

import (
	"os"
	"path/filepath"
)

const (
	appName          = "hookman"
	globalConfigName = "hookman.toml"
)

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if home := os.Getenv("HOOKMAN_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return ""
}

// ConfigDir returns the hookman configuration directory, or "" when the
// platform has no notion of a per-user configuration directory.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// GlobalConfigFile returns the path of the user-global configuration file.
func GlobalConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, globalConfigName)
}
