package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	// Handle ~/path
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unchanged if we can't get home
		}
		return filepath.Join(home, path[2:])
	}

	// Handle standalone ~
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}

// ExpandPath expands ~ and ${VAR} environment references in a user-supplied
// path. Used for --state, --layout and theme directories so config files
// can say things like ${XDG_CONFIG_HOME}/flowviz/themes.
// Unset variables expand to the empty string, matching shell behavior.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	expanded := os.Expand(path, func(key string) string {
		return os.Getenv(key)
	})
	return ExpandTilde(expanded)
}
