// Package config locates termgrid's configuration and layout documents
package config

import (
	"path/filepath"
)

const (
	appName = "termgrid"
	// LayoutFileName is the name of a layout document in a config directory
	LayoutFileName = "layout.yaml"
	// ProjectDirName is the per-project config directory
	ProjectDirName = ".termgrid"
)

// ConfigDir returns the global config directory for the current platform
func ConfigDir() string {
	return ConfigDirWithPlatform(DefaultPlatform)
}

// ConfigDirWithPlatform allows injecting a custom platform provider for testing
func ConfigDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %APPDATA%\termgrid\
		if appData := platform.GetEnv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "."+appName)
	case "darwin":
		// ~/Library/Application Support/termgrid/
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", appName)
	default: // linux, etc.
		// $XDG_CONFIG_HOME/termgrid/ or ~/.config/termgrid/
		if xdg := platform.GetEnv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", appName)
	}
}

// ProjectLayoutPath returns where a project's layout document lives
func ProjectLayoutPath(projectDir string) string {
	return filepath.Join(projectDir, ProjectDirName, LayoutFileName)
}

// GlobalLayoutPath returns where the user's layout document lives, or "" when
// the config directory cannot be determined
func GlobalLayoutPath(platform PlatformProvider) string {
	dir := ConfigDirWithPlatform(platform)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, LayoutFileName)
}

// FindLayout returns the layout document to use, with priority:
// 1. Project-level: .termgrid/layout.yaml under projectDir, or under the
// working directory when projectDir is ""
// 2. Global: <config dir>/layout.yaml
// It returns "" when neither exists.
func FindLayout(projectDir string) string {
	return FindLayoutWithPlatform(projectDir, DefaultPlatform)
}

// FindLayoutWithPlatform allows injecting a custom platform provider for testing
func FindLayoutWithPlatform(projectDir string, platform PlatformProvider) string {
	if projectDir == "" {
		if wd, err := platform.Getwd(); err == nil {
			projectDir = wd
		}
	}
	if projectDir != "" {
		if path := ProjectLayoutPath(projectDir); isFile(platform, path) {
			return path
		}
	}
	if path := GlobalLayoutPath(platform); path != "" && isFile(platform, path) {
		return path
	}
	return ""
}

func isFile(platform PlatformProvider, path string) bool {
	info, err := platform.Stat(path)
	return err == nil && !info.IsDir()
}
