package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variables that move the user layout.
const (
	EnvConfigDir  = "GRIDUI_CONFIG_DIR"
	EnvLayoutFile = "GRIDUI_LAYOUT"
)

// Dir returns the gridui configuration directory. GRIDUI_CONFIG_DIR wins,
// then XDG_CONFIG_HOME (APPDATA on Windows), then the home directory.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(baseDir(), "gridui")
}

func baseDir() string {
	if runtime.GOOS == "windows" {
		if base := os.Getenv("APPDATA"); base != "" {
			return base
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
	}
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return base
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LayoutFile returns the user layout path: GRIDUI_LAYOUT when set,
// otherwise layout.yaml in Dir.
func LayoutFile() string {
	if path := os.Getenv(EnvLayoutFile); path != "" {
		return path
	}
	return filepath.Join(Dir(), "layout.yaml")
}
