package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			License:        "MIT",
			PackageManager: "pnpm",
			BuildTool:      "tsup",
			ModuleFormat:   "esm",
			OutputDir:      ".",
		},
		Output: OutputConfig{
			Color: true,
			Quiet: false,
		},
	}
}

// DefaultConfigPath returns the default configuration file path,
// ~/.config/quill/config.json, or "" when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "quill", "config.json")
}
