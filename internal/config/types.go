// Package config loads the quill tool configuration and preset files.
// The tool configuration supplies defaults the wizard pre-fills; presets
// bundle configuration defaults with extension flags.
package config

// Config represents the global quill configuration.
type Config struct {
	// Defaults configuration for values the wizard pre-fills.
	Defaults DefaultsConfig `json:"defaults"`
	// Output configuration for display behavior.
	Output OutputConfig `json:"output"`
}

// DefaultsConfig represents default values applied to new configurations.
type DefaultsConfig struct {
	// Author is the default package author string.
	Author string `json:"author,omitempty"`
	// License is the default SPDX license identifier.
	License string `json:"license"`
	// PackageManager is the default package manager.
	PackageManager string `json:"package_manager"`
	// BuildTool is the default build tool.
	BuildTool string `json:"build_tool"`
	// ModuleFormat is the default module format.
	ModuleFormat string `json:"module_format"`
	// OutputDir is the default parent directory for generated packages.
	OutputDir string `json:"output_dir"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `json:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `json:"quiet"`
}
