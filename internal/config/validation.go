package config

import (
	"fmt"

	"github.com/quillforge/quill/internal/scaffold/model"
)

// validateConfig checks that the enumerated defaults name recognized
// values. Empty values have already been filled from DefaultConfig.
func validateConfig(config *Config) error {
	if !validPackageManager(config.Defaults.PackageManager) {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "defaults.package_manager",
			fmt.Sprintf("unknown package manager: %s", config.Defaults.PackageManager))
	}
	if !validBuildTool(config.Defaults.BuildTool) {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "defaults.build_tool",
			fmt.Sprintf("unknown build tool: %s", config.Defaults.BuildTool))
	}
	if !validModuleFormat(config.Defaults.ModuleFormat) {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "defaults.module_format",
			fmt.Sprintf("unknown module format: %s", config.Defaults.ModuleFormat))
	}
	return nil
}

func validPackageManager(s string) bool {
	switch model.PackageManager(s) {
	case model.PackageManagerNpm, model.PackageManagerPnpm, model.PackageManagerYarn, model.PackageManagerBun:
		return true
	}
	return false
}

func validBuildTool(s string) bool {
	switch model.BuildTool(s) {
	case model.BuildToolTsup, model.BuildToolVite, model.BuildToolRollup, model.BuildToolEsbuild:
		return true
	}
	return false
}

func validModuleFormat(s string) bool {
	switch model.ModuleFormat(s) {
	case model.FormatESM, model.FormatCJS, model.FormatDual:
		return true
	}
	return false
}
