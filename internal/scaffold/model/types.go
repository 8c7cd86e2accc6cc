// Package model defines the data model shared by the scaffolding engine:
// the configuration describing what to generate, the value types generators
// emit (dependencies, exports, file specs), and the result returned to
// callers.
package model

import (
	"fmt"
	"strings"
)

// Framework identifies a supported target framework.
type Framework string

// Supported frameworks.
const (
	FrameworkReact   Framework = "react"
	FrameworkVue     Framework = "vue"
	FrameworkSvelte  Framework = "svelte"
	FrameworkVanilla Framework = "vanilla"
	FrameworkNode    Framework = "node"
)

// Frameworks returns all supported frameworks in canonical order.
func Frameworks() []Framework {
	return []Framework{
		FrameworkReact,
		FrameworkVue,
		FrameworkSvelte,
		FrameworkVanilla,
		FrameworkNode,
	}
}

// ParseFramework parses a framework tag, case-insensitively.
func ParseFramework(s string) (Framework, error) {
	f := Framework(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Frameworks() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown framework: %q (supported: %s)", s, joinFrameworks())
}

func joinFrameworks() string {
	names := make([]string, 0, len(Frameworks()))
	for _, f := range Frameworks() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// PackageType identifies the kind of package being generated.
type PackageType string

// Supported package types.
const (
	PackageTypeLibrary   PackageType = "library"
	PackageTypeComponent PackageType = "component"
	PackageTypeHook      PackageType = "hook"
	PackageTypeUtility   PackageType = "utility"
	PackageTypeCLI       PackageType = "cli"
)

// RuntimeTarget identifies where the generated package is meant to run.
type RuntimeTarget string

// Supported runtime targets.
const (
	TargetBrowser   RuntimeTarget = "browser"
	TargetNode      RuntimeTarget = "node"
	TargetUniversal RuntimeTarget = "universal"
)

// ModuleFormat identifies the module format of the generated package.
type ModuleFormat string

// Supported module formats.
const (
	FormatESM  ModuleFormat = "esm"
	FormatCJS  ModuleFormat = "cjs"
	FormatDual ModuleFormat = "dual"
)

// BuildTool identifies the bundler configured for the generated package.
type BuildTool string

// Supported build tools.
const (
	BuildToolTsup    BuildTool = "tsup"
	BuildToolVite    BuildTool = "vite"
	BuildToolRollup  BuildTool = "rollup"
	BuildToolEsbuild BuildTool = "esbuild"
)

// PackageManager identifies the package manager referenced in generated
// scripts and next-step suggestions.
type PackageManager string

// Supported package managers.
const (
	PackageManagerNpm  PackageManager = "npm"
	PackageManagerPnpm PackageManager = "pnpm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerBun  PackageManager = "bun"
)
