package model

import "regexp"

// Configuration describes a single package to generate. It is the contract
// between the CLI/wizard layer and the orchestrator.
type Configuration struct {
	// Name is the npm package name (optionally @scope/ prefixed).
	Name string `json:"name"`
	// Description is the human-readable package description.
	Description string `json:"description,omitempty"`
	// PackageType is the kind of package (library, component, cli, ...).
	PackageType PackageType `json:"packageType"`
	// RuntimeTarget is where the package is meant to run.
	RuntimeTarget RuntimeTarget `json:"runtimeTarget"`
	// ModuleFormat is the emitted module format (esm, cjs, dual).
	ModuleFormat ModuleFormat `json:"moduleFormat"`
	// BuildTool is the bundler configured for the package.
	BuildTool BuildTool `json:"buildTool"`
	// PackageManager is used for generated scripts and next-step hints.
	PackageManager PackageManager `json:"packageManager"`
	// License is the SPDX license identifier (e.g. "MIT").
	License string `json:"license,omitempty"`
	// Author is the package author string.
	Author string `json:"author,omitempty"`
	// RepositoryURL is the optional repository URL.
	RepositoryURL string `json:"repositoryUrl,omitempty"`
	// OutputDir is the directory the package is written into.
	OutputDir string `json:"outputDir"`
	// IncludeExample requests an example sub-project alongside the source.
	IncludeExample bool `json:"includeExample,omitempty"`
	// Extensions holds preset-driven extension flags (ci provider, git
	// hooks, changelog tooling). Keys are validated against a closed set
	// at the orchestrator boundary.
	Extensions map[string]string `json:"extensions,omitempty"`
}

// Package name rules follow npm: optional @scope/ prefix, lowercase
// alphanumerics with dots, hyphens and underscores.
var packageNamePattern = regexp.MustCompile(`^(@[a-z0-9][a-z0-9-_.]*\/)?[a-z0-9][a-z0-9-_.]*$`)

// IsValidPackageName reports whether name satisfies npm package naming rules.
func IsValidPackageName(name string) bool {
	return len(name) > 0 && len(name) <= 214 && packageNamePattern.MatchString(name)
}

// IsScoped reports whether name carries an @scope/ prefix.
func IsScoped(name string) bool {
	return len(name) > 0 && name[0] == '@'
}

// ShortName returns the package name without its scope prefix.
// "@acme/widgets" yields "widgets"; unscoped names pass through unchanged.
func ShortName(name string) string {
	if !IsScoped(name) {
		return name
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '/' {
			return name[i+1:]
		}
	}
	return name
}

// Extension flag keys recognized at the orchestrator boundary.
const (
	ExtensionCI        = "ci"
	ExtensionHooks     = "hooks"
	ExtensionChangelog = "changelog"
)

// RecognizedExtensions returns the closed set of extension flag keys.
func RecognizedExtensions() []string {
	return []string{ExtensionCI, ExtensionHooks, ExtensionChangelog}
}

// Extension returns the value of an extension flag, or "" if unset.
func (c *Configuration) Extension(key string) string {
	if c.Extensions == nil {
		return ""
	}
	return c.Extensions[key]
}
