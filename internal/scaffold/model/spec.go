package model

// DependencyKind classifies a dependency into a package.json section.
type DependencyKind string

// Dependency kinds, matching package.json section names.
const (
	DependencyRuntime  DependencyKind = "dependencies"
	DependencyDev      DependencyKind = "devDependencies"
	DependencyPeer     DependencyKind = "peerDependencies"
	DependencyOptional DependencyKind = "optionalDependencies"
)

// DependencySpec declares a single dependency a generator contributes.
// Multiple specs may target the same package name; when folded into a
// manifest section the last spec for a name wins.
type DependencySpec struct {
	// Name is the npm package name.
	Name string
	// Version is the version range written into the manifest.
	Version string
	// Kind selects the manifest section the dependency lands in.
	Kind DependencyKind
}

// Dep is shorthand for constructing a DependencySpec.
func Dep(name, version string, kind DependencyKind) DependencySpec {
	return DependencySpec{Name: name, Version: version, Kind: kind}
}

// ExportEntry declares one conditional-exports rule for a subpath.
// Every generated package carries a root entry ("."); generators may add
// further subpaths such as a CLI executable entry.
type ExportEntry struct {
	// Subpath is the export subpath (".", "./cli", ...).
	Subpath string
	// Types is the declaration-file path for the subpath.
	Types string
	// Import is the ESM entry point.
	Import string
	// Require is the CJS entry point (dual format only).
	Require string
	// Default is the fallback entry point.
	Default string
}

// Resolvable reports whether the entry resolves to at least one of an
// import or default path. Entries failing this are a validation error.
func (e ExportEntry) Resolvable() bool {
	return e.Import != "" || e.Default != ""
}

// GeneratedFileSpec declares one file a generator wants written. Specs are
// recomputed from the configuration on every call and consumed exactly once
// per generation run.
type GeneratedFileSpec struct {
	// Path is the output path relative to the package root.
	Path string
	// Template is the template reference to render. Empty means Content
	// is written literally.
	Template string
	// Content is the literal file content when no template is set.
	Content string
	// Condition, when non-nil, gates inclusion of the file. A false
	// result skips the file for this configuration.
	Condition func(*Configuration) bool
}

// IsTemplate reports whether the spec is template-backed.
func (s GeneratedFileSpec) IsTemplate() bool {
	return s.Template != ""
}

// Included reports whether the spec applies to the given configuration.
func (s GeneratedFileSpec) Included(cfg *Configuration) bool {
	return s.Condition == nil || s.Condition(cfg)
}
