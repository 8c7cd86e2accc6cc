package generators

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/quillforge/quill/internal/scaffold/model"
)

// Hooks supplies the framework-specific half of a generator. Every field is
// optional; a nil hook contributes nothing. New frameworks are added by
// writing a new Hooks value and descriptor, never by touching the base,
// registry, or orchestrator.
type Hooks struct {
	// Dependencies returns framework-specific dependencies, appended to
	// the common set.
	Dependencies func(cfg *model.Configuration) []model.DependencySpec
	// Exports returns additional export entries beyond the root entry.
	Exports func(cfg *model.Configuration) []model.ExportEntry
	// Files returns framework-specific file specs, appended after the
	// common files.
	Files func(cfg *model.Configuration) []model.GeneratedFileSpec
	// PackageExtras returns framework-specific manifest extras; they win
	// over common extras on key collision.
	PackageExtras func(cfg *model.Configuration) map[string]any
	// Validate may add advisory issues. Issues it marks with error
	// severity fail validation; everything else is a warning.
	Validate func(cfg *model.Configuration) []model.Issue
	// PostGenerate runs after a successful write of all files and the
	// manifest. Nil means no-op.
	PostGenerate func(ctx context.Context, cfg *model.Configuration, result *model.GenerationResult) error
}

// Base composes the shared generator behavior with a set of framework
// hooks. It is the only Generator implementation in the tree; the five
// framework generators are Base values with different descriptors and hooks.
type Base struct {
	desc  model.Descriptor
	hooks Hooks
}

// New builds a generator from a descriptor and framework hooks.
func New(desc model.Descriptor, hooks Hooks) *Base {
	return &Base{desc: desc, hooks: hooks}
}

// Descriptor returns the generator's metadata.
func (b *Base) Descriptor() model.Descriptor {
	return b.desc
}

// Dependencies returns the common dependency set followed by the
// framework-specific dependencies.
func (b *Base) Dependencies(cfg *model.Configuration) []model.DependencySpec {
	deps := commonDependencies(cfg)
	if b.hooks.Dependencies != nil {
		deps = append(deps, b.hooks.Dependencies(cfg)...)
	}
	return deps
}

// Exports returns the root export entry followed by any framework-specific
// entries. For dual module format the root entry carries a require path;
// that is base behavior, not left to hooks.
func (b *Base) Exports(cfg *model.Configuration) []model.ExportEntry {
	root := model.ExportEntry{
		Subpath: ".",
		Types:   "./dist/index.d.ts",
		Import:  "./dist/index.js",
		Default: "./dist/index.js",
	}
	if cfg.ModuleFormat == model.FormatDual {
		root.Require = "./dist/index.cjs"
	}
	entries := []model.ExportEntry{root}
	if b.hooks.Exports != nil {
		entries = append(entries, b.hooks.Exports(cfg)...)
	}
	return entries
}

// Files returns the common file specs followed by the framework-specific
// specs, preserving declaration order within each group.
func (b *Base) Files(cfg *model.Configuration) []model.GeneratedFileSpec {
	files := commonFiles(cfg)
	if b.hooks.Files != nil {
		files = append(files, b.hooks.Files(cfg)...)
	}
	return files
}

// PackageExtras merges the common extras with the framework extras.
// Framework extras take precedence on key collision.
func (b *Base) PackageExtras(cfg *model.Configuration) map[string]any {
	extras := commonExtras(cfg)
	if b.hooks.PackageExtras != nil {
		for k, v := range b.hooks.PackageExtras(cfg) {
			extras[k] = v
		}
	}
	return extras
}

// Validate performs the structural and membership checks shared by all
// generators, then appends the framework hook's advisory issues.
func (b *Base) Validate(cfg *model.Configuration) []model.Issue {
	var issues []model.Issue

	if cfg.Name == "" {
		issues = append(issues, model.ErrorIssue("name", "package name is required"))
	} else if !model.IsValidPackageName(cfg.Name) {
		issues = append(issues, model.ErrorIssue("name",
			fmt.Sprintf("invalid package name: %q (expected npm-style name like my-lib or @scope/my-lib)", cfg.Name)))
	}
	if cfg.OutputDir == "" {
		issues = append(issues, model.ErrorIssue("outputDir", "output directory is required"))
	}

	if !b.desc.SupportsPackageType(cfg.PackageType) {
		issues = append(issues, model.ErrorIssue("packageType",
			fmt.Sprintf("package type %q is not supported by %s (supported: %v)",
				cfg.PackageType, b.desc.ID, b.desc.PackageTypes)))
	}
	if !b.desc.SupportsRuntimeTarget(cfg.RuntimeTarget) {
		issues = append(issues, model.ErrorIssue("runtimeTarget",
			fmt.Sprintf("runtime target %q is not supported by %s (supported: %v)",
				cfg.RuntimeTarget, b.desc.ID, b.desc.RuntimeTargets)))
	}

	issues = append(issues, b.validateExports(cfg)...)
	issues = append(issues, b.validateDependencyRanges(cfg)...)

	if b.hooks.Validate != nil {
		issues = append(issues, b.hooks.Validate(cfg)...)
	}
	return issues
}

// validateExports checks that every export entry resolves to at least an
// import or default path.
func (b *Base) validateExports(cfg *model.Configuration) []model.Issue {
	var issues []model.Issue
	for _, entry := range b.Exports(cfg) {
		if !entry.Resolvable() {
			issues = append(issues, model.ErrorIssue("exports",
				fmt.Sprintf("export entry %q resolves neither an import nor a default path", entry.Subpath)))
		}
	}
	return issues
}

// validateDependencyRanges warns about version ranges that do not parse as
// semver constraints. Advisory only: npm accepts ranges (tags, URLs) that
// semver constraints do not model.
func (b *Base) validateDependencyRanges(cfg *model.Configuration) []model.Issue {
	var issues []model.Issue
	for _, dep := range b.Dependencies(cfg) {
		if _, err := semver.NewConstraint(dep.Version); err != nil {
			issues = append(issues, model.Warning("dependencies",
				fmt.Sprintf("dependency %s has a version range %q that is not a semver constraint", dep.Name, dep.Version)))
		}
	}
	return issues
}

// PostGenerate runs the framework hook, if any.
func (b *Base) PostGenerate(ctx context.Context, cfg *model.Configuration, result *model.GenerationResult) error {
	if b.hooks.PostGenerate == nil {
		return nil
	}
	return b.hooks.PostGenerate(ctx, cfg, result)
}
