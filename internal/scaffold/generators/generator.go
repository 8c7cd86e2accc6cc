// Package generators defines the generator contract every framework plugin
// implements and the base composition that factors shared behavior
// (common dependencies, export synthesis, common files, validation) out of
// the framework-specific hooks.
package generators

import (
	"context"

	"github.com/quillforge/quill/internal/scaffold/model"
)

// Generator is the capability set a framework plugin implements. Registered
// generators are never mutated after registration; all methods recompute
// their output from the configuration on every call.
type Generator interface {
	// Descriptor returns the generator's immutable metadata.
	Descriptor() model.Descriptor

	// Dependencies returns every dependency the generated package needs,
	// common and framework-specific. Order is not significant; the
	// orchestrator folds the list into per-kind maps where the last spec
	// for a package name wins.
	Dependencies(cfg *model.Configuration) []model.DependencySpec

	// Exports returns the package's export entries. The first entry is
	// always the root subpath ".".
	Exports(cfg *model.Configuration) []model.ExportEntry

	// Files returns the file specs to materialize, common files first,
	// then framework-specific files, in declaration order.
	Files(cfg *model.Configuration) []model.GeneratedFileSpec

	// PackageExtras returns extra manifest fields (scripts, bin, engines,
	// peerDependenciesMeta). Framework extras override common extras on
	// key collision.
	PackageExtras(cfg *model.Configuration) map[string]any

	// Validate checks the configuration. The result is valid iff no
	// issue has error severity; warnings are surfaced but never block.
	Validate(cfg *model.Configuration) []model.Issue

	// PostGenerate runs once after all files and the manifest are
	// written. It receives the successful result for best-effort side
	// effects. An error fails the generation run.
	PostGenerate(ctx context.Context, cfg *model.Configuration, result *model.GenerationResult) error
}
