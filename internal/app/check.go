package app

import (
	"fmt"

	"github.com/quillforge/quill/internal/debug"
	"github.com/quillforge/quill/internal/scaffold/generators"
	"github.com/quillforge/quill/internal/scaffold/model"
)

// CheckResult holds the outcome of a validation-only run.
type CheckResult struct {
	// Valid indicates no error-severity issues were found.
	Valid bool
	// Issues lists every finding, warnings included.
	Issues []model.Issue
	// GeneratorID identifies the generator that performed validation.
	GeneratorID string
}

// CheckConfiguration validates a configuration against the primary
// generator for a framework without touching the filesystem.
func CheckConfiguration(registry *generators.Registry, fw model.Framework, cfg *model.Configuration) (*CheckResult, error) {
	debug.DebugSection("[app] CheckConfiguration workflow start")
	debug.DebugValue("[app] Framework", fw)

	gen, ok := registry.GetPrimary(fw)
	if !ok {
		return nil, NewGeneratorNotFoundError(
			fmt.Sprintf("no generator registered for framework %q", fw))
	}

	issues := gen.Validate(cfg)
	return &CheckResult{
		Valid:       !model.HasErrors(issues),
		Issues:      issues,
		GeneratorID: gen.Descriptor().ID,
	}, nil
}
