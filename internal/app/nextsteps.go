package app

import (
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"github.com/quillforge/quill/internal/scaffold/model"
)

// nextSteps derives the suggested shell commands surfaced after a
// successful run from the configured package manager and the output
// directory basename. Paths are quoted so the commands survive copy/paste.
func nextSteps(cfg *model.Configuration) []string {
	pm := string(cfg.PackageManager)
	if pm == "" {
		pm = string(model.PackageManagerNpm)
	}
	steps := []string{
		shellquote.Join("cd", filepath.Base(filepath.Clean(cfg.OutputDir))),
		pm + " install",
		pm + " run build",
		pm + " run test",
	}
	if cfg.IncludeExample {
		steps = append(steps, shellquote.Join("cd", "example")+" && "+pm+" install && "+pm+" run dev")
	}
	return steps
}
