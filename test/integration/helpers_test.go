package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/quillforge/quill/internal/app"
	"github.com/quillforge/quill/internal/scaffold/generators"
	"github.com/quillforge/quill/internal/scaffold/render"
)

// newOrchestrator builds an orchestrator over the built-in generators and
// the embedded templates, the same wiring the CLI uses.
func newOrchestrator() *app.Orchestrator {
	reg := generators.NewRegistry()
	generators.RegisterDefaults(reg)
	return app.NewOrchestrator(reg, render.NewRenderer())
}

// mustStat fails the test when a generated file is missing.
func mustStat(t *testing.T, outputDir, relPath string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(outputDir, relPath)); err != nil {
		t.Errorf("expected generated file %s: %v", relPath, err)
	}
}

// mustNotExist fails the test when a skipped file was written.
func mustNotExist(t *testing.T, outputDir, relPath string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(outputDir, relPath)); err == nil {
		t.Errorf("file %s should not have been generated", relPath)
	}
}

// readJSON decodes a generated JSON file.
func readJSON(t *testing.T, outputDir, relPath string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(outputDir, relPath))
	if err != nil {
		t.Fatalf("reading %s: %v", relPath, err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("%s is not valid JSON: %v", relPath, err)
	}
	return m
}
