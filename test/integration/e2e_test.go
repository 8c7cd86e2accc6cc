package integration

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quillforge/quill/internal/app"
	"github.com/quillforge/quill/internal/config"
	"github.com/quillforge/quill/internal/scaffold/generators"
	"github.com/quillforge/quill/internal/scaffold/model"
)

// TestE2E_ReactComponentLibrary generates a dual-format react component
// package with an example sub-project
func TestE2E_ReactComponentLibrary(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "buttons")
	cfg := &model.Configuration{
		Name:           "@acme/buttons",
		Description:    "Button components",
		PackageType:    model.PackageTypeComponent,
		RuntimeTarget:  model.TargetBrowser,
		ModuleFormat:   model.FormatDual,
		BuildTool:      model.BuildToolTsup,
		PackageManager: model.PackageManagerPnpm,
		License:        "MIT",
		Author:         "Acme",
		RepositoryURL:  "https://github.com/acme/buttons",
		OutputDir:      outputDir,
		IncludeExample: true,
	}

	result := newOrchestrator().GeneratePackage(context.Background(), app.GenerateOptions{
		Framework: model.FrameworkReact,
		Config:    cfg,
	})
	if !result.Success {
		t.Fatalf("generation failed: %s", result.Error)
	}

	mustStat(t, outputDir, "src/components/Example.tsx")
	mustStat(t, outputDir, "src/components/Example.test.tsx")
	mustStat(t, outputDir, "src/hooks/useExample.ts")
	mustStat(t, outputDir, "example/package.json")
	mustStat(t, outputDir, "example/index.html")
	mustStat(t, outputDir, "LICENSE")

	manifest := readJSON(t, outputDir, "package.json")
	if manifest["name"] != "@acme/buttons" {
		t.Errorf("manifest name = %v", manifest["name"])
	}
	if manifest["main"] != "./dist/index.cjs" {
		t.Errorf("dual main = %v", manifest["main"])
	}
	peers := manifest["peerDependencies"].(map[string]any)
	if _, ok := peers["react"]; !ok {
		t.Errorf("react missing from peerDependencies: %v", peers)
	}
	repo := manifest["repository"].(map[string]any)
	if repo["url"] != "https://github.com/acme/buttons" {
		t.Errorf("repository = %v", repo)
	}

	// Rendered sources carry the package identity, not template syntax.
	src, err := os.ReadFile(filepath.Join(outputDir, "README.md"))
	if err != nil {
		t.Fatalf("reading README.md: %v", err)
	}
	if strings.Contains(string(src), "{{") {
		t.Errorf("README.md contains unrendered template syntax:\n%s", src)
	}
	if !strings.Contains(string(src), "@acme/buttons") {
		t.Errorf("README.md does not mention the package name")
	}
}

// TestE2E_NodeCLIWithPreset applies the oss preset and generates a cli tool
func TestE2E_NodeCLIWithPreset(t *testing.T) {
	preset, err := config.LoadPreset("oss")
	if err != nil {
		t.Fatalf("loading oss preset: %v", err)
	}

	outputDir := filepath.Join(t.TempDir(), "tool")
	cfg := &model.Configuration{
		Name:           "@acme/tool",
		PackageType:    model.PackageTypeCLI,
		RuntimeTarget:  model.TargetNode,
		BuildTool:      model.BuildToolTsup,
		PackageManager: model.PackageManagerNpm,
		OutputDir:      outputDir,
	}
	preset.Apply(cfg)

	if cfg.ModuleFormat != model.FormatDual {
		t.Fatalf("preset did not fill module format: %q", cfg.ModuleFormat)
	}
	if cfg.PackageManager != model.PackageManagerNpm {
		t.Fatalf("preset overwrote the explicit package manager: %q", cfg.PackageManager)
	}

	result := newOrchestrator().GeneratePackage(context.Background(), app.GenerateOptions{
		Framework: model.FrameworkNode,
		Config:    cfg,
	})
	if !result.Success {
		t.Fatalf("generation failed: %s", result.Error)
	}

	// Preset extensions drive the conditional files.
	mustStat(t, outputDir, ".github/workflows/ci.yml")
	mustStat(t, outputDir, ".husky/pre-commit")
	mustStat(t, outputDir, ".changeset/config.json")
	mustStat(t, outputDir, "src/cli.ts")

	manifest := readJSON(t, outputDir, "package.json")
	bin := manifest["bin"].(map[string]any)
	if bin["tool"] != "./dist/cli.js" {
		t.Errorf("bin = %v", bin)
	}
	deps := manifest["dependencies"].(map[string]any)
	if _, ok := deps["commander"]; !ok {
		t.Errorf("commander missing from dependencies: %v", deps)
	}
	scripts := manifest["scripts"].(map[string]any)
	if scripts["prepublishOnly"] != "npm run build" {
		t.Errorf("prepublishOnly = %v", scripts["prepublishOnly"])
	}
}

// TestE2E_VueLibraryWithVite generates a vue package with vite tooling
func TestE2E_VueLibraryWithVite(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "widgets")
	cfg := &model.Configuration{
		Name:           "vue-widgets",
		PackageType:    model.PackageTypeComponent,
		RuntimeTarget:  model.TargetBrowser,
		ModuleFormat:   model.FormatESM,
		BuildTool:      model.BuildToolVite,
		PackageManager: model.PackageManagerPnpm,
		License:        "MIT",
		OutputDir:      outputDir,
	}

	result := newOrchestrator().GeneratePackage(context.Background(), app.GenerateOptions{
		Framework: model.FrameworkVue,
		Config:    cfg,
	})
	if !result.Success {
		t.Fatalf("generation failed: %s", result.Error)
	}

	mustStat(t, outputDir, "vite.config.ts")
	mustNotExist(t, outputDir, "tsup.config.ts")
	mustStat(t, outputDir, "src/components/Example.vue")

	manifest := readJSON(t, outputDir, "package.json")
	scripts := manifest["scripts"].(map[string]any)
	if scripts["build"] != "vite build" {
		t.Errorf("build script = %v", scripts["build"])
	}
	if scripts["typecheck"] != "vue-tsc --noEmit" {
		t.Errorf("typecheck script = %v", scripts["typecheck"])
	}
	peers := manifest["peerDependencies"].(map[string]any)
	if _, ok := peers["vue"]; !ok {
		t.Errorf("vue missing from peerDependencies: %v", peers)
	}
}

// TestE2E_SavedConfigurationRoundTrip writes a configuration file, checks
// it, and generates from it
func TestE2E_SavedConfigurationRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	outputDir := filepath.Join(tempDir, "utils")
	configPath := filepath.Join(tempDir, "pkg.quill.json")

	saved := map[string]any{
		"framework":      "vanilla",
		"name":           "tiny-utils",
		"packageType":    "utility",
		"runtimeTarget":  "universal",
		"moduleFormat":   "esm",
		"buildTool":      "esbuild",
		"packageManager": "bun",
		"license":        "MIT",
		"outputDir":      outputDir,
	}
	content, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		t.Fatalf("encoding configuration: %v", err)
	}
	if err := os.WriteFile(configPath, content, 0o644); err != nil {
		t.Fatalf("writing configuration file: %v", err)
	}

	file, err := config.LoadConfigurationFile(configPath)
	if err != nil {
		t.Fatalf("loading configuration file: %v", err)
	}
	fw, err := model.ParseFramework(file.Framework)
	if err != nil {
		t.Fatalf("parsing framework: %v", err)
	}

	reg := generators.NewRegistry()
	generators.RegisterDefaults(reg)
	check, err := app.CheckConfiguration(reg, fw, &file.Configuration)
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if !check.Valid {
		t.Fatalf("configuration reported invalid: %v", check.Issues)
	}

	result := newOrchestrator().GeneratePackage(context.Background(), app.GenerateOptions{
		Framework: fw,
		Config:    &file.Configuration,
	})
	if !result.Success {
		t.Fatalf("generation failed: %s", result.Error)
	}

	mustStat(t, outputDir, "esbuild.config.mjs")
	manifest := readJSON(t, outputDir, "package.json")
	if manifest["name"] != "tiny-utils" {
		t.Errorf("manifest name = %v", manifest["name"])
	}
	scripts := manifest["scripts"].(map[string]any)
	if scripts["prepublishOnly"] != "bun run build" {
		t.Errorf("prepublishOnly = %v", scripts["prepublishOnly"])
	}
}

// TestE2E_DryRunLeavesNoTrace verifies dry-run generation writes nothing
func TestE2E_DryRunLeavesNoTrace(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "ghost")
	cfg := &model.Configuration{
		Name:           "ghost-lib",
		PackageType:    model.PackageTypeLibrary,
		RuntimeTarget:  model.TargetNode,
		ModuleFormat:   model.FormatESM,
		BuildTool:      model.BuildToolTsup,
		PackageManager: model.PackageManagerPnpm,
		OutputDir:      outputDir,
	}

	result := newOrchestrator().GeneratePackage(context.Background(), app.GenerateOptions{
		Framework: model.FrameworkNode,
		Config:    cfg,
		DryRun:    true,
	})
	if !result.Success {
		t.Fatalf("dry run failed: %s", result.Error)
	}
	if len(result.Files) == 0 {
		t.Error("dry run must report the files it would write")
	}
	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Error("dry run must not create the output directory")
	}
}
