package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quillforge/quill/internal/scaffold/model"
)

// writePresetFile writes a preset document and returns its path.
func writePresetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing preset file: %v", err)
	}
	return path
}

// TestLoadPreset_Builtins loads the embedded presets
func TestLoadPreset_Builtins(t *testing.T) {
	oss, err := LoadPreset("oss")
	if err != nil {
		t.Fatalf("loading oss preset: %v", err)
	}
	if oss.Name != "oss" {
		t.Errorf("name = %q", oss.Name)
	}
	if oss.Defaults.ModuleFormat != "dual" {
		t.Errorf("module format = %q", oss.Defaults.ModuleFormat)
	}
	if oss.Extensions[model.ExtensionCI] != "github" {
		t.Errorf("ci extension = %q", oss.Extensions[model.ExtensionCI])
	}

	minimal, err := LoadPreset("minimal")
	if err != nil {
		t.Fatalf("loading minimal preset: %v", err)
	}
	if len(minimal.Extensions) != 0 {
		t.Errorf("minimal preset must carry no extensions: %v", minimal.Extensions)
	}
}

// TestBuiltinPresetNames lists the embedded presets
func TestBuiltinPresetNames(t *testing.T) {
	names := BuiltinPresetNames()
	want := map[string]bool{"oss": false, "minimal": false}
	for _, name := range names {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("built-in preset %q not listed (got %v)", name, names)
		}
	}
}

// TestLoadPreset_File resolves a file path before built-in names
func TestLoadPreset_File(t *testing.T) {
	path := writePresetFile(t, "name: custom\ndefaults:\n  buildTool: rollup\n")
	preset, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("loading preset file: %v", err)
	}
	if preset.Name != "custom" {
		t.Errorf("name = %q", preset.Name)
	}
	if preset.Defaults.BuildTool != "rollup" {
		t.Errorf("build tool = %q", preset.Defaults.BuildTool)
	}
}

// TestLoadPreset_Unknown reports the built-in names
func TestLoadPreset_Unknown(t *testing.T) {
	_, err := LoadPreset("no-such-preset")
	cfgErr, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cfgErr.Type != ConfigNotFound {
		t.Errorf("error type = %v, want ConfigNotFound", cfgErr.Type)
	}
}

// TestLoadPreset_SchemaValidation rejects documents violating the schema
func TestLoadPreset_SchemaValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing name",
			content: "defaults:\n  license: MIT\n",
		},
		{
			name:    "unknown top-level property",
			content: "name: bad\nplugins:\n  - extra\n",
		},
		{
			name:    "invalid build tool",
			content: "name: bad\ndefaults:\n  buildTool: webpack\n",
		},
		{
			name:    "invalid extension key",
			content: "name: bad\nextensions:\n  telemetry: \"on\"\n",
		},
		{
			name:    "invalid ci provider",
			content: "name: bad\nextensions:\n  ci: gitlab\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePresetFile(t, tt.content)
			_, err := LoadPreset(path)
			if err == nil {
				t.Fatal("expected schema validation error")
			}
			cfgErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			if cfgErr.Type != ConfigValidationFailed {
				t.Errorf("error type = %v, want ConfigValidationFailed", cfgErr.Type)
			}
		})
	}
}

// TestPresetApply fills empty fields without overwriting explicit values
func TestPresetApply(t *testing.T) {
	preset := &Preset{
		Name: "oss",
		Defaults: PresetDefaults{
			License:        "MIT",
			PackageManager: "pnpm",
			ModuleFormat:   "dual",
		},
		Extensions: map[string]string{
			model.ExtensionCI:    "github",
			model.ExtensionHooks: "true",
		},
	}

	cfg := &model.Configuration{
		License:    "Apache-2.0",
		Extensions: map[string]string{model.ExtensionHooks: "false"},
	}
	preset.Apply(cfg)

	// Explicit values survive.
	if cfg.License != "Apache-2.0" {
		t.Errorf("license overwritten: %q", cfg.License)
	}
	if cfg.Extensions[model.ExtensionHooks] != "false" {
		t.Errorf("extension overwritten: %q", cfg.Extensions[model.ExtensionHooks])
	}

	// Empty fields are filled.
	if cfg.PackageManager != model.PackageManagerPnpm {
		t.Errorf("package manager = %q", cfg.PackageManager)
	}
	if cfg.ModuleFormat != model.FormatDual {
		t.Errorf("module format = %q", cfg.ModuleFormat)
	}
	if cfg.Extensions[model.ExtensionCI] != "github" {
		t.Errorf("ci extension = %q", cfg.Extensions[model.ExtensionCI])
	}
}
