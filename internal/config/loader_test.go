package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfigFile writes a config file into a temp dir and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

// TestLoad tests configuration loading and default merging
func TestLoad(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		wantErr        bool
		wantErrType    ConfigErrorType
		validateResult func(t *testing.T, cfg *Config)
	}{
		{
			name:    "full configuration",
			content: `{"defaults":{"author":"Acme","license":"Apache-2.0","package_manager":"yarn","build_tool":"vite","module_format":"dual","output_dir":"./packages"},"output":{"color":false,"quiet":true}}`,
			validateResult: func(t *testing.T, cfg *Config) {
				if cfg.Defaults.License != "Apache-2.0" {
					t.Errorf("license = %q", cfg.Defaults.License)
				}
				if cfg.Defaults.PackageManager != "yarn" {
					t.Errorf("package manager = %q", cfg.Defaults.PackageManager)
				}
				if cfg.Output.Quiet != true {
					t.Error("quiet not loaded")
				}
			},
		},
		{
			name:    "partial configuration merges defaults",
			content: `{"defaults":{"author":"Acme"}}`,
			validateResult: func(t *testing.T, cfg *Config) {
				if cfg.Defaults.Author != "Acme" {
					t.Errorf("author = %q", cfg.Defaults.Author)
				}
				if cfg.Defaults.License != "MIT" {
					t.Errorf("license default not merged: %q", cfg.Defaults.License)
				}
				if cfg.Defaults.PackageManager != "pnpm" {
					t.Errorf("package manager default not merged: %q", cfg.Defaults.PackageManager)
				}
			},
		},
		{
			name:        "invalid JSON",
			content:     `{"defaults":`,
			wantErr:     true,
			wantErrType: ConfigInvalid,
		},
		{
			name:        "unknown package manager",
			content:     `{"defaults":{"package_manager":"cargo"}}`,
			wantErr:     true,
			wantErrType: ConfigValidationFailed,
		},
		{
			name:        "unknown build tool",
			content:     `{"defaults":{"build_tool":"webpack"}}`,
			wantErr:     true,
			wantErrType: ConfigValidationFailed,
		},
		{
			name:        "unknown module format",
			content:     `{"defaults":{"module_format":"umd"}}`,
			wantErr:     true,
			wantErrType: ConfigValidationFailed,
		},
	}

	loader := NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			cfg, err := loader.Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				cfgErr, ok := err.(*ConfigError)
				if !ok {
					t.Fatalf("expected *ConfigError, got %T", err)
				}
				if cfgErr.Type != tt.wantErrType {
					t.Errorf("error type = %v, want %v", cfgErr.Type, tt.wantErrType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			tt.validateResult(t, cfg)
		})
	}
}

// TestLoad_Missing reports a typed not-found error
func TestLoad_Missing(t *testing.T) {
	loader := NewLoader()
	_, err := loader.Load(filepath.Join(t.TempDir(), "absent.json"))
	cfgErr, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cfgErr.Type != ConfigNotFound {
		t.Errorf("error type = %v, want ConfigNotFound", cfgErr.Type)
	}
}

// TestLoadOrDefault falls back to defaults only on not-found
func TestLoadOrDefault(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.LoadOrDefault(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadOrDefault error: %v", err)
	}
	if cfg.Defaults.License != "MIT" || cfg.Defaults.PackageManager != "pnpm" {
		t.Errorf("defaults not returned: %+v", cfg.Defaults)
	}

	// A present-but-invalid file is still an error.
	path := writeConfigFile(t, `{"defaults":{"build_tool":"webpack"}}`)
	if _, err := loader.LoadOrDefault(path); err == nil {
		t.Error("expected error for invalid configuration")
	}
}
