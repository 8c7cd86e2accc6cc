package model

import "testing"

// TestIsValidPackageName tests npm package name validation
func TestIsValidPackageName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		// Valid names
		{
			name:  "simple name",
			input: "my-lib",
			want:  true,
		},
		{
			name:  "scoped name",
			input: "@acme/widgets",
			want:  true,
		},
		{
			name:  "dots and underscores",
			input: "lib.core_utils",
			want:  true,
		},
		{
			name:  "leading digit",
			input: "2fast",
			want:  true,
		},

		// Invalid names
		{
			name:  "empty",
			input: "",
			want:  false,
		},
		{
			name:  "uppercase",
			input: "MyLib",
			want:  false,
		},
		{
			name:  "leading hyphen",
			input: "-lib",
			want:  false,
		},
		{
			name:  "scope without name",
			input: "@acme/",
			want:  false,
		},
		{
			name:  "spaces",
			input: "my lib",
			want:  false,
		},
		{
			name:  "double scope",
			input: "@a/@b/c",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPackageName(tt.input); got != tt.want {
				t.Errorf("IsValidPackageName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestIsValidPackageName_Length rejects names longer than the npm limit
func TestIsValidPackageName_Length(t *testing.T) {
	long := make([]byte, 215)
	for i := range long {
		long[i] = 'a'
	}
	if IsValidPackageName(string(long)) {
		t.Error("expected 215-character name to be rejected")
	}
	if !IsValidPackageName(string(long[:214])) {
		t.Error("expected 214-character name to be accepted")
	}
}

// TestShortName tests scope stripping
func TestShortName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "scoped",
			input: "@acme/widgets",
			want:  "widgets",
		},
		{
			name:  "unscoped",
			input: "widgets",
			want:  "widgets",
		},
		{
			name:  "scope without slash passes through",
			input: "@acme",
			want:  "@acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortName(tt.input); got != tt.want {
				t.Errorf("ShortName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestExtension tests extension flag lookup
func TestExtension(t *testing.T) {
	cfg := &Configuration{
		Extensions: map[string]string{ExtensionCI: "github"},
	}
	if got := cfg.Extension(ExtensionCI); got != "github" {
		t.Errorf("Extension(ci) = %q, want %q", got, "github")
	}
	if got := cfg.Extension(ExtensionHooks); got != "" {
		t.Errorf("Extension(hooks) = %q, want empty", got)
	}

	var empty Configuration
	if got := empty.Extension(ExtensionCI); got != "" {
		t.Errorf("Extension on nil map = %q, want empty", got)
	}
}
