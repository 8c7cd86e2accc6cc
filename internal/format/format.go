// Package format normalizes generated file content before it is written.
// Each recognized file extension has its own profile; unrecognized
// extensions pass through untouched.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile identifies the formatting applied to a file.
type Profile int

const (
	// ProfileNone leaves content untouched.
	ProfileNone Profile = iota
	// ProfileSource trims trailing whitespace and normalizes the final
	// newline (typescript, javascript, markdown, html, css).
	ProfileSource
	// ProfileJSON re-indents JSON with two spaces.
	ProfileJSON
	// ProfileYAML round-trips YAML through the parser to normalize
	// indentation, preserving key order.
	ProfileYAML
)

// profiles maps file extensions to formatting profiles.
var profiles = map[string]Profile{
	".ts":   ProfileSource,
	".tsx":  ProfileSource,
	".js":   ProfileSource,
	".jsx":  ProfileSource,
	".mjs":  ProfileSource,
	".cjs":  ProfileSource,
	".vue":  ProfileSource,
	".md":   ProfileSource,
	".html": ProfileSource,
	".css":  ProfileSource,
	".json": ProfileJSON,
	".yml":  ProfileYAML,
	".yaml": ProfileYAML,
}

// ProfileFor returns the formatting profile for a file path, keyed by its
// extension.
func ProfileFor(path string) Profile {
	return profiles[strings.ToLower(filepath.Ext(path))]
}

// Format runs content through the profile for the given path. Content with
// an unrecognized extension is returned unchanged.
func Format(path string, content []byte) ([]byte, error) {
	switch ProfileFor(path) {
	case ProfileJSON:
		return formatJSON(content)
	case ProfileYAML:
		return formatYAML(content)
	case ProfileSource:
		return normalizeWhitespace(content), nil
	default:
		return content, nil
	}
}

func formatJSON(content []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(content), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting JSON: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// formatYAML round-trips through yaml.Node, which keeps key order while
// normalizing indentation and spacing.
func formatYAML(content []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return nil, fmt.Errorf("formatting YAML: %w", err)
	}
	if node.Kind == 0 {
		// Empty document.
		return content, nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("formatting YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("formatting YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// normalizeWhitespace trims trailing spaces from every line and guarantees
// exactly one trailing newline.
func normalizeWhitespace(content []byte) []byte {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.Join(lines, "\n")
	out = strings.TrimRight(out, "\n") + "\n"
	return []byte(out)
}
