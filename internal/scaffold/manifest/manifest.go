// Package manifest synthesizes the package.json for a generated package
// from the generator's declared dependencies, exports, and extra fields.
// Consumers validating generated output depend on this exact shape.
package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/quillforge/quill/internal/debug"
	"github.com/quillforge/quill/internal/scaffold/model"
)

// InitialVersion is the version every generated package starts at,
// regardless of any generator-declared version.
const InitialVersion = "0.1.0"

// Repository is the package.json repository object.
type Repository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// ExportTarget is the conditional-exports value for one subpath.
// Condition order matters to npm: types must precede the entry conditions.
type ExportTarget struct {
	Types   string `json:"types,omitempty"`
	Import  string `json:"import,omitempty"`
	Require string `json:"require,omitempty"`
	Default string `json:"default,omitempty"`
}

// Manifest is the synthesized package.json. Field order here is the field
// order in the written file.
type Manifest struct {
	Name                 string                  `json:"name"`
	Version              string                  `json:"version"`
	Description          string                  `json:"description,omitempty"`
	Type                 string                  `json:"type"`
	Main                 string                  `json:"main"`
	Module               string                  `json:"module,omitempty"`
	Types                string                  `json:"types"`
	Bin                  map[string]string       `json:"bin,omitempty"`
	Exports              map[string]ExportTarget `json:"exports"`
	SideEffects          any                     `json:"sideEffects,omitempty"`
	Files                []string                `json:"files,omitempty"`
	Scripts              map[string]string       `json:"scripts,omitempty"`
	Keywords             []string                `json:"keywords"`
	Author               string                  `json:"author,omitempty"`
	License              string                  `json:"license,omitempty"`
	Repository           *Repository             `json:"repository,omitempty"`
	Engines              map[string]string       `json:"engines,omitempty"`
	PeerDependenciesMeta map[string]any          `json:"peerDependenciesMeta,omitempty"`
	Dependencies         map[string]string       `json:"dependencies,omitempty"`
	DevDependencies      map[string]string       `json:"devDependencies,omitempty"`
	PeerDependencies     map[string]string       `json:"peerDependencies,omitempty"`
	OptionalDependencies map[string]string       `json:"optionalDependencies,omitempty"`
}

// GroupDependencies folds a dependency list into per-kind name→range maps.
// The last spec for a given name within a kind wins. Kinds with no
// dependencies are absent from the result.
func GroupDependencies(specs []model.DependencySpec) map[model.DependencyKind]map[string]string {
	groups := make(map[model.DependencyKind]map[string]string)
	for _, spec := range specs {
		if groups[spec.Kind] == nil {
			groups[spec.Kind] = make(map[string]string)
		}
		groups[spec.Kind][spec.Name] = spec.Version
	}
	return groups
}

// Synthesize builds the package.json content for a configuration from the
// generator's outputs. The result is indented JSON with a trailing newline.
func Synthesize(cfg *model.Configuration, deps []model.DependencySpec, exports []model.ExportEntry, extras map[string]any) ([]byte, error) {
	m := &Manifest{
		Name:        cfg.Name,
		Version:     InitialVersion,
		Description: cfg.Description,
		Keywords:    []string{},
		Author:      cfg.Author,
		License:     cfg.License,
		Scripts:     baseScripts(cfg),
	}

	switch cfg.ModuleFormat {
	case model.FormatCJS:
		m.Type = "commonjs"
		m.Main = "./dist/index.js"
	case model.FormatDual:
		m.Type = "module"
		m.Main = "./dist/index.cjs"
		m.Module = "./dist/index.js"
	default:
		m.Type = "module"
		m.Main = "./dist/index.js"
		m.Module = "./dist/index.js"
	}
	m.Types = "./dist/index.d.ts"

	m.Exports = make(map[string]ExportTarget, len(exports))
	for _, entry := range exports {
		m.Exports[entry.Subpath] = ExportTarget{
			Types:   entry.Types,
			Import:  entry.Import,
			Require: entry.Require,
			Default: entry.Default,
		}
	}

	groups := GroupDependencies(deps)
	m.Dependencies = groups[model.DependencyRuntime]
	m.DevDependencies = groups[model.DependencyDev]
	m.PeerDependencies = groups[model.DependencyPeer]
	m.OptionalDependencies = groups[model.DependencyOptional]

	if cfg.RepositoryURL != "" {
		m.Repository = &Repository{Type: "git", URL: cfg.RepositoryURL}
	}

	applyExtras(m, extras)

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling package.json: %w", err)
	}
	return append(data, '\n'), nil
}

// baseScripts returns the fixed script set for the configured build tool.
// Generator-declared scripts override these entries.
func baseScripts(cfg *model.Configuration) map[string]string {
	var build, dev string
	switch cfg.BuildTool {
	case model.BuildToolVite:
		build, dev = "vite build", "vite build --watch"
	case model.BuildToolRollup:
		build, dev = "rollup -c", "rollup -c -w"
	case model.BuildToolEsbuild:
		build, dev = "node esbuild.config.mjs", "node esbuild.config.mjs --watch"
	default:
		build, dev = "tsup", "tsup --watch"
	}
	return map[string]string{
		"build":          build,
		"dev":            dev,
		"test":           "vitest run",
		"typecheck":      "tsc --noEmit",
		"prepublishOnly": fmt.Sprintf("%s run build", cfg.PackageManager),
	}
}

// applyExtras merges generator-declared extras into the manifest. Known
// keys map onto their manifest fields; scripts merge entry-wise over the
// base scripts. Unknown keys are dropped with a debug note.
func applyExtras(m *Manifest, extras map[string]any) {
	for key, value := range extras {
		switch key {
		case "sideEffects":
			m.SideEffects = value
		case "files":
			if files, ok := toStringSlice(value); ok {
				m.Files = files
			}
		case "scripts":
			for name, cmd := range toStringMap(value) {
				m.Scripts[name] = cmd
			}
		case "bin":
			m.Bin = toStringMap(value)
		case "engines":
			m.Engines = toStringMap(value)
		case "peerDependenciesMeta":
			if meta, ok := value.(map[string]any); ok {
				m.PeerDependenciesMeta = meta
			}
		default:
			debug.Debug("[manifest] ignoring unrecognized extra field %q", key)
		}
	}
}

func toStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}

func toStringMap(v any) map[string]string {
	switch mm := v.(type) {
	case map[string]string:
		return mm
	case map[string]any:
		out := make(map[string]string, len(mm))
		for k, item := range mm {
			if str, ok := item.(string); ok {
				out[k] = str
			}
		}
		return out
	}
	return nil
}
