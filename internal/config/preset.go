package config

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/quillforge/quill/internal/scaffold/model"
)

//go:embed schema/preset.schema.json
var presetSchemaBytes []byte

//go:embed presets/*.yaml
var builtinPresets embed.FS

var (
	presetSchema     *jsonschema.Schema
	presetSchemaOnce sync.Once
	presetSchemaErr  error
	printer          = message.NewPrinter(language.English)
)

// Preset bundles configuration defaults with extension flags. Presets are
// YAML documents validated against an embedded JSON schema before use.
type Preset struct {
	// Name identifies the preset.
	Name string `yaml:"name"`
	// Description is shown when listing presets.
	Description string `yaml:"description,omitempty"`
	// Defaults are applied to configuration fields left empty.
	Defaults PresetDefaults `yaml:"defaults,omitempty"`
	// Extensions are merged into the configuration's extension flags.
	Extensions map[string]string `yaml:"extensions,omitempty"`
}

// PresetDefaults holds configuration defaults a preset may set.
type PresetDefaults struct {
	License        string `yaml:"license,omitempty"`
	PackageManager string `yaml:"packageManager,omitempty"`
	BuildTool      string `yaml:"buildTool,omitempty"`
	ModuleFormat   string `yaml:"moduleFormat,omitempty"`
	IncludeExample bool   `yaml:"includeExample,omitempty"`
}

// getPresetSchema compiles the embedded schema once.
func getPresetSchema() (*jsonschema.Schema, error) {
	presetSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(presetSchemaBytes))
		if err != nil {
			presetSchemaErr = fmt.Errorf("unmarshaling preset schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("preset.schema.json", doc); err != nil {
			presetSchemaErr = fmt.Errorf("adding preset schema resource: %w", err)
			return
		}
		presetSchema, presetSchemaErr = c.Compile("preset.schema.json")
	})
	return presetSchema, presetSchemaErr
}

// LoadPreset resolves ref as a file path first, then as the name of a
// built-in preset. The document is schema-validated before decoding.
func LoadPreset(ref string) (*Preset, error) {
	var data []byte
	var err error
	var source string

	if _, statErr := os.Stat(ref); statErr == nil {
		source = ref
		data, err = os.ReadFile(ref)
	} else {
		source = "preset:" + ref
		data, err = builtinPresets.ReadFile("presets/" + ref + ".yaml")
		if err != nil {
			return nil, NewConfigError(ConfigNotFound, source,
				fmt.Sprintf("unknown preset %q (built-ins: %s)", ref, strings.Join(BuiltinPresetNames(), ", ")))
		}
	}
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, source, "failed to read preset", err)
	}

	if err := validatePresetDocument(source, data); err != nil {
		return nil, err
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, source, "invalid YAML syntax", err)
	}
	return &preset, nil
}

// BuiltinPresetNames returns the names of the embedded presets.
func BuiltinPresetNames() []string {
	entries, err := builtinPresets.ReadDir("presets")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	return names
}

// validatePresetDocument checks raw YAML against the preset schema.
// YAML-decoded values are normalized to JSON-compatible types first.
func validatePresetDocument(source string, data []byte) error {
	schema, err := getPresetSchema()
	if err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, source, "loading preset schema", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, source, "invalid YAML syntax", err)
	}
	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, source, "converting preset to JSON", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, source, "preparing preset for validation", err)
	}

	if err := schema.Validate(inst); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return NewConfigError(ConfigValidationFailed, source, firstLeafMessage(ve))
		}
		return NewConfigErrorWithCause(ConfigValidationFailed, source, "preset failed schema validation", err)
	}
	return nil
}

// firstLeafMessage walks the validation error tree and returns the first
// leaf-level message with its instance location.
func firstLeafMessage(ve *jsonschema.ValidationError) string {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		return fmt.Sprintf("%s: %s", loc, msg)
	}
	return firstLeafMessage(ve.Causes[0])
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[k] = normalizeYAML(item)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[fmt.Sprintf("%v", k)] = normalizeYAML(item)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(val))
		for i, item := range val {
			s[i] = normalizeYAML(item)
		}
		return s
	default:
		return v
	}
}

// Apply fills empty configuration fields from the preset and merges its
// extension flags. Values the caller set explicitly are never overwritten.
func (p *Preset) Apply(cfg *model.Configuration) {
	if cfg.License == "" && p.Defaults.License != "" {
		cfg.License = p.Defaults.License
	}
	if cfg.PackageManager == "" && p.Defaults.PackageManager != "" {
		cfg.PackageManager = model.PackageManager(p.Defaults.PackageManager)
	}
	if cfg.BuildTool == "" && p.Defaults.BuildTool != "" {
		cfg.BuildTool = model.BuildTool(p.Defaults.BuildTool)
	}
	if cfg.ModuleFormat == "" && p.Defaults.ModuleFormat != "" {
		cfg.ModuleFormat = model.ModuleFormat(p.Defaults.ModuleFormat)
	}
	if p.Defaults.IncludeExample {
		cfg.IncludeExample = true
	}
	if len(p.Extensions) > 0 {
		if cfg.Extensions == nil {
			cfg.Extensions = make(map[string]string, len(p.Extensions))
		}
		for key, value := range p.Extensions {
			if _, exists := cfg.Extensions[key]; !exists {
				cfg.Extensions[key] = value
			}
		}
	}
}
