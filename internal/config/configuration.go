package config

import (
	"encoding/json"
	"os"

	"github.com/quillforge/quill/internal/scaffold/model"
)

// ConfigurationFile is the on-disk shape accepted by `quill new --config`
// and `quill check`: a framework tag plus the generation configuration,
// flattened into one JSON object.
type ConfigurationFile struct {
	// Framework is the framework tag selecting the generator.
	Framework string `json:"framework"`
	model.Configuration
}

// LoadConfigurationFile reads and decodes a saved configuration file.
func LoadConfigurationFile(path string) (*ConfigurationFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var file ConfigurationFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
	}
	if file.Framework == "" {
		return nil, NewConfigErrorWithField(ConfigValidationFailed, path, "framework", "framework is required")
	}
	return &file, nil
}
