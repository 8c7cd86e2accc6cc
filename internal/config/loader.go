package config

import (
	"encoding/json"
	"os"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if the file
	// doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration
// loading.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
	}

	mergeConfig(&cfg, DefaultConfig())

	if err := l.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if the file
// doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	return validateConfig(config)
}

// mergeConfig fills empty fields of cfg from the default configuration.
func mergeConfig(cfg, defaults *Config) {
	if cfg.Defaults.License == "" {
		cfg.Defaults.License = defaults.Defaults.License
	}
	if cfg.Defaults.PackageManager == "" {
		cfg.Defaults.PackageManager = defaults.Defaults.PackageManager
	}
	if cfg.Defaults.BuildTool == "" {
		cfg.Defaults.BuildTool = defaults.Defaults.BuildTool
	}
	if cfg.Defaults.ModuleFormat == "" {
		cfg.Defaults.ModuleFormat = defaults.Defaults.ModuleFormat
	}
	if cfg.Defaults.OutputDir == "" {
		cfg.Defaults.OutputDir = defaults.Defaults.OutputDir
	}
}
