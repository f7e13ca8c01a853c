// Package config provides the configuration loader for lily.
package config

import (
	"os"

	"go.trai.ch/lily/internal/core/domain"
	"go.trai.ch/lily/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no --config flag
// is given.
const DefaultFilename = "lily.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Lilyfile represents the structure of the lily.yaml configuration file.
// Unrecognized keys are ignored by the YAML decoder.
type Lilyfile struct {
	Input     string   `yaml:"input"`
	Output    string   `yaml:"output"`
	AutoClean *bool    `yaml:"autoClean"`
	Ignores   []string `yaml:"ignores"`
	Patches   []string `yaml:"patches"`
}

// Load reads the configuration file at path. A missing file yields the
// default configuration.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("config file not found, using defaults: " + path)
			return cfg, nil
		}
		return cfg, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Lilyfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.Input != "" {
		cfg.InputDir = file.Input
	}
	if file.Output != "" {
		cfg.OutputDir = file.Output
	}
	if file.AutoClean != nil {
		cfg.AutoClean = *file.AutoClean
	}
	cfg.Ignores = file.Ignores
	cfg.Patches = file.Patches

	return cfg, nil
}
