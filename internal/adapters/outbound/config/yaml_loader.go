package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nugate/nugate/internal/domain"
)

const fileName = ".nugate.yaml"

// YAMLLoader reads gate configuration from .nugate.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .nugate.yaml from projectPath. Returns the built-in defaults if
// the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.GateConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.GateConfig{}, err
	}

	var cfg domain.GateConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.GateConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before merging, so typos in the user's raw input are caught.
	if err := cfg.Validate(); err != nil {
		return domain.GateConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit user values on top of the defaults. Explicit
// (non-zero) values always win.
func mergeConfig(base, override domain.GateConfig) domain.GateConfig {
	result := base

	if len(override.Extensions) > 0 {
		result.Extensions = override.Extensions
	}
	if override.MaxLineLength > 0 {
		result.MaxLineLength = override.MaxLineLength
	}
	if len(override.DisabledRules) > 0 {
		result.DisabledRules = override.DisabledRules
	}
	if len(override.SecretKeywords) > 0 {
		result.SecretKeywords = override.SecretKeywords
	}
	for name, tc := range override.Tools {
		result.Tools[name] = tc
	}

	return result
}
