package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ValidatorNames enumerates the post-write validators in the fixed order
// they are dispatched and aggregated.
var ValidatorNames = []string{"syntax", "lint", "format", "ide"}

// GateConfig holds project-level configuration loaded from .nugate.yaml.
type GateConfig struct {
	Extensions     []string              `yaml:"extensions"      json:"extensions,omitempty"`
	MaxLineLength  int                   `yaml:"max_line_length" json:"max_line_length,omitempty"`
	DisabledRules  []string              `yaml:"disabled_rules"  json:"disabled_rules,omitempty"`
	SecretKeywords []string              `yaml:"secret_keywords" json:"secret_keywords,omitempty"`
	Tools          map[string]ToolConfig `yaml:"tools"           json:"tools,omitempty"`
}

// ToolConfig overrides how one external validator is invoked.
type ToolConfig struct {
	Bin            string   `yaml:"bin"             json:"bin,omitempty"`
	Args           []string `yaml:"args"            json:"args,omitempty"`
	TimeoutSeconds int      `yaml:"timeout_seconds" json:"timeout_seconds,omitempty"`
}

// DefaultConfig returns the built-in configuration used when no .nugate.yaml
// is present.
func DefaultConfig() GateConfig {
	return GateConfig{
		Extensions:    []string{".nu"},
		MaxLineLength: 120,
		Tools: map[string]ToolConfig{
			"syntax": {Bin: "nu-check", TimeoutSeconds: 30},
			"lint":   {Bin: "nu-lint", TimeoutSeconds: 30},
			"format": {Bin: "nufmt", Args: []string{"--check"}, TimeoutSeconds: 30},
			"ide":    {Bin: "nu", Args: []string{"--ide-check", "100"}, TimeoutSeconds: 30},
		},
	}
}

// Validate catches typos in user-supplied configuration before it is merged
// over the defaults.
func (c GateConfig) Validate() error {
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	if c.MaxLineLength < 0 {
		return fmt.Errorf("max_line_length must be non-negative, got %d", c.MaxLineLength)
	}
	for _, id := range c.DisabledRules {
		if _, ok := ruleTable[id]; !ok {
			return fmt.Errorf("disabled_rules: unknown rule %q", id)
		}
	}
	known := make(map[string]bool, len(ValidatorNames))
	for _, n := range ValidatorNames {
		known[n] = true
	}
	for name, tc := range c.Tools {
		if !known[name] {
			return fmt.Errorf("tools: unknown validator %q", name)
		}
		if tc.TimeoutSeconds < 0 {
			return fmt.Errorf("tools.%s: timeout_seconds must be non-negative", name)
		}
	}
	return nil
}

// Governs reports whether a file path falls under the gate's jurisdiction.
func (c GateConfig) Governs(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, governed := range c.Extensions {
		if ext == governed {
			return true
		}
	}
	return false
}

// RuleDisabled reports whether a rule has been switched off in config.
func (c GateConfig) RuleDisabled(id string) bool {
	for _, d := range c.DisabledRules {
		if d == id {
			return true
		}
	}
	return false
}

// Tool returns the effective invocation config for a validator, falling back
// to the built-in defaults for unset fields.
func (c GateConfig) Tool(name string) ToolConfig {
	def := DefaultConfig().Tools[name]
	tc, ok := c.Tools[name]
	if !ok {
		return def
	}
	if tc.Bin == "" {
		tc.Bin = def.Bin
	}
	if tc.Args == nil {
		tc.Args = def.Args
	}
	if tc.TimeoutSeconds == 0 {
		tc.TimeoutSeconds = def.TimeoutSeconds
	}
	return tc
}

// Timeout returns the effective timeout for a validator as a duration.
func (tc ToolConfig) Timeout() time.Duration {
	if tc.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(tc.TimeoutSeconds) * time.Second
}

// AllSecretKeywords merges the built-in keyword list with any extras from
// config.
func (c GateConfig) AllSecretKeywords() []string {
	return append(append([]string{}, SecretKeywords...), c.SecretKeywords...)
}
