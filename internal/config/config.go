// Package config loads the optional tool configuration file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where LoadOrDefault looks when no path is given.
const DefaultPath = ".rawenum.yml"

// Config is the tool-wide configuration. Every field has a working default;
// the file only overrides.
type Config struct {
	Version string `yaml:"version"`
	// DefaultName names the catch-all variant that the missing-default fix
	// appends. A directive's default= argument overrides it per enum.
	DefaultName string `yaml:"default_name"`
	// Suffix is the generated file suffix, appended to the lowercased enum
	// name. Must end in .go.
	Suffix string `yaml:"suffix"`
	// Header is an extra comment line for generated files.
	Header string `yaml:"header"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Suffix:  "_rawenum.go",
	}
}

// Parse parses configuration from YAML bytes and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault loads the given path, or DefaultPath when path is empty. A
// missing default file is not an error; explicit paths must exist.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(DefaultPath)
}

func (c *Config) validate() error {
	if c.Suffix != "" && !strings.HasSuffix(c.Suffix, ".go") {
		return fmt.Errorf("suffix %q must end in .go", c.Suffix)
	}
	if c.Suffix == "" {
		c.Suffix = Default().Suffix
	}
	return nil
}
