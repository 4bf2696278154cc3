// Package config holds the folio tool configuration (.folio.yml) and the
// bundled site-content configuration with its layered value resolution.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config is the top-level folio tool configuration, corresponding to .folio.yml.
type Config struct {
	Namespace string   `yaml:"namespace" koanf:"namespace"`
	SiteTitle string   `yaml:"site_title" koanf:"site_title"`
	DataDir   string   `yaml:"data_dir" koanf:"data_dir"`
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir string   `yaml:"assets_dir" koanf:"assets_dir"`
	Exclude   []string `yaml:"exclude" koanf:"exclude"`
	Port      int      `yaml:"port" koanf:"port"`
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: FOLIO_NAMESPACE -> namespace, etc.
	if err := k.Load(env.Provider("FOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
// The namespace becomes a storage key prefix with "_" as the separator,
// so it must not itself contain underscores.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if strings.ContainsAny(c.Namespace, "_ \t") {
		return fmt.Errorf("invalid namespace %q: must not contain underscores or whitespace", c.Namespace)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}
