package report

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/repohealth/pkg/errors"
)

// Config controls column order and header names. It is loaded once per
// run and treated as read-only afterwards.
type Config struct {
	CheckOrder []string          `toml:"check_order" yaml:"check_order"`
	KeyAliases map[string]string `toml:"key_aliases" yaml:"key_aliases"`
}

// Format identifies a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath returns the configuration format implied by path's extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// LoadConfig reads a configuration file. The format follows the extension
// (.toml, .yaml or .yml).
func LoadConfig(path string) (*Config, error) {
	format, ok := FormatFromPath(path)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config extension: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, err
	}
	cfg, err := ParseConfig(data, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes and validates configuration data.
func ParseConfig(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects empty or repeated check_order entries.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.CheckOrder))
	for _, k := range c.CheckOrder {
		if k == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "check_order contains an empty key")
		}
		if seen[k] {
			return errors.New(errors.ErrCodeInvalidConfig, "check_order lists %q twice", k)
		}
		seen[k] = true
	}
	return nil
}

// Alias returns the display name for key.
func (c *Config) Alias(key string) string {
	if c != nil {
		if a, ok := c.KeyAliases[key]; ok {
			return a
		}
	}
	return key
}
