package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/govalues/numeral"
)

// ConfigEnv names the environment variable with the default config file path.
const ConfigEnv = "NUMERAL_CONFIG"

var errInvalidConfig = errors.New("invalid config")

// Config holds defaults for all commands. Command-line flags override it.
type Config struct {
	Precision int    `yaml:"precision"`
	Style     string `yaml:"style"`
	Script    string `yaml:"script"`
	JSON      bool   `yaml:"json"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Precision: numeral.DefaultPrec,
		Style:     numeral.International.String(),
		Script:    numeral.Latin.String(),
	}
}

// fileConfig is the on-disk form of [Config].
// A nil field means the key is absent from the file.
type fileConfig struct {
	Precision *int    `yaml:"precision"`
	Style     *string `yaml:"style"`
	Script    *string `yaml:"script"`
	JSON      *bool   `yaml:"json"`
}

// overlay copies the keys present in f over cfg.
func (f fileConfig) overlay(cfg Config) Config {
	if f.Precision != nil {
		cfg.Precision = *f.Precision
	}
	if f.Style != nil {
		cfg.Style = *f.Style
	}
	if f.Script != nil {
		cfg.Script = *f.Script
	}
	if f.JSON != nil {
		cfg.JSON = *f.JSON
	}
	return cfg
}

// LoadConfig reads a YAML config file on top of [DefaultConfig].
// Keys missing from the file keep their default values, so an empty file
// or one holding only comments yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.UnmarshalWithOptions(data, &fc, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	cfg := fc.overlay(DefaultConfig())
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Precision < 0 || numeral.MaxPrec < c.Precision {
		return fmt.Errorf("precision %v: %w", c.Precision, errInvalidConfig)
	}
	if _, err := numeral.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if _, err := parseScript(c.Script); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func parseScript(s string) (numeral.Script, error) {
	switch strings.ToLower(s) {
	case "", "latin":
		return numeral.Latin, nil
	case "devanagari":
		return numeral.Devanagari, nil
	default:
		return numeral.Latin, fmt.Errorf("unknown script %q: %w", s, errInvalidConfig)
	}
}
