// Package config holds the tunable parameters of a render session.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// PathMode selects how drawing actions become path tokens.
type PathMode string

const (
	// PathAbsolute places every token at its transformed endpoint.
	PathAbsolute PathMode = "absolute"
	// PathLegacy repeats the pre-scale reference origin on every token,
	// matching the output of the earlier renderer.
	PathLegacy PathMode = "legacy"
)

// Config is built once per render and passed to every component that
// needs it. Sizes are in inches.
type Config struct {
	LineWidth  float64  `mapstructure:"linewidth" yaml:"linewidth"`
	PageWidth  float64  `mapstructure:"pagewidth" yaml:"pagewidth"`
	PageHeight float64  `mapstructure:"pageheight" yaml:"pageheight"`
	PathMode   PathMode `mapstructure:"pathmode" yaml:"pathmode"`
}

func Default() *Config {
	return &Config{
		LineWidth:  0.02,
		PageWidth:  8.5,
		PageHeight: 11.0,
		PathMode:   PathAbsolute,
	}
}

// Load reads a YAML file of named parameters. Keys missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return Decode(raw)
}

// Decode applies raw named parameters on top of the defaults.
func Decode(raw map[string]any) (*Config, error) {
	cfg := Default()
	if raw == nil {
		raw = map[string]any{}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.LineWidth <= 0 {
		return fmt.Errorf("linewidth must be positive, got %v", c.LineWidth)
	}
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		return fmt.Errorf("page size must be positive, got %vx%v", c.PageWidth, c.PageHeight)
	}
	switch c.PathMode {
	case PathAbsolute, PathLegacy:
	default:
		return fmt.Errorf("unknown path mode %q", c.PathMode)
	}
	return nil
}
