// Package config loads the optional .xmlvet.yaml tool configuration with
// strict YAML parsing and schema validation. CLI flags always take
// precedence over config values; a missing config file is not an error.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ormasoftchile/xmlvet/pkg/report"
)

// DefaultPath is looked up in the working directory when no --config
// flag is given.
const DefaultPath = ".xmlvet.yaml"

// Config holds tool-wide settings.
type Config struct {
	// FetchTimeout bounds remote schema downloads (e.g. "10s").
	FetchTimeout string `yaml:"fetch_timeout,omitempty" json:"fetch_timeout,omitempty" jsonschema:"pattern=^[0-9]+(ms|s|m)$"`
	// Color selects the output mode.
	Color string `yaml:"color,omitempty" json:"color,omitempty" jsonschema:"enum=auto,enum=always,enum=never"`
	// XSD is a default local schema override, same as the --xsd flag.
	XSD string `yaml:"xsd,omitempty" json:"xsd,omitempty"`
	// Strict makes the process exit non-zero when any file fails or
	// is skipped.
	Strict bool `yaml:"strict,omitempty" json:"strict,omitempty"`
}

// Load reads the config at path, or DefaultPath when path is empty.
// Only an explicitly requested file is required to exist.
func Load(path string) (*Config, error) {
	required := path != ""
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("config %s: %w", path, errs[0])
	}
	return cfg, nil
}

// Parse decodes a config from r with strict unknown-field rejection.
func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil // empty file
		}
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Timeout returns the configured fetch timeout, defaulting to 10s.
func (c *Config) Timeout() (time.Duration, error) {
	if c.FetchTimeout == "" {
		return 10 * time.Second, nil
	}
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid fetch_timeout: %w", err)
	}
	return d, nil
}

// ColorMode maps the color setting onto a report.Mode.
func (c *Config) ColorMode() report.Mode {
	switch c.Color {
	case "always":
		return report.ModeAlways
	case "never":
		return report.ModeNever
	}
	return report.ModeAuto
}
