// Package suite bundles metrics declared in a YAML file and updates every
// metric that accepts a given kind of batch together.
package suite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/datar-psa/gometrics/api"
)

// Config is the YAML document describing a suite.
type Config struct {
	Metrics []MetricConfig `yaml:"metrics" json:"metrics"`
}

// MetricConfig declares one metric. Only the fields relevant to Kind are read;
// zero values select each metric's defaults.
type MetricConfig struct {
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind" json:"kind"`

	// binary classification and AUROC
	Threshold *float64 `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	BinCount  int      `yaml:"bin_count,omitempty" json:"bin_count,omitempty"`
	Min       *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Squared   bool     `yaml:"squared,omitempty" json:"squared,omitempty"`

	// multiclass classification
	NumClasses int    `yaml:"num_classes,omitempty" json:"num_classes,omitempty"`
	Average    string `yaml:"average,omitempty" json:"average,omitempty"`

	// regression
	Normalization string `yaml:"normalization,omitempty" json:"normalization,omitempty"`

	// text
	MaxN            int     `yaml:"max_n,omitempty" json:"max_n,omitempty"`
	Smoothing       string  `yaml:"smoothing,omitempty" json:"smoothing,omitempty"`
	Epsilon         float64 `yaml:"epsilon,omitempty" json:"epsilon,omitempty"`
	Overlap         string  `yaml:"overlap,omitempty" json:"overlap,omitempty"`
	N               int     `yaml:"n,omitempty" json:"n,omitempty"`
	Reduction       string  `yaml:"reduction,omitempty" json:"reduction,omitempty"`
	Level           string  `yaml:"level,omitempty" json:"level,omitempty"`
	CaseInsensitive bool    `yaml:"case_insensitive,omitempty" json:"case_insensitive,omitempty"`
	TrimWhitespace  bool    `yaml:"trim_whitespace,omitempty" json:"trim_whitespace,omitempty"`
}

// Load parses a suite configuration. Unknown fields are rejected.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty suite configuration", api.ErrInvalidConfiguration)
		}
		return nil, fmt.Errorf("%w: parsing suite configuration: %v", api.ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses the suite configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading suite configuration: %w", err)
	}
	cfg, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration names at least one metric and that
// names are present and unique. Kind-specific settings are checked by Build.
func (c *Config) Validate() error {
	if len(c.Metrics) == 0 {
		return fmt.Errorf("%w: suite declares no metrics", api.ErrInvalidConfiguration)
	}
	seen := make(map[string]bool, len(c.Metrics))
	for i, m := range c.Metrics {
		if m.Name == "" {
			return fmt.Errorf("%w: metric %d has no name", api.ErrInvalidConfiguration, i)
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: duplicate metric name %q", api.ErrInvalidConfiguration, m.Name)
		}
		seen[m.Name] = true
	}
	return nil
}
