// Package config loads the run settings of the gridpatrol command from YAML:
// the patrol move cap, the cycle rule, and the obstruction worker count.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpatrol/obstruction"
	"github.com/katalvlaran/gridpatrol/patrol"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config is the YAML document accepted by Load.
//
//	move_cap: 0        # 0 derives 4×width×height
//	cycle_rule: exact  # exact | lookahead
//	workers: 1         # >1 runs obstruction trials concurrently
type Config struct {
	MoveCap   int    `yaml:"move_cap"`
	CycleRule string `yaml:"cycle_rule"`
	Workers   int    `yaml:"workers"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		MoveCap:   0,
		CycleRule: patrol.CycleExact.String(),
		Workers:   1,
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return Parse(raw)
}

// Parse decodes a YAML document on top of Default and validates it.
// Unknown keys are rejected.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config.yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config.yaml: %w", err)
	}
	return cfg, nil
}

// Normalize lower-cases the cycle rule and clamps workers to at least one.
func (c *Config) Normalize() {
	c.CycleRule = strings.ToLower(strings.TrimSpace(c.CycleRule))
	if c.CycleRule == "" {
		c.CycleRule = patrol.CycleExact.String()
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.MoveCap < 0 {
		return fmt.Errorf("move_cap %d must be >= 0: %w", c.MoveCap, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d must be >= 1: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := patrol.ParseCycleRule(c.CycleRule); err != nil {
		return fmt.Errorf("cycle_rule: %w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// PatrolOptions translates the settings into patrol.Run options.
func (c Config) PatrolOptions() []patrol.Option {
	rule, err := patrol.ParseCycleRule(c.CycleRule)
	if err != nil {
		rule = patrol.CycleExact
	}
	return []patrol.Option{
		patrol.WithMoveCap(c.MoveCap),
		patrol.WithCycleRule(rule),
	}
}

// SearchOptions translates the settings into obstruction.Search options.
func (c Config) SearchOptions() []obstruction.Option {
	return []obstruction.Option{
		obstruction.WithWorkers(c.Workers),
		obstruction.WithPatrolOptions(c.PatrolOptions()...),
	}
}
