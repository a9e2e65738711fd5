// Package config loads the HCL configuration file used by the fivecard CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete CLI configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	HandSize int             `hcl:"hand_size,optional"`
	Seed     int64           `hcl:"seed,optional"`
	Simulate *SimulateConfig `hcl:"simulate,block"`
	Output   *OutputConfig   `hcl:"output,block"`
}

// SimulateConfig holds defaults for the simulate command
type SimulateConfig struct {
	Showdowns int `hcl:"showdowns,optional"`
	Workers   int `hcl:"workers,optional"`
}

// OutputConfig controls presentation and recording
type OutputConfig struct {
	Color     *bool  `hcl:"color,optional"`
	RecordDir string `hcl:"record_dir,optional"`
}

const (
	defaultLogLevel  = "info"
	defaultHandSize  = 5
	defaultShowdowns = 10000
	defaultRecordDir = "records"
)

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.HandSize == 0 {
		c.HandSize = defaultHandSize
	}
	if c.Simulate == nil {
		c.Simulate = &SimulateConfig{}
	}
	if c.Simulate.Showdowns == 0 {
		c.Simulate.Showdowns = defaultShowdowns
	}
	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
	if c.Output.RecordDir == "" {
		c.Output.RecordDir = defaultRecordDir
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	// Two players are dealt from one 52-card deck.
	if c.HandSize < 1 || c.HandSize > 26 {
		return fmt.Errorf("invalid hand_size: %d", c.HandSize)
	}
	if c.Simulate.Showdowns < 0 {
		return fmt.Errorf("invalid simulate.showdowns: %d", c.Simulate.Showdowns)
	}
	if c.Simulate.Workers < 0 {
		return fmt.Errorf("invalid simulate.workers: %d", c.Simulate.Workers)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Color reports whether styled output is enabled.
func (c *Config) Color() bool {
	return c.Output == nil || c.Output.Color == nil || *c.Output.Color
}
