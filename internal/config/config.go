// Package config loads the HCL configuration for the dealing driver.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerrank/internal/evaluator"
)

// Dealing modes
const (
	ModePairs = "pairs"
	ModeHigh  = "high"
)

// defaultProgressEvery is the number of rounds between progress logs when unset
const defaultProgressEvery = 100000

// Config represents the complete configuration file
type Config struct {
	Showdown *ShowdownSettings `hcl:"showdown,block"`
	Output   *OutputSettings   `hcl:"output,block"`
}

// ShowdownSettings controls the dealing loop. Mode is chosen by the command
// being run and is not read from the file.
type ShowdownSettings struct {
	Mode          string
	Threshold     string `hcl:"threshold,optional"`
	Seed          int64  `hcl:"seed,optional"`
	Limit         int    `hcl:"limit,optional"`
	ProgressEvery *int   `hcl:"progress_every,optional"` // 0 disables progress logs
}

// OutputSettings controls logging and rendering
type OutputSettings struct {
	Color       *bool  `hcl:"color,optional"`
	SummaryFile string `hcl:"summary_file,optional"`
	LogLevel    string `hcl:"log_level,optional"`
	LogFormat   string `hcl:"log_format,optional"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads an HCL configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
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
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Showdown == nil {
		c.Showdown = &ShowdownSettings{}
	}
	if c.Output == nil {
		c.Output = &OutputSettings{}
	}

	if c.Showdown.Mode == "" {
		c.Showdown.Mode = ModePairs
	}
	if c.Showdown.ProgressEvery == nil {
		every := defaultProgressEvery
		c.Showdown.ProgressEvery = &every
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
	if c.Output.LogLevel == "" {
		c.Output.LogLevel = "info"
	}
	if c.Output.LogFormat == "" {
		c.Output.LogFormat = "text"
	}
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Showdown.Mode {
	case ModePairs, ModeHigh:
	default:
		return fmt.Errorf("invalid mode %q (expected %q or %q)", c.Showdown.Mode, ModePairs, ModeHigh)
	}
	if _, err := c.Showdown.ThresholdCategory(); err != nil {
		return err
	}
	if c.Showdown.Limit < 0 {
		return fmt.Errorf("limit must not be negative: %d", c.Showdown.Limit)
	}
	if c.Showdown.Progress() < 0 {
		return fmt.Errorf("progress_every must not be negative: %d", c.Showdown.Progress())
	}

	switch c.Output.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.Output.LogLevel)
	}
	switch c.Output.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q", c.Output.LogFormat)
	}
	return nil
}

// ThresholdCategory returns the category a hand must beat to be reported.
// Without an explicit threshold, pairs mode uses Three of a kind and high
// mode uses Full house.
func (s *ShowdownSettings) ThresholdCategory() (evaluator.Category, error) {
	if s.Threshold == "" {
		if s.Mode == ModeHigh {
			return evaluator.FullHouse, nil
		}
		return evaluator.ThreeOfAKind, nil
	}
	c, err := evaluator.ParseCategory(s.Threshold)
	if err != nil {
		return 0, fmt.Errorf("invalid threshold: %w", err)
	}
	return c, nil
}

// Progress returns the number of rounds between progress logs, 0 when disabled
func (s *ShowdownSettings) Progress() int {
	if s.ProgressEvery == nil {
		return defaultProgressEvery
	}
	return *s.ProgressEvery
}

// ColorEnabled reports whether styled output is enabled
func (o *OutputSettings) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}
