// Package config loads table rules and simulation settings from HCL.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/followthequeen/internal/advice"
	"github.com/lox/followthequeen/internal/equity"
)

// DefaultPath is where the CLI looks for a config file.
const DefaultPath = "ftq.hcl"

// Config represents the complete engine configuration
type Config struct {
	LogLevel   string      `hcl:"log_level,optional"`
	Rules      *Rules      `hcl:"rules,block"`
	Simulation *Simulation `hcl:"simulation,block"`
}

// Rules are the house rules for a table. Optional booleans are pointers so
// an absent attribute can take its default.
type Rules struct {
	Players    int     `hcl:"players,optional"`
	HighLow    *bool   `hcl:"high_low,optional"`
	NaturalLow *bool   `hcl:"natural_low,optional"`
	Burn       bool    `hcl:"burn,optional"`
	Ante       float64 `hcl:"ante,optional"`
	MaxBet     float64 `hcl:"max_bet,optional"`
	MaxRaises  int     `hcl:"max_raises,optional"`
}

// Simulation tunes the equity simulator.
type Simulation struct {
	// Iterations of zero lets the simulator size each run.
	Iterations int    `hcl:"iterations,optional"`
	Workers    int    `hcl:"workers,optional"`
	MaxTime    string `hcl:"max_time,optional"`
	Seed       int64  `hcl:"seed,optional"`
}

const (
	defaultLogLevel = "info"
	defaultPlayers  = 4
	defaultAnte     = 0.05
	defaultMaxTime  = "8s"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for missing values.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if c.Rules == nil {
		c.Rules = &Rules{}
	}
	if c.Rules.Players == 0 {
		c.Rules.Players = defaultPlayers
	}
	if c.Rules.HighLow == nil {
		c.Rules.HighLow = boolPtr(true)
	}
	if c.Rules.NaturalLow == nil {
		c.Rules.NaturalLow = boolPtr(true)
	}
	if c.Rules.Ante == 0 {
		c.Rules.Ante = defaultAnte
	}
	if c.Rules.MaxBet == 0 {
		c.Rules.MaxBet = advice.DefaultMaxBet
	}
	if c.Rules.MaxRaises == 0 {
		c.Rules.MaxRaises = advice.DefaultMaxRaises
	}

	if c.Simulation == nil {
		c.Simulation = &Simulation{}
	}
	if c.Simulation.MaxTime == "" {
		c.Simulation.MaxTime = defaultMaxTime
	}
}

func boolPtr(b bool) *bool { return &b }

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	r := c.Rules
	if r.Players < equity.MinPlayers || r.Players > equity.MaxPlayers {
		return fmt.Errorf("rules: players must be between %d and %d", equity.MinPlayers, equity.MaxPlayers)
	}
	if r.Ante < 0 {
		return fmt.Errorf("rules: ante must not be negative")
	}
	if r.MaxBet < 0 {
		return fmt.Errorf("rules: max bet must be positive")
	}
	if r.MaxRaises < 0 {
		return fmt.Errorf("rules: max raises must not be negative")
	}

	s := c.Simulation
	if s.Iterations < 0 {
		return fmt.Errorf("simulation: iterations must not be negative")
	}
	if s.Workers < 0 {
		return fmt.Errorf("simulation: workers must not be negative")
	}
	if _, err := s.maxTime(); err != nil {
		return err
	}

	return nil
}

// HighLowEnabled reports whether the pot splits between high and low.
func (r *Rules) HighLowEnabled() bool {
	return r.HighLow == nil || *r.HighLow
}

// NaturalLowEnabled reports whether low hands ignore wild cards.
func (r *Rules) NaturalLowEnabled() bool {
	return r.NaturalLow == nil || *r.NaturalLow
}

// MaxTimeDuration returns the simulation time cap; zero means no cap.
func (s *Simulation) MaxTimeDuration() time.Duration {
	d, _ := s.maxTime()
	return d
}

func (s *Simulation) maxTime() (time.Duration, error) {
	if s.MaxTime == "" || s.MaxTime == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.MaxTime)
	if err != nil {
		return 0, fmt.Errorf("simulation: invalid max_time %q: %w", s.MaxTime, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("simulation: max_time must not be negative")
	}
	return d, nil
}
