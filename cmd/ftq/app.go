package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/followthequeen/internal/config"
	"github.com/lox/followthequeen/internal/equity"
	"github.com/lox/followthequeen/internal/evaluator"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"ftq.hcl" help:"Path to HCL config file" type:"path"`
	LogLevel string `help:"Override the configured log level (debug, info, warn, error)"`
	NoColor  bool   `help:"Disable colored output"`

	// Set by tests.
	out   io.Writer    `kong:"-"`
	clock quartz.Clock `kong:"-"`
}

// app is the resolved runtime for one command.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
	clock  quartz.Clock
}

func (g *Globals) setup() (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	out := g.out
	if out == nil {
		out = os.Stdout
	}
	if g.NoColor || g.out != nil {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	clock := g.clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	logger.Debug("Loaded config",
		"path", g.Config,
		"players", cfg.Rules.Players,
		"high_low", cfg.Rules.HighLowEnabled(),
		"natural_low", cfg.Rules.NaturalLowEnabled(),
		"burn", cfg.Rules.Burn)

	return &app{cfg: cfg, logger: logger, out: out, clock: clock}, nil
}

func (a *app) simulator() *equity.Simulator {
	return equity.New(equity.Config{
		Workers: a.cfg.Simulation.Workers,
		MaxTime: a.cfg.Simulation.MaxTimeDuration(),
		Clock:   a.clock,
		Logger:  a.logger,
	})
}

func (a *app) evalOptions() evaluator.Options {
	return evaluator.Options{WildLow: !a.cfg.Rules.NaturalLowEnabled()}
}

// antePot is the pot before any betting: one ante per player.
func (a *app) antePot(players int) float64 {
	return float64(players) * a.cfg.Rules.Ante
}
