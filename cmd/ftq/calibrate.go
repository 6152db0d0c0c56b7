package main

import (
	"context"
	"time"

	"github.com/lox/followthequeen/internal/calibrate"
	"github.com/lox/followthequeen/internal/randutil"
)

// CalibrateCmd measures the advice against real showdowns.
type CalibrateCmd struct {
	Deals      int           `default:"200" help:"Number of deals to play"`
	Players    int           `short:"n" help:"Players at the table (default from config)"`
	Reveal     int           `default:"5" help:"Pairs face up when advice is taken"`
	Call       *float64      `help:"Cost to call (default is the max bet)"`
	Iterations int           `short:"i" help:"Monte Carlo iterations per deal (default sized by the board)"`
	Seed       int64         `help:"Base seed; deal i uses seed+i (0 for random)"`
	Timeout    time.Duration `default:"30s" help:"Timeout per deal"`
}

func (c *CalibrateCmd) Run(g *Globals, ctx context.Context) error {
	a, err := g.setup()
	if err != nil {
		return err
	}

	rules := a.cfg.Rules
	players := c.Players
	if players == 0 {
		players = rules.Players
	}
	call := rules.MaxBet
	if c.Call != nil {
		call = *c.Call
	}
	iterations := c.Iterations
	if iterations == 0 {
		iterations = a.cfg.Simulation.Iterations
	}
	seed := c.Seed
	if seed == 0 {
		seed = a.cfg.Simulation.Seed
	}
	if seed == 0 {
		seed = randutil.Seed()
	}

	a.logger.Info("Calibrating", "deals", c.Deals, "players", players, "reveal", c.Reveal, "seed", seed)
	start := a.clock.Now()

	runner := calibrate.New(calibrate.Config{
		Deals:         c.Deals,
		Players:       players,
		Seed:          seed,
		RevealedPairs: c.Reveal,
		Iterations:    iterations,
		Pot:           a.antePot(players),
		Call:          call,
		Burn:          rules.Burn,
		HighOnly:      !rules.HighLowEnabled(),
		WildLow:       !rules.NaturalLowEnabled(),
		MaxBet:        rules.MaxBet,
		MaxRaises:     rules.MaxRaises,
		Timeout:       c.Timeout,
		Logger:        a.logger,
		Simulator:     a.simulator(),
	})
	stats, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	calibrate.PrintSummary(a.out, stats)
	a.logger.Info("Calibration complete", "deals", stats.Deals, "elapsed", a.clock.Since(start).Truncate(time.Millisecond))
	return nil
}
