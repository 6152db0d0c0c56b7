package main

import (
	"context"
	"fmt"

	"github.com/lox/followthequeen/internal/advice"
	"github.com/lox/followthequeen/internal/dealer"
	"github.com/lox/followthequeen/internal/dealid"
	"github.com/lox/followthequeen/internal/equity"
	"github.com/lox/followthequeen/internal/randutil"
	"github.com/lox/followthequeen/internal/wild"
)

// DealCmd deals a random hand and reports the chosen seat's odds as each
// community pair is turned up, finishing with a showdown.
type DealCmd struct {
	Players    int     `short:"n" help:"Players at the table (default from config)"`
	Seat       int     `default:"0" help:"Seat to advise"`
	Reveal     int     `default:"5" help:"Stop after this many pairs are revealed"`
	Call       float64 `help:"Cost to call each round"`
	Iterations int     `short:"i" help:"Monte Carlo iterations per round (default sized by the board)"`
	Seed       int64   `help:"Random seed for the deal (0 for random)"`
}

func (c *DealCmd) Run(g *Globals, ctx context.Context) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	if c.Reveal < 0 || c.Reveal > wild.NumPairs {
		return fmt.Errorf("reveal must be between 0 and %d", wild.NumPairs)
	}

	rules := a.cfg.Rules
	players := c.Players
	if players == 0 {
		players = rules.Players
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

	rng := randutil.New(seed)
	id, err := dealid.NewFromReader(randutil.Reader{R: rng})
	if err != nil {
		return err
	}
	ds, err := dealer.New(rng, players, id)
	if err != nil {
		return err
	}
	hand, err := ds.Hand(c.Seat)
	if err != nil {
		return err
	}

	logger := a.logger.With("deal", id)
	logger.Info("Dealt", "players", players, "seat", c.Seat, "seed", seed)

	fmt.Fprintf(a.out, "%s %s (seed %d)\n", headerStyle.Render("deal"), id, seed)
	fmt.Fprintf(a.out, "%s %s\n\n", headerStyle.Render(fmt.Sprintf("seat %d", c.Seat)), renderCards(hand))

	runner := equity.NewLatest(a.simulator())
	pot := a.antePot(players)
	opts := a.evalOptions()

	for {
		renderBoard(a.out, ds.Board, ds.Revealed)

		req, err := ds.SimulationRequest(c.Seat, iterations)
		if err != nil {
			return err
		}
		req.Seed = rng.Int64()
		req.HighOnly = !rules.HighLowEnabled()
		req.WildLow = opts.WildLow

		res, err := runner.Run(ctx, req)
		if err != nil {
			return err
		}
		rec := advice.Recommend(advice.Input{
			HighRate:    res.HighRate,
			LowRate:     res.LowRate,
			AnyRate:     res.AnyRate,
			Pot:         pot,
			CallCost:    c.Call,
			BurnEnabled: rules.Burn,
			FinalRound:  ds.FinalRound(),
			MaxBet:      rules.MaxBet,
			MaxRaises:   rules.MaxRaises,
			HighOnly:    req.HighOnly,
			Sim: &advice.SimulationNote{
				IterationsRun: res.IterationsRun,
				Elapsed:       res.Elapsed,
				TimeCapped:    res.TimeCapped,
			},
		})
		renderResult(a.out, res, req.HighOnly)
		renderRecommendation(a.out, rec)
		logger.Debug("Round", "revealed", ds.Revealed, "wilds", ds.WildRanks().String(), "decision", rec.Decision)

		if ds.Revealed >= c.Reveal {
			break
		}
		pair, err := ds.RevealNext()
		if err != nil {
			return err
		}
		logger.Debug("Revealed pair", "pair", ds.Revealed, "cards", pair[0].String()+" "+pair[1].String())
		fmt.Fprintln(a.out)
	}

	if !ds.FinalRound() {
		return nil
	}
	out, err := ds.Showdown(opts)
	if err != nil {
		return err
	}
	renderShowdown(a.out, ds.Hands, out, !rules.HighLowEnabled())
	logger.Info("Showdown", "high", out.HighWinners, "low", out.LowWinners)
	return nil
}
