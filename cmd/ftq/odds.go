package main

import (
	"context"
	"fmt"

	"github.com/lox/followthequeen/internal/advice"
	"github.com/lox/followthequeen/internal/dealid"
	"github.com/lox/followthequeen/internal/deck"
	"github.com/lox/followthequeen/internal/equity"
	"github.com/lox/followthequeen/internal/fileutil"
	"github.com/lox/followthequeen/internal/wild"
)

// OddsCmd estimates the hero's chances from a known hand and board.
type OddsCmd struct {
	Hand       string   `arg:"" help:"Your five private cards (e.g. 'As 2d 3c Kh Kd')"`
	Board      string   `short:"b" help:"Face-up community cards in reveal order, two per pair"`
	Players    int      `short:"n" help:"Players at the table (default from config)"`
	Pot        *float64 `help:"Current pot (default is one ante per player)"`
	Call       float64  `help:"Cost to call"`
	Iterations int      `short:"i" help:"Monte Carlo iterations (default sized by the board)"`
	Seed       int64    `help:"Random seed for reproducible results (0 for random)"`
	Report     string   `help:"Write the result as JSON to this file" type:"path"`
}

// oddsReport is the JSON written by --report.
type oddsReport struct {
	DealID         string                `json:"deal_id"`
	Hand           string                `json:"hand"`
	Board          string                `json:"board"`
	Wilds          string                `json:"wilds"`
	Players        int                   `json:"players"`
	Pot            float64               `json:"pot"`
	Call           float64               `json:"call"`
	Result         equity.Result         `json:"result"`
	Recommendation advice.Recommendation `json:"recommendation"`
}

func (c *OddsCmd) Run(g *Globals, ctx context.Context) error {
	a, err := g.setup()
	if err != nil {
		return err
	}

	hand, err := deck.ParseCards(c.Hand)
	if err != nil {
		return fmt.Errorf("hand: %w", err)
	}
	shown, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if len(shown)%2 != 0 || len(shown) > wild.NumPairs*2 {
		return fmt.Errorf("board: need whole pairs, up to %d cards, got %d", wild.NumPairs*2, len(shown))
	}
	revealed := len(shown) / 2
	board := wild.BoardFromCards(shown)

	rules := a.cfg.Rules
	players := c.Players
	if players == 0 {
		players = rules.Players
	}
	pot := a.antePot(players)
	if c.Pot != nil {
		pot = *c.Pot
	}
	iterations := c.Iterations
	if iterations == 0 {
		iterations = a.cfg.Simulation.Iterations
	}
	seed := c.Seed
	if seed == 0 {
		seed = a.cfg.Simulation.Seed
	}

	id, err := dealid.New()
	if err != nil {
		return err
	}

	req := equity.Request{
		Hero:          hand,
		Board:         board,
		RevealedPairs: revealed,
		Players:       players,
		Iterations:    iterations,
		Seed:          seed,
		HighOnly:      !rules.HighLowEnabled(),
		WildLow:       !rules.NaturalLowEnabled(),
		DealID:        id,
	}

	a.logger.Info("Simulating", "deal", id, "players", players, "revealed", revealed)
	res, err := a.simulator().Simulate(ctx, req)
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
		FinalRound:  revealed == wild.NumPairs,
		MaxBet:      rules.MaxBet,
		MaxRaises:   rules.MaxRaises,
		HighOnly:    req.HighOnly,
		Sim: &advice.SimulationNote{
			IterationsRun: res.IterationsRun,
			Elapsed:       res.Elapsed,
			TimeCapped:    res.TimeCapped,
		},
	})

	fmt.Fprintf(a.out, "%s %s\n\n", headerStyle.Render("hand"), renderCards(hand))
	renderBoard(a.out, board, revealed)
	renderResult(a.out, res, req.HighOnly)
	renderRecommendation(a.out, rec)

	if c.Report != "" {
		report := oddsReport{
			DealID:         id,
			Hand:           deck.FormatCards(hand),
			Board:          deck.FormatCards(shown),
			Wilds:          wild.Resolve(board, revealed).String(),
			Players:        players,
			Pot:            pot,
			Call:           c.Call,
			Result:         res,
			Recommendation: rec,
		}
		if err := fileutil.WriteJSONAtomic(c.Report, report, 0o644); err != nil {
			return err
		}
		a.logger.Info("Wrote report", "path", c.Report)
	}
	return nil
}
