package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/followthequeen/internal/deck"
	"github.com/lox/followthequeen/internal/evaluator"
	"github.com/lox/followthequeen/internal/wild"
)

// ScoreCmd scores a hand. With a board it picks the best three private
// cards plus two community cards, separately for high and low.
type ScoreCmd struct {
	Hand  string   `arg:"" help:"Five cards to score"`
	Board string   `short:"b" help:"Community cards; wilds follow the board unless --wild is set"`
	Wild  []string `short:"w" help:"Wild ranks (e.g. -w Q -w 3)"`
}

func (c *ScoreCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}

	hand, err := deck.ParseCards(c.Hand)
	if err != nil {
		return fmt.Errorf("hand: %w", err)
	}
	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	wilds := wild.ResolveSequence(board)
	if len(c.Wild) > 0 {
		wilds = 0
		for _, s := range c.Wild {
			r, err := deck.ParseRank(s)
			if err != nil {
				return fmt.Errorf("wild: %w", err)
			}
			wilds = wilds.With(r)
		}
	}
	opts := a.evalOptions()

	var sel evaluator.Selection
	if len(board) == 0 {
		high, err := evaluator.ScoreHigh(hand, wilds)
		if err != nil {
			return err
		}
		low, err := evaluator.ScoreLow(hand)
		if opts.WildLow {
			low, err = evaluator.ScoreLowWild(hand, wilds)
		}
		if err != nil {
			return err
		}
		sel = evaluator.Selection{High: high, Low: low}
		copy(sel.HighCards[:], hand)
		copy(sel.LowCards[:], hand)
	} else {
		sel, err = evaluator.Best(hand, board, wilds, opts)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "wild: %s\n\n", renderWilds(wilds))
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("half"),
		headerStyle.Render("cards"),
		headerStyle.Render("score"))
	fmt.Fprintf(tw, "high\t%s\t%s\n", renderCards(sel.HighCards[:]), sel.High)
	if a.cfg.Rules.HighLowEnabled() {
		fmt.Fprintf(tw, "low\t%s\t%s\n", renderCards(sel.LowCards[:]), sel.Low)
	}
	return tw.Flush()
}

// WildCmd shows how the wild ranks change as each pair is revealed.
type WildCmd struct {
	Board string `arg:"" help:"Community cards in reveal order"`
}

func (c *WildCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}

	cards, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if len(cards) > wild.NumPairs*2 {
		return fmt.Errorf("board: at most %d cards, got %d", wild.NumPairs*2, len(cards))
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("pair"),
		headerStyle.Render("cards"),
		headerStyle.Render("wild"))
	for i := 0; i < len(cards); i += 2 {
		upTo := min(i+2, len(cards))
		shown := make([]string, 0, 2)
		for _, card := range cards[i:upTo] {
			shown = append(shown, card.String())
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i/2+1, strings.Join(shown, " "), renderWilds(wild.ResolveSequence(cards[:upTo])))
	}
	return tw.Flush()
}
