package evaluator

import (
	"fmt"

	"github.com/lox/followthequeen/internal/deck"
	"github.com/lox/followthequeen/internal/wild"
)

// Outcome is the result of comparing several players on one board.
// Winner slices hold seat indexes; tied players all appear.
type Outcome struct {
	Selections  []Selection
	HighWinners []int
	LowWinners  []int
}

// Scooped reports whether seat won both halves.
func (o Outcome) Scooped(seat int) bool {
	return o.WonHigh(seat) && o.WonLow(seat)
}

// WonHigh reports whether seat is among the high winners.
func (o Outcome) WonHigh(seat int) bool {
	return contains(o.HighWinners, seat)
}

// WonLow reports whether seat is among the low winners.
func (o Outcome) WonLow(seat int) bool {
	return contains(o.LowWinners, seat)
}

func contains(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}

// Showdown evaluates every hand against the community cards and returns the
// players whose high is not beaten and whose low is not beaten.
func Showdown(hands [][]deck.Card, community []deck.Card, wilds wild.RankSet, opts Options) (Outcome, error) {
	groups := make([][]deck.Card, 0, len(hands)+1)
	for i, h := range hands {
		if len(h) != HandSize {
			return Outcome{}, fmt.Errorf("seat %d: %w: got %d", i, ErrInvalidHandSize, len(h))
		}
		groups = append(groups, h)
	}
	if len(community) < 2 {
		return Outcome{}, fmt.Errorf("%w: got %d", ErrInvalidBoardSize, len(community))
	}
	if err := deck.CheckDistinct(append(groups, community)...); err != nil {
		return Outcome{}, err
	}

	sels := make([]Selection, len(hands))
	for i, h := range hands {
		sels[i] = best(h, community, wilds, opts)
	}
	return decide(sels), nil
}

func decide(sels []Selection) Outcome {
	out := Outcome{Selections: sels}
	if len(sels) == 0 {
		return out
	}

	topHigh, topLow := sels[0].High, sels[0].Low
	for _, s := range sels[1:] {
		if s.High.Compare(topHigh) > 0 {
			topHigh = s.High
		}
		if s.Low.Compare(topLow) > 0 {
			topLow = s.Low
		}
	}
	for i, s := range sels {
		if s.High.Compare(topHigh) == 0 {
			out.HighWinners = append(out.HighWinners, i)
		}
		if s.Low.Compare(topLow) == 0 {
			out.LowWinners = append(out.LowWinners, i)
		}
	}
	return out
}
