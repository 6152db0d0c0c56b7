package evaluator

import (
	"fmt"

	"github.com/lox/followthequeen/internal/deck"
	"github.com/lox/followthequeen/internal/wild"
)

// Options selects house rules that change how hands are scored.
type Options struct {
	// WildLow lets wild cards play as aces in the low hand. The zero value
	// scores low on natural card values only.
	WildLow bool
}

// Selection is a player's best high and best low hand. The two are chosen
// independently and may use different cards.
type Selection struct {
	High      HighScore
	Low       LowScore
	HighCards [HandSize]deck.Card
	LowCards  [HandSize]deck.Card
}

// Best searches every pairing of three private cards with two community
// cards and keeps the strongest high and the best low separately.
func Best(hand, community []deck.Card, wilds wild.RankSet, opts Options) (Selection, error) {
	if len(hand) != HandSize {
		return Selection{}, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(hand))
	}
	if len(community) < 2 {
		return Selection{}, fmt.Errorf("%w: got %d", ErrInvalidBoardSize, len(community))
	}
	if err := deck.CheckDistinct(hand, community); err != nil {
		return Selection{}, err
	}
	return best(hand, community, wilds, opts), nil
}

// handTriples lists the ten ways to keep three of five private cards.
var handTriples = func() [][3]int {
	var out [][3]int
	for a := 0; a < HandSize; a++ {
		for b := a + 1; b < HandSize; b++ {
			for c := b + 1; c < HandSize; c++ {
				out = append(out, [3]int{a, b, c})
			}
		}
	}
	return out
}()

func best(hand, community []deck.Card, wilds wild.RankSet, opts Options) Selection {
	var (
		sel   Selection
		first = true
		five  [HandSize]deck.Card
	)
	lowWilds := wild.RankSet(0)
	if opts.WildLow {
		lowWilds = wilds
	}

	for _, t := range handTriples {
		five[0], five[1], five[2] = hand[t[0]], hand[t[1]], hand[t[2]]
		for i := 0; i < len(community); i++ {
			for j := i + 1; j < len(community); j++ {
				five[3], five[4] = community[i], community[j]

				high := scoreHigh(five, wilds)
				low := scoreLow(five, lowWilds)
				if first || high.Compare(sel.High) > 0 {
					sel.High, sel.HighCards = high, five
				}
				if first || low.Compare(sel.Low) > 0 {
					sel.Low, sel.LowCards = low, five
				}
				first = false
			}
		}
	}
	return sel
}
