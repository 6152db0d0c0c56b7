package evaluator

import (
	"slices"

	"github.com/lox/followthequeen/internal/deck"
	"github.com/lox/followthequeen/internal/wild"
)

// ScoreLow scores exactly five cards for low: aces count one, there is no
// qualifier, and wild cards keep their face value.
func ScoreLow(cards []deck.Card) (LowScore, error) {
	hand, err := toHand(cards)
	if err != nil {
		return LowScore{}, err
	}
	return scoreLow(hand, 0), nil
}

// ScoreLowWild scores five cards for low under the house rule where wild
// cards also play in the low hand. Each wild takes whatever value makes the
// sorted sequence smallest, which is always an ace.
func ScoreLowWild(cards []deck.Card, wilds wild.RankSet) (LowScore, error) {
	hand, err := toHand(cards)
	if err != nil {
		return LowScore{}, err
	}
	return scoreLow(hand, wilds), nil
}

func scoreLow(hand [HandSize]deck.Card, wilds wild.RankSet) LowScore {
	var s LowScore
	for i, c := range hand {
		if wilds.Has(c.Rank) {
			s[i] = 1
			continue
		}
		s[i] = c.Rank.LowValue()
	}
	slices.Sort(s[:])
	return s
}
