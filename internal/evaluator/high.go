package evaluator

import (
	"fmt"

	"github.com/lox/followthequeen/internal/deck"
	"github.com/lox/followthequeen/internal/wild"
)

// HandSize is the number of cards in a scored hand and in a private hand.
const HandSize = 5

// ScoreHigh scores exactly five cards for high. Every card whose rank is in
// wilds may stand for any rank; the best substitution is always taken.
func ScoreHigh(cards []deck.Card, wilds wild.RankSet) (HighScore, error) {
	hand, err := toHand(cards)
	if err != nil {
		return HighScore{}, err
	}
	return scoreHigh(hand, wilds), nil
}

func toHand(cards []deck.Card) ([HandSize]deck.Card, error) {
	var hand [HandSize]deck.Card
	if len(cards) != HandSize {
		return hand, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}
	if err := deck.CheckDistinct(cards); err != nil {
		return hand, err
	}
	copy(hand[:], cards)
	return hand, nil
}

// scoreHigh enumerates all 13^k rank assignments for the k wild cards and
// keeps the strongest result.
func scoreHigh(hand [HandSize]deck.Card, wilds wild.RankSet) HighScore {
	var (
		natural   [HandSize]deck.Rank
		nNatural  int
		flushable = true
		suit      deck.Suit
	)
	for _, c := range hand {
		if wilds.Has(c.Rank) {
			continue
		}
		if nNatural == 0 {
			suit = c.Suit
		} else if c.Suit != suit {
			flushable = false
		}
		natural[nNatural] = c.Rank
		nNatural++
	}
	k := HandSize - nNatural

	if k == 0 {
		return classify(natural, flushable)
	}

	// Five of a kind is the top category, so when the natural cards already
	// share one rank the wilds can only do best by joining it.
	if r, ok := sameRank(natural[:nNatural]); ok {
		return HighScore{Category: FiveOfAKind, Ranks: [5]deck.Rank{r}}
	}

	ranks := natural
	digits := make([]deck.Rank, k)
	for i := range digits {
		digits[i] = deck.Two
	}

	var best HighScore
	first := true
	for {
		copy(ranks[nNatural:], digits)
		score := classify(ranks, flushable)
		if first || score.Compare(best) > 0 {
			best = score
			first = false
		}

		// Odometer step over the wild digits.
		i := 0
		for ; i < k; i++ {
			if digits[i] < deck.Ace {
				digits[i]++
				break
			}
			digits[i] = deck.Two
		}
		if i == k {
			return best
		}
	}
}

// sameRank reports the shared rank of cards, or Ace when there are none.
func sameRank(ranks []deck.Rank) (deck.Rank, bool) {
	if len(ranks) == 0 {
		return deck.Ace, true
	}
	for _, r := range ranks[1:] {
		if r != ranks[0] {
			return 0, false
		}
	}
	return ranks[0], true
}

// classify scores five concrete ranks. flush says whether the suits allow a
// flush; it does not depend on what the wild cards became.
func classify(ranks [HandSize]deck.Rank, flush bool) HighScore {
	var counts [deck.Ace + 1]int
	for _, r := range ranks {
		counts[r]++
	}

	// Rank groups ordered by count desc then rank desc. Every tiebreak except
	// straights and flushes reads straight off this ordering.
	var groups [HandSize]deck.Rank
	var sizes [HandSize]int
	n := 0
	for size := HandSize; size > 0; size-- {
		for r := deck.Ace; r >= deck.Two; r-- {
			if counts[r] == size {
				groups[n] = r
				sizes[n] = size
				n++
			}
		}
	}

	high, straight := straightHigh(counts[:], n)

	switch {
	case sizes[0] == 5:
		return HighScore{Category: FiveOfAKind, Ranks: [5]deck.Rank{groups[0]}}
	case straight && flush:
		return HighScore{Category: StraightFlush, Ranks: [5]deck.Rank{high}}
	case sizes[0] == 4:
		return HighScore{Category: FourOfAKind, Ranks: [5]deck.Rank{groups[0], groups[1]}}
	case sizes[0] == 3 && sizes[1] == 2:
		return HighScore{Category: FullHouse, Ranks: [5]deck.Rank{groups[0], groups[1]}}
	case flush:
		return HighScore{Category: Flush, Ranks: descending(counts[:])}
	case straight:
		return HighScore{Category: Straight, Ranks: [5]deck.Rank{high}}
	case sizes[0] == 3:
		return HighScore{Category: ThreeOfAKind, Ranks: [5]deck.Rank{groups[0], groups[1], groups[2]}}
	case sizes[0] == 2 && sizes[1] == 2:
		return HighScore{Category: TwoPair, Ranks: [5]deck.Rank{groups[0], groups[1], groups[2]}}
	case sizes[0] == 2:
		return HighScore{Category: OnePair, Ranks: [5]deck.Rank{groups[0], groups[1], groups[2], groups[3]}}
	default:
		return HighScore{Category: HighCard, Ranks: descending(counts[:])}
	}
}

// straightHigh needs five distinct ranks. The wheel A-2-3-4-5 plays five high.
func straightHigh(counts []int, distinct int) (deck.Rank, bool) {
	if distinct != HandSize {
		return 0, false
	}
	lo, hi := deck.Ace, deck.Two
	for r := deck.Two; r <= deck.Ace; r++ {
		if counts[r] > 0 {
			lo = min(lo, r)
			hi = max(hi, r)
		}
	}
	if hi-lo == 4 {
		return hi, true
	}
	if counts[deck.Ace] > 0 && counts[deck.Two] > 0 && counts[deck.Three] > 0 &&
		counts[deck.Four] > 0 && counts[deck.Five] > 0 {
		return deck.Five, true
	}
	return 0, false
}

// descending lists all five ranks high to low, repeats included.
func descending(counts []int) [5]deck.Rank {
	var out [5]deck.Rank
	i := 0
	for r := deck.Ace; r >= deck.Two; r-- {
		for c := 0; c < counts[r]; c++ {
			out[i] = r
			i++
		}
	}
	return out
}
