// Package wild tracks the community board and derives which ranks are wild
// under the follow-the-queen rule.
//
// Whenever a queen is turned face up, the rank of the very next revealed card
// becomes wild for the rest of the hand. A queen that is the last card
// revealed so far has nothing to follow it yet, so queens themselves are wild
// until another card appears.
package wild

import (
	"strings"

	"github.com/lox/followthequeen/internal/deck"
)

// NumPairs is the number of face-down community pairs on the board.
const NumPairs = 5

// Pair is two community cards revealed together.
type Pair [2]deck.Card

// Board is the full community layout in reveal order.
type Board [NumPairs]Pair

// Cards flattens the first n pairs in reveal order: pair 0 card 0, pair 0
// card 1, pair 1 card 0, and so on. n is clamped to 0..NumPairs.
func (b Board) Cards(n int) []deck.Card {
	n = ClampRevealed(n)
	out := make([]deck.Card, 0, n*2)
	for i := 0; i < n; i++ {
		out = append(out, b[i][0], b[i][1])
	}
	return out
}

// BoardFromCards builds a board from up to ten cards in reveal order.
// Missing positions are left as zero cards.
func BoardFromCards(cards []deck.Card) Board {
	var b Board
	for i, c := range cards {
		if i >= NumPairs*2 {
			break
		}
		b[i/2][i%2] = c
	}
	return b
}

// ClampRevealed bounds a revealed-pair count to 0..NumPairs.
func ClampRevealed(n int) int {
	switch {
	case n < 0:
		return 0
	case n > NumPairs:
		return NumPairs
	default:
		return n
	}
}

// RankSet is a set of ranks; bit r is set when rank r is wild.
type RankSet uint16

// NewRankSet returns a set holding the given ranks.
func NewRankSet(ranks ...deck.Rank) RankSet {
	var s RankSet
	for _, r := range ranks {
		s = s.With(r)
	}
	return s
}

// With returns the set plus r.
func (s RankSet) With(r deck.Rank) RankSet {
	if !r.Valid() {
		return s
	}
	return s | 1<<uint(r)
}

// Has reports whether r is in the set.
func (s RankSet) Has(r deck.Rank) bool {
	return r.Valid() && s&(1<<uint(r)) != 0
}

// Empty reports whether no rank is wild.
func (s RankSet) Empty() bool {
	return s == 0
}

// Ranks lists the members from deuce to ace.
func (s RankSet) Ranks() []deck.Rank {
	var out []deck.Rank
	for r := deck.Two; r <= deck.Ace; r++ {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// String renders the set as "{3, Q}".
func (s RankSet) String() string {
	parts := make([]string, 0, deck.NumRanks)
	for _, r := range s.Ranks() {
		parts = append(parts, r.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Resolve returns the wild ranks after revealedPairs pairs of the board have
// been turned face up. It always recomputes from the first card.
func Resolve(board Board, revealedPairs int) RankSet {
	return ResolveSequence(board.Cards(revealedPairs))
}

// ResolveSequence applies the follow-the-queen walk to cards already in
// reveal order.
func ResolveSequence(cards []deck.Card) RankSet {
	var wilds RankSet
	var last *deck.Card
	for i := range cards {
		if last != nil && last.Rank == deck.Queen {
			wilds = wilds.With(cards[i].Rank)
		}
		last = &cards[i]
	}
	if last != nil && last.Rank == deck.Queen {
		wilds = wilds.With(deck.Queen)
	}
	return wilds
}
