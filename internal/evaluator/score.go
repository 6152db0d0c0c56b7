package evaluator

import (
	"strings"

	"github.com/lox/followthequeen/internal/deck"
)

// Category is the class of a high hand, weakest first.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
)

// String returns the string representation of a hand category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		return "Unknown"
	}
}

// HighScore ranks a five-card high hand. Scores compare lexicographically:
// category first, then the tiebreak ranks in descending significance.
// Unused tiebreak slots are zero.
type HighScore struct {
	Category Category
	Ranks    [5]deck.Rank
}

// Compare returns 1 if s is stronger than other, -1 if weaker, 0 if equal.
func (s HighScore) Compare(other HighScore) int {
	if s.Category != other.Category {
		if s.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := range s.Ranks {
		if s.Ranks[i] != other.Ranks[i] {
			if s.Ranks[i] > other.Ranks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Tiebreak returns the meaningful tiebreak ranks without zero padding.
func (s HighScore) Tiebreak() []deck.Rank {
	out := make([]deck.Rank, 0, len(s.Ranks))
	for _, r := range s.Ranks {
		if r == 0 {
			break
		}
		out = append(out, r)
	}
	return out
}

// String renders the score as "Full House (K 3)".
func (s HighScore) String() string {
	parts := make([]string, 0, len(s.Ranks))
	for _, r := range s.Tiebreak() {
		parts = append(parts, r.String())
	}
	return s.Category.String() + " (" + strings.Join(parts, " ") + ")"
}

// LowScore ranks a five-card low hand as ace-low values in ascending order.
// The smaller sequence wins.
type LowScore [5]int

// Compare returns 1 if s is the better (lower) hand, -1 if worse, 0 if equal.
func (s LowScore) Compare(other LowScore) int {
	for i := range s {
		if s[i] != other[i] {
			if s[i] < other[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// String renders the low as "5-4-3-2-A", highest card first.
func (s LowScore) String() string {
	parts := make([]string, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == 1 {
			parts = append(parts, "A")
			continue
		}
		parts = append(parts, deck.Rank(s[i]).String())
	}
	return strings.Join(parts, "-")
}
