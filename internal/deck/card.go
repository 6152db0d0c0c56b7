package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the ASCII suit letter used in compact card notation.
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// Rank represents a card rank. Aces are high (14); low evaluation maps them
// to 1 through LowValue.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a deck.
const NumRanks = 13

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Valid reports whether r is between Two and Ace.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// LowValue returns the ace-low numeric value of the rank (ace = 1).
func (r Rank) LowValue() int {
	if r == Ace {
		return 1
	}
	return int(r)
}

// Card represents a playing card. Cards are plain values and compare equal
// when rank and suit match.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "Q♠", "10♣")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Code returns the compact ASCII notation for the card (e.g., "Qs", "Tc").
func (c Card) Code() string {
	r := c.Rank.String()
	if c.Rank == Ten {
		r = "T"
	}
	return r + c.Suit.Letter()
}

// Valid reports whether the card has a real rank and suit.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Index maps the card to a unique bit index in 0..51.
func (c Card) Index() int {
	return int(c.Rank-Two)*4 + int(c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

// FormatCards joins card strings with single spaces.
func FormatCards(cards []Card) string {
	out := make([]byte, 0, len(cards)*4)
	for i, c := range cards {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, c.String()...)
	}
	return string(out)
}
