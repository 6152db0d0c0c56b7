package deck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseCard parses a single card such as "As", "10h", "Th" or "Q♠".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("%w: empty card", ErrInvalidCard)
	}

	suitRune, size := utf8.DecodeLastRuneInString(s)
	suit, err := parseSuit(suitRune)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}

	rank, err := parseRank(s[:len(s)-size])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a run of cards. Cards may be separated by spaces or
// commas, or written back to back ("AsKd10h", "A♠ K♦").
func ParseCards(s string) ([]Card, error) {
	cards := []Card{}
	rest := strings.NewReplacer(" ", "", ",", "", "\t", "").Replace(s)
	for pos := 0; rest != ""; {
		n := tokenLength(rest)
		if n == 0 {
			return nil, fmt.Errorf("%w: incomplete card at position %d", ErrInvalidCard, pos)
		}
		card, err := ParseCard(rest[:n])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", pos, err)
		}
		cards = append(cards, card)
		rest = rest[n:]
		pos += n
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// ParseRank parses a rank symbol ("2".."10", "T", "J", "Q", "K", "A").
func ParseRank(s string) (Rank, error) {
	return parseRank(strings.TrimSpace(s))
}

// tokenLength returns the byte length of the leading card token in s,
// or 0 when s does not start with a complete card.
func tokenLength(s string) int {
	rankLen := 1
	if strings.HasPrefix(s, "10") {
		rankLen = 2
	}
	if len(s) <= rankLen {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s[rankLen:])
	return rankLen + size
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "T", "10":
		return Ten, nil
	case "9":
		return Nine, nil
	case "8":
		return Eight, nil
	case "7":
		return Seven, nil
	case "6":
		return Six, nil
	case "5":
		return Five, nil
	case "4":
		return Four, nil
	case "3":
		return Three, nil
	case "2":
		return Two, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case 's', 'S', '♠':
		return Spades, nil
	case 'h', 'H', '♥':
		return Hearts, nil
	case 'd', 'D', '♦':
		return Diamonds, nil
	case 'c', 'C', '♣':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", r)
	}
}
