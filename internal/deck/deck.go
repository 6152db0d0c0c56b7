package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// Standard returns the 52 distinct cards in deck order (suit by suit, deuce
// through ace).
func Standard() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Deck represents an ordered pile of distinct playing cards. Cards leave the
// deck by being dealt or removed; Reset rebuilds the full 52.
type Deck struct {
	cards []Card
	held  CardSet
	rng   *rand.Rand
}

// New creates a full 52-card deck shuffled with rng. A nil rng leaves the
// deck in deck order, which is useful for scripted tests.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Without creates a shuffled deck holding every card not in known.
func Without(known CardSet, rng *rand.Rand) *Deck {
	d := Pool(known, rng)
	d.Shuffle()
	return d
}

// Pool holds every card not in known, left in deck order. Draw from it with
// DrawRandom, which does its own randomising, so no up-front shuffle is paid.
func Pool(known CardSet, rng *rand.Rand) *Deck {
	d := &Deck{rng: rng, cards: make([]Card, 0, 52-known.Len())}
	for _, c := range Standard() {
		if !known.Contains(c) {
			d.cards = append(d.cards, c)
			d.held.Add(c)
		}
	}
	return d
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.cards = append(d.cards[:0], Standard()...)
	d.held = 0
	for _, c := range d.cards {
		d.held.Add(c)
	}
	d.Shuffle()
}

// Shuffle randomizes the order of the remaining cards using Fisher-Yates.
// It is a no-op when the deck has no random source.
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top n cards.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d cards, %d remain", ErrDeckExhausted, n, len(d.cards))
	}
	out := make([]Card, n)
	copy(out, d.cards[:n])
	d.cards = d.cards[n:]
	for _, c := range out {
		d.held.Remove(c)
	}
	return out, nil
}

// DrawRandom removes and returns n cards chosen uniformly at random without
// replacement, independent of the current deck order.
func (d *Deck) DrawRandom(n int) ([]Card, error) {
	if d.rng == nil {
		return d.Deal(n)
	}
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d cards, %d remain", ErrDeckExhausted, n, len(d.cards))
	}
	// Partial Fisher-Yates from the front; the chosen prefix is then dealt.
	for i := 0; i < n; i++ {
		j := i + d.rng.IntN(len(d.cards)-i)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d.Deal(n)
}

// Remove takes specific cards out of the deck, wherever they sit. Asking for
// a card the deck does not hold means it was already dealt or known, and
// fails with ErrDuplicateCard without modifying the deck.
func (d *Deck) Remove(cards ...Card) error {
	var drop CardSet
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
		if !d.held.Contains(c) || drop.Contains(c) {
			return fmt.Errorf("%w: %s is not in the deck", ErrDuplicateCard, c)
		}
		drop.Add(c)
	}

	kept := d.cards[:0]
	for _, c := range d.cards {
		if !drop.Contains(c) {
			kept = append(kept, c)
		}
	}
	d.cards = kept
	d.held &^= drop
	return nil
}

// Contains reports whether the deck still holds the card.
func (d *Deck) Contains(card Card) bool {
	return card.Valid() && d.held.Contains(card)
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in deck order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
