package deck

import (
	"fmt"
	"math/bits"
)

// CardSet represents a set of cards using a bitset for fast operations.
// Each card maps to the bit returned by Card.Index.
type CardSet uint64

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.Index()
}

// Remove removes a card from the set
func (cs *CardSet) Remove(card Card) {
	*cs &^= 1 << card.Index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.Index()) != 0
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Cards returns the members of the set in deck order.
func (cs CardSet) Cards() []Card {
	out := make([]Card, 0, cs.Len())
	for _, c := range Standard() {
		if cs.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// AddAll adds every card, failing on the first card that is invalid or
// already present. The set is left unchanged on error.
func (cs *CardSet) AddAll(cards ...Card) error {
	next := *cs
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
		if next.Contains(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		next.Add(c)
	}
	*cs = next
	return nil
}

// NewCardSet builds a set from distinct cards, returning ErrDuplicateCard
// if any card repeats.
func NewCardSet(cards ...Card) (CardSet, error) {
	var cs CardSet
	if err := cs.AddAll(cards...); err != nil {
		return 0, err
	}
	return cs, nil
}

// CheckDistinct returns ErrDuplicateCard if any card appears more than once
// across the given groups.
func CheckDistinct(groups ...[]Card) error {
	var cs CardSet
	for _, g := range groups {
		if err := cs.AddAll(g...); err != nil {
			return err
		}
	}
	return nil
}
