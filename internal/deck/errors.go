package deck

import "errors"

var (
	// ErrInvalidCard is returned when a card cannot be parsed or has an
	// out-of-range rank or suit.
	ErrInvalidCard = errors.New("invalid card")

	// ErrDuplicateCard signals that the same rank and suit appeared twice in
	// a set that must hold distinct cards.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrDeckExhausted is returned when more cards are requested than remain.
	ErrDeckExhausted = errors.New("deck exhausted")
)
