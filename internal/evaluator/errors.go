package evaluator

import "errors"

var (
	// ErrInvalidHandSize is returned when an evaluator receives anything other
	// than exactly five cards where a hand is expected.
	ErrInvalidHandSize = errors.New("evaluator: hand must contain exactly 5 cards")

	// ErrInvalidBoardSize is returned when fewer than two community cards are
	// available to combine with a hand.
	ErrInvalidBoardSize = errors.New("evaluator: need at least 2 community cards")
)
