// Package dealer holds the state of one deal: the private hands, the five
// community pairs, and how many pairs have been turned up. Callers thread a
// DealState through each step instead of keeping game globals.
package dealer

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/followthequeen/internal/deck"
	"github.com/lox/followthequeen/internal/equity"
	"github.com/lox/followthequeen/internal/evaluator"
	"github.com/lox/followthequeen/internal/wild"
)

var (
	// ErrAllRevealed is returned when revealing past the fifth pair.
	ErrAllRevealed = errors.New("dealer: all community pairs are revealed")

	// ErrNotFinal is returned when asking for a showdown before every pair
	// is face up.
	ErrNotFinal = errors.New("dealer: showdown needs all pairs revealed")

	// ErrInvalidSeat is returned for a seat index outside the table.
	ErrInvalidSeat = errors.New("dealer: no such seat")
)

// DealState is one deal's cards and reveal progress.
type DealState struct {
	ID       string
	Players  int
	Hands    [][]deck.Card
	Board    wild.Board
	Revealed int
}

// New shuffles a fresh deck with rng, deals five cards to each player in
// turn, then lays out the five face-down pairs.
func New(rng *rand.Rand, players int, id string) (*DealState, error) {
	if players < equity.MinPlayers || players > equity.MaxPlayers {
		return nil, fmt.Errorf("%w: %d", equity.ErrInvalidPlayers, players)
	}

	d := deck.New(rng)
	ds := &DealState{ID: id, Players: players, Hands: make([][]deck.Card, players)}
	for i := range ds.Hands {
		hand, err := d.Deal(evaluator.HandSize)
		if err != nil {
			return nil, err
		}
		ds.Hands[i] = hand
	}
	for i := range ds.Board {
		pair, err := d.Deal(2)
		if err != nil {
			return nil, err
		}
		ds.Board[i] = wild.Pair{pair[0], pair[1]}
	}
	return ds, nil
}

// RevealNext turns up the next community pair and returns it.
func (ds *DealState) RevealNext() (wild.Pair, error) {
	if ds.Revealed >= wild.NumPairs {
		return wild.Pair{}, ErrAllRevealed
	}
	ds.Revealed++
	return ds.Board[ds.Revealed-1], nil
}

// WildRanks recomputes the wild ranks from the pairs revealed so far.
func (ds *DealState) WildRanks() wild.RankSet {
	return wild.Resolve(ds.Board, ds.Revealed)
}

// KnownCommunity returns the face-up community cards in reveal order.
func (ds *DealState) KnownCommunity() []deck.Card {
	return ds.Board.Cards(ds.Revealed)
}

// FinalRound reports whether every pair is face up.
func (ds *DealState) FinalRound() bool {
	return ds.Revealed == wild.NumPairs
}

// Hand returns the private cards at seat.
func (ds *DealState) Hand(seat int) ([]deck.Card, error) {
	if seat < 0 || seat >= len(ds.Hands) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeat, seat)
	}
	return ds.Hands[seat], nil
}

// SimulationRequest builds an equity request from seat's point of view:
// only that seat's hand and the revealed pairs are treated as known.
func (ds *DealState) SimulationRequest(seat, iterations int) (equity.Request, error) {
	hand, err := ds.Hand(seat)
	if err != nil {
		return equity.Request{}, err
	}

	// Hidden pairs must not leak into the request.
	var board wild.Board
	copy(board[:ds.Revealed], ds.Board[:ds.Revealed])

	return equity.Request{
		Hero:          hand,
		Board:         board,
		RevealedPairs: ds.Revealed,
		Players:       ds.Players,
		Iterations:    iterations,
		DealID:        ds.ID,
	}, nil
}

// Showdown compares every hand on the full board.
func (ds *DealState) Showdown(opts evaluator.Options) (evaluator.Outcome, error) {
	if !ds.FinalRound() {
		return evaluator.Outcome{}, fmt.Errorf("%w: %d of %d revealed", ErrNotFinal, ds.Revealed, wild.NumPairs)
	}
	return evaluator.Showdown(ds.Hands, ds.KnownCommunity(), ds.WildRanks(), opts)
}
