package dealer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/followthequeen/internal/deck"
	"github.com/lox/followthequeen/internal/equity"
	"github.com/lox/followthequeen/internal/evaluator"
	"github.com/lox/followthequeen/internal/randutil"
	"github.com/lox/followthequeen/internal/wild"
)

func TestNewDealsDistinctCards(t *testing.T) {
	t.Parallel()

	ds, err := New(randutil.New(1), 6, "deal-1")
	require.NoError(t, err)

	require.Len(t, ds.Hands, 6)
	groups := append([][]deck.Card{}, ds.Hands...)
	groups = append(groups, ds.Board.Cards(wild.NumPairs))
	require.NoError(t, deck.CheckDistinct(groups...))

	for _, h := range ds.Hands {
		assert.Len(t, h, 5)
	}
	assert.Zero(t, ds.Revealed)
	assert.Empty(t, ds.KnownCommunity())
	assert.True(t, ds.WildRanks().Empty())
}

func TestNewIsReproducible(t *testing.T) {
	t.Parallel()

	a, err := New(randutil.New(7), 4, "a")
	require.NoError(t, err)
	b, err := New(randutil.New(7), 4, "b")
	require.NoError(t, err)
	assert.Equal(t, a.Hands, b.Hands)
	assert.Equal(t, a.Board, b.Board)
}

func TestNewRejectsPlayerCount(t *testing.T) {
	t.Parallel()

	_, err := New(randutil.New(1), 1, "")
	require.ErrorIs(t, err, equity.ErrInvalidPlayers)
	_, err = New(randutil.New(1), 9, "")
	require.ErrorIs(t, err, equity.ErrInvalidPlayers)
}

func TestRevealProgression(t *testing.T) {
	t.Parallel()

	ds := &DealState{
		Players: 2,
		Hands: [][]deck.Card{
			deck.MustParseCards("As 2d 3c Kh Kd"),
			deck.MustParseCards("Ac 2h 3d Qh Qd"),
		},
		Board: wild.BoardFromCards(deck.MustParseCards("10c Qs 3s Kc 4h 6s 9d Jc 7c 8h")),
	}

	pair, err := ds.RevealNext()
	require.NoError(t, err)
	assert.Equal(t, wild.Pair{deck.NewCard(deck.Clubs, deck.Ten), deck.NewCard(deck.Spades, deck.Queen)}, pair)
	assert.Equal(t, []deck.Rank{deck.Queen}, ds.WildRanks().Ranks(), "trailing queen")

	_, err = ds.RevealNext()
	require.NoError(t, err)
	assert.Equal(t, []deck.Rank{deck.Three}, ds.WildRanks().Ranks())
	assert.Len(t, ds.KnownCommunity(), 4)

	_, err = ds.Showdown(evaluator.Options{})
	require.ErrorIs(t, err, ErrNotFinal)

	for range 3 {
		_, err = ds.RevealNext()
		require.NoError(t, err)
	}
	assert.True(t, ds.FinalRound())
	_, err = ds.RevealNext()
	require.ErrorIs(t, err, ErrAllRevealed)

	out, err := ds.Showdown(evaluator.Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, out.HighWinners)
	assert.NotEmpty(t, out.LowWinners)
}

func TestSimulationRequestHidesUnrevealedPairs(t *testing.T) {
	t.Parallel()

	ds, err := New(randutil.New(3), 3, "deal-3")
	require.NoError(t, err)
	_, err = ds.RevealNext()
	require.NoError(t, err)

	req, err := ds.SimulationRequest(1, 50)
	require.NoError(t, err)
	assert.Equal(t, ds.Hands[1], req.Hero)
	assert.Equal(t, 1, req.RevealedPairs)
	assert.Equal(t, 3, req.Players)
	assert.Equal(t, "deal-3", req.DealID)
	assert.Equal(t, ds.Board[0], req.Board[0])
	for i := 1; i < wild.NumPairs; i++ {
		assert.Equal(t, wild.Pair{}, req.Board[i])
	}

	_, err = ds.SimulationRequest(3, 50)
	require.ErrorIs(t, err, ErrInvalidSeat)

	req.Seed = 17
	sim := equity.New(equity.Config{Workers: 2})
	res, err := sim.Simulate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 50, res.IterationsRun)
}
