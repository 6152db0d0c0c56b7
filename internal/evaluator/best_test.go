package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/followthequeen/internal/deck"
	"github.com/lox/followthequeen/internal/randutil"
	"github.com/lox/followthequeen/internal/wild"
)

func TestScoreLow(t *testing.T) {
	t.Parallel()

	wheel, err := ScoreLow(deck.MustParseCards("Ac 2d 3h 4s 5c"))
	require.NoError(t, err)
	sixLow, err := ScoreLow(deck.MustParseCards("2c 3d 4h 5s 6c"))
	require.NoError(t, err)

	assert.Equal(t, LowScore{1, 2, 3, 4, 5}, wheel)
	assert.Equal(t, 1, wheel.Compare(sixLow), "A-2-3-4-5 beats 2-3-4-5-6")
	assert.Equal(t, -1, sixLow.Compare(wheel))
	assert.Equal(t, "5-4-3-2-A", wheel.String())

	paired, err := ScoreLow(deck.MustParseCards("Ac Ad 3h 4s Kc"))
	require.NoError(t, err)
	assert.Equal(t, LowScore{1, 1, 3, 4, 13}, paired, "pairs are scored without a qualifier")
	assert.Equal(t, 1, paired.Compare(wheel))
}

func TestScoreLowIgnoresWildsByDefault(t *testing.T) {
	t.Parallel()

	cards := deck.MustParseCards("Kc Kd 3h 4s 5c")
	natural, err := ScoreLow(cards)
	require.NoError(t, err)
	assert.Equal(t, LowScore{3, 4, 5, 13, 13}, natural)

	wildLow, err := ScoreLowWild(cards, wild.NewRankSet(deck.King))
	require.NoError(t, err)
	assert.Equal(t, LowScore{1, 1, 3, 4, 5}, wildLow)

	_, err = ScoreLowWild(cards[:4], 0)
	require.ErrorIs(t, err, ErrInvalidHandSize)
}

// bruteForce scores every 3+2 pairing through the public scorers.
func bruteForce(t *testing.T, hand, community []deck.Card, wilds wild.RankSet) (HighScore, LowScore) {
	t.Helper()

	var (
		bestHigh HighScore
		bestLow  LowScore
		first    = true
	)
	for a := 0; a < 5; a++ {
		for b := a + 1; b < 5; b++ {
			for c := b + 1; c < 5; c++ {
				for i := 0; i < len(community); i++ {
					for j := i + 1; j < len(community); j++ {
						five := []deck.Card{hand[a], hand[b], hand[c], community[i], community[j]}
						h, err := ScoreHigh(five, wilds)
						require.NoError(t, err)
						l, err := ScoreLow(five)
						require.NoError(t, err)
						if first || h.Compare(bestHigh) > 0 {
							bestHigh = h
						}
						if first || l.Compare(bestLow) > 0 {
							bestLow = l
						}
						first = false
					}
				}
			}
		}
	}
	return bestHigh, bestLow
}

func TestBestChoosesHighAndLowIndependently(t *testing.T) {
	t.Parallel()

	hand := deck.MustParseCards("As 2d 3c Kh Kd")
	community := deck.MustParseCards("Ks Kc 4h 6s 9d Jc")

	sel, err := Best(hand, community, 0, Options{})
	require.NoError(t, err)

	wantHigh, wantLow := bruteForce(t, hand, community, 0)
	assert.Equal(t, wantHigh, sel.High)
	assert.Equal(t, wantLow, sel.Low)

	assert.Equal(t, HighScore{FourOfAKind, ranks(deck.King, deck.Ace)}, sel.High)
	assert.Equal(t, LowScore{1, 2, 3, 4, 6}, sel.Low)
	assert.NotEqual(t, sel.HighCards, sel.LowCards, "high and low may use different cards")

	highScore, err := ScoreHigh(sel.HighCards[:], 0)
	require.NoError(t, err)
	assert.Equal(t, sel.High, highScore)
	lowScore, err := ScoreLow(sel.LowCards[:])
	require.NoError(t, err)
	assert.Equal(t, sel.Low, lowScore)
}

func TestBestMatchesBruteForce(t *testing.T) {
	t.Parallel()

	rng := randutil.New(31)
	for range 40 {
		d := deck.New(rng)
		hand, err := d.Deal(5)
		require.NoError(t, err)
		community, err := d.Deal(10)
		require.NoError(t, err)
		wilds := wild.ResolveSequence(community)

		sel, err := Best(hand, community, wilds, Options{})
		require.NoError(t, err)

		wantHigh, wantLow := bruteForce(t, hand, community, wilds)
		require.Equal(t, wantHigh, sel.High)
		require.Equal(t, wantLow, sel.Low)
	}
}

func TestBestWithPartialCommunity(t *testing.T) {
	t.Parallel()

	hand := deck.MustParseCards("Qs Qd 2c 7h 8d")
	sel, err := Best(hand, deck.MustParseCards("Qh 3c"), 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, ThreeOfAKind, sel.High.Category)

	_, err = Best(hand, deck.MustParseCards("Qh"), 0, Options{})
	require.ErrorIs(t, err, ErrInvalidBoardSize)

	_, err = Best(hand[:4], deck.MustParseCards("Qh 3c"), 0, Options{})
	require.ErrorIs(t, err, ErrInvalidHandSize)

	_, err = Best(hand, deck.MustParseCards("Qs 3c"), 0, Options{})
	require.ErrorIs(t, err, deck.ErrDuplicateCard)
}

func TestBestWildLow(t *testing.T) {
	t.Parallel()

	hand := deck.MustParseCards("9s 9d 10c Jh 8d")
	community := deck.MustParseCards("Qs 9h 6c 7c")
	wilds := wild.ResolveSequence(community)
	require.Equal(t, []deck.Rank{deck.Nine}, wilds.Ranks())

	natural, err := Best(hand, community, wilds, Options{})
	require.NoError(t, err)
	assert.Equal(t, LowScore{6, 7, 8, 9, 9}, natural.Low)

	wildLow, err := Best(hand, community, wilds, Options{WildLow: true})
	require.NoError(t, err)
	assert.Equal(t, LowScore{1, 1, 1, 6, 8}, wildLow.Low)
	assert.Equal(t, natural.High, wildLow.High, "low rules do not affect high")
}

func TestShowdown(t *testing.T) {
	t.Parallel()

	community := deck.MustParseCards("Ks Kc 4h 6s 9d Jc 7c 8h")
	hands := [][]deck.Card{
		deck.MustParseCards("As 2d 3c Kh Kd"),
		deck.MustParseCards("Ac 2h 3d Qh Qd"),
		deck.MustParseCards("9h 9s Jd Js 2s"),
	}

	out, err := Showdown(hands, community, 0, Options{})
	require.NoError(t, err)
	require.Len(t, out.Selections, 3)

	assert.Equal(t, []int{0}, out.HighWinners, "quad kings take the high")
	assert.Equal(t, []int{0, 1}, out.LowWinners, "matching six lows split the low")
	assert.True(t, out.Scooped(0))
	assert.True(t, out.WonLow(1))
	assert.False(t, out.Scooped(1))
	assert.False(t, out.WonHigh(2))
	assert.Equal(t, FullHouse, out.Selections[2].High.Category)

	_, err = Showdown([][]deck.Card{hands[0], hands[0]}, community, 0, Options{})
	require.ErrorIs(t, err, deck.ErrDuplicateCard)

	_, err = Showdown([][]deck.Card{hands[0][:3]}, community, 0, Options{})
	require.ErrorIs(t, err, ErrInvalidHandSize)
}
