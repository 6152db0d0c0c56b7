package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "ascii notation",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "ten written as 10",
			input: "10c Qs 3d",
			expected: []Card{
				{Suit: Clubs, Rank: Ten},
				{Suit: Spades, Rank: Queen},
				{Suit: Diamonds, Rank: Three},
			},
		},
		{
			name:  "unicode suits",
			input: "10♣,Q♠,3♦,K♥",
			expected: []Card{
				{Suit: Clubs, Rank: Ten},
				{Suit: Spades, Rank: Queen},
				{Suit: Diamonds, Rank: Three},
				{Suit: Hearts, Rank: King},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{name: "invalid rank", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AsKx", wantErr: true},
		{name: "dangling rank", input: "AsK", wantErr: true},
		{name: "one is not a rank", input: "1h", wantErr: true},
		{name: "empty string", input: "", expected: []Card{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []Card{{Suit: Spades, Rank: Ace}}, MustParseCards("As"))
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestCardString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "10♣", NewCard(Clubs, Ten).String())
	assert.Equal(t, "Q♠", NewCard(Spades, Queen).String())
	assert.Equal(t, "Tc", NewCard(Clubs, Ten).Code())
	assert.Equal(t, "A♥ 2♦", FormatCards([]Card{NewCard(Hearts, Ace), NewCard(Diamonds, Two)}))
}

func TestLowValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, Ace.LowValue())
	assert.Equal(t, 2, Two.LowValue())
	assert.Equal(t, 13, King.LowValue())
}

func TestCardIndexIsUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[int]Card)
	for _, c := range Standard() {
		idx := c.Index()
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 52)
		prev, dup := seen[idx]
		require.Falsef(t, dup, "%s and %s share index %d", prev, c, idx)
		seen[idx] = c
	}
	assert.Len(t, seen, 52)
}

func TestCardSet(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("As Kd 10h")
	cs, err := NewCardSet(cards...)
	require.NoError(t, err)
	assert.Equal(t, 3, cs.Len())
	assert.True(t, cs.Contains(NewCard(Diamonds, King)))
	assert.False(t, cs.Contains(NewCard(Clubs, King)))

	err = cs.AddAll(NewCard(Clubs, Two), NewCard(Spades, Ace))
	require.ErrorIs(t, err, ErrDuplicateCard)
	assert.Equal(t, 3, cs.Len(), "failed AddAll must not modify the set")

	cs.Remove(NewCard(Spades, Ace))
	assert.False(t, cs.Contains(NewCard(Spades, Ace)))
}

func TestCheckDistinct(t *testing.T) {
	t.Parallel()
	require.NoError(t, CheckDistinct(MustParseCards("AsKs"), MustParseCards("QsJs")))
	require.ErrorIs(t, CheckDistinct(MustParseCards("AsKs"), MustParseCards("QsAs")), ErrDuplicateCard)
}
