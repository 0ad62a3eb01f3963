package deck

import (
	"testing"

	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeededIsFullDeck(t *testing.T) {
	d := NewSeeded(42)
	require.Equal(t, Size, d.Len())

	seen := make(map[card.Card]int)
	for _, c := range d.Remaining() {
		seen[c]++
	}
	require.Len(t, seen, Size)
	for rank := card.MinRank; rank <= card.MaxRank; rank++ {
		for _, suit := range card.Suits {
			assert.Equal(t, 1, seen[card.Card{Rank: rank, Suit: suit}], "rank %d suit %s", rank, suit)
		}
	}
}

func TestNewSeededIsDeterministic(t *testing.T) {
	assert.Equal(t, NewSeeded(7).Remaining(), NewSeeded(7).Remaining())
	assert.NotEqual(t, Standard().Remaining(), NewSeeded(7).Remaining())
}

func TestFromTopDrawOrder(t *testing.T) {
	d := FromTop(card.Must(5, card.Spades), card.Must(7, card.Hearts), card.Must(9, card.Clubs))
	require.Equal(t, 3, d.Len())

	c, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, card.Must(5, card.Spades), c)

	c, ok = d.Draw()
	require.True(t, ok)
	assert.Equal(t, card.Must(7, card.Hearts), c)
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, []card.Card{card.Must(9, card.Clubs)}, d.Remaining())
}

func TestDrawFromEmptyDeck(t *testing.T) {
	d := FromTop()
	for i := 0; i < 3; i++ {
		_, ok := d.Draw()
		assert.False(t, ok)
		assert.Equal(t, 0, d.Len())
	}
}

func TestDrawExhaustsDeck(t *testing.T) {
	d := NewRandom()
	for i := 0; i < Size; i++ {
		_, ok := d.Draw()
		require.True(t, ok)
		require.Equal(t, Size-i-1, d.Len())
	}
	_, ok := d.Draw()
	assert.False(t, ok)
}
