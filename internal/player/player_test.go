package player

import (
	"testing"

	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := New("  Mykolas ")
	require.NoError(t, err)
	assert.Equal(t, "Mykolas", p.Name)
	assert.Zero(t, p.Wins)
	assert.Nil(t, p.Card)
	assert.False(t, p.Computer)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := New(name)
		assert.ErrorIs(t, err, ErrEmptyName, "name %q", name)
	}
}

func TestNewComputer(t *testing.T) {
	p := NewComputer()
	assert.Equal(t, ComputerName, p.Name)
	assert.True(t, p.Computer)
	assert.Equal(t, "Computer", p.String())
}

func TestHoldAndWin(t *testing.T) {
	p, err := New("Simonas")
	require.NoError(t, err)

	c := card.Must(12, card.Diamonds)
	p.Hold(c)
	require.NotNil(t, p.Card)
	assert.Equal(t, c, *p.Card)

	p.Win()
	p.Win()
	assert.Equal(t, 2, p.Wins)
}
