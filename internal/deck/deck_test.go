package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerrank/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck(randutil.New(42))
	assert.Equal(t, Size, d.CardsRemaining())
}

func TestDeckDrawAll(t *testing.T) {
	d := NewDeck(randutil.New(42))

	seen := make(map[Card]bool, Size)
	for i := range Size {
		card, err := d.Draw()
		require.NoError(t, err, "draw %d", i+1)
		assert.True(t, card.Rank.Valid(), "invalid rank dealt: %v", card)
		assert.False(t, seen[card], "card dealt twice: %v", card)
		seen[card] = true
	}

	assert.Len(t, seen, Size)
	assert.Equal(t, 0, d.CardsRemaining())

	_, err := d.Draw()
	assert.True(t, errors.Is(err, ErrDeckExhausted))
}

func TestDeckDrawN(t *testing.T) {
	d := NewDeck(randutil.New(7))

	cards, err := d.DrawN(50)
	require.NoError(t, err)
	assert.Len(t, cards, 50)

	cards, err = d.DrawN(5)
	assert.True(t, errors.Is(err, ErrDeckExhausted))
	assert.Len(t, cards, 2)
}

func TestDeckDeal(t *testing.T) {
	d := NewDeck(randutil.New(1))

	hands, err := d.Deal(2, 5)
	require.NoError(t, err)
	require.Len(t, hands, 2)
	assert.Len(t, hands[0], 5)
	assert.Len(t, hands[1], 5)
	assert.Equal(t, Size-10, d.CardsRemaining())

	seen := make(map[Card]bool)
	for _, hand := range hands {
		for _, card := range hand {
			assert.False(t, seen[card], "card dealt twice: %v", card)
			seen[card] = true
		}
	}
}

func TestDeckDealExhausted(t *testing.T) {
	d := NewDeck(randutil.New(1))

	_, err := d.Deal(11, 5)
	assert.True(t, errors.Is(err, ErrDeckExhausted))
}

func TestDeckDeterministic(t *testing.T) {
	a := NewDeck(randutil.New(99))
	b := NewDeck(randutil.New(99))

	handsA, err := a.Deal(2, 5)
	require.NoError(t, err)
	handsB, err := b.Deal(2, 5)
	require.NoError(t, err)

	assert.Equal(t, handsA, handsB)
}

func TestDeckReset(t *testing.T) {
	d := NewDeck(randutil.New(3))
	_, err := d.DrawN(20)
	require.NoError(t, err)

	d.Reset()
	assert.Equal(t, Size, d.CardsRemaining())
}
