package evaluator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerrank/internal/deck"
	"github.com/lox/pokerrank/internal/randutil"
)

func randomHands(t testing.TB, n int, seed int64) []Hand {
	t.Helper()
	rng := randutil.New(seed)
	hands := make([]Hand, n)
	for i := range hands {
		cards, err := deck.NewDeck(rng).DrawN(HandSize)
		require.NoError(t, err)
		h, err := NewHand(cards...)
		require.NoError(t, err)
		hands[i] = h
	}
	return hands
}

func TestClassifyAllMatchesSequential(t *testing.T) {
	hands := randomHands(t, 5000, 42)

	for _, workers := range []int{0, 1, 3, 16} {
		got, err := ClassifyAll(context.Background(), hands, workers)
		require.NoError(t, err)
		require.Len(t, got, len(hands))
		for i, h := range hands {
			assert.Equal(t, Classify(h), got[i], "workers=%d hand=%s", workers, h)
		}
	}
}

func TestClassifyAllEmpty(t *testing.T) {
	got, err := ClassifyAll(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClassifyAllCancelled(t *testing.T) {
	hands := randomHands(t, 100, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ClassifyAll(ctx, hands, 4)
	assert.ErrorIs(t, err, context.Canceled)
}
