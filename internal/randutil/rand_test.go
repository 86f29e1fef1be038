package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(12345)
	b := New(12345)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewDiffersBySeed(t *testing.T) {
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(42), Seed(42))
	assert.NotZero(t, Seed(0))
}
