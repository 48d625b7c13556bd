package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCardShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		card := GenerateCard(rng)
		require.Len(t, card, GridSize)
		assert.Equal(t, 0, card[FreeIndex], "center cell must be the free space")

		seen := make(map[int]bool)
		for col := 0; col < 5; col++ {
			low, high := ColumnRange(col)
			for row := 0; row < 5; row++ {
				idx := row*5 + col
				n := card[idx]
				if idx == FreeIndex {
					continue
				}
				assert.False(t, seen[n], "duplicate value %d", n)
				seen[n] = true
				assert.GreaterOrEqual(t, n, low, "column %d value %d below range", col, n)
				assert.LessOrEqual(t, n, high, "column %d value %d above range", col, n)
			}
		}
	}
}

func TestGenerateCardDeterministicWithSeed(t *testing.T) {
	a := GenerateCard(rand.New(rand.NewSource(42)))
	b := GenerateCard(rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestGenerateCardVaries(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := GenerateCard(rng)
	b := GenerateCard(rng)
	assert.NotEqual(t, a, b)
}

func TestColumnRange(t *testing.T) {
	low, high := ColumnRange(0)
	assert.Equal(t, 1, low)
	assert.Equal(t, 15, high)

	low, high = ColumnRange(4)
	assert.Equal(t, 61, low)
	assert.Equal(t, 75, high)
}
