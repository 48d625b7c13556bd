package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableNumbers(t *testing.T) {
	available := AvailableNumbers(nil)
	require.Len(t, available, 75)
	assert.Equal(t, 1, available[0])
	assert.Equal(t, 75, available[74])

	available = AvailableNumbers([]int{1, 75, 40})
	require.Len(t, available, 72)
	assert.NotContains(t, available, 1)
	assert.NotContains(t, available, 40)
	assert.NotContains(t, available, 75)
}

func TestAvailableNumbersExhausted(t *testing.T) {
	drawn := make([]int, 75)
	for i := range drawn {
		drawn[i] = i + 1
	}
	assert.Empty(t, AvailableNumbers(drawn))
}

func TestPickNumber(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	drawn := []int{}

	for i := 0; i < 75; i++ {
		n, ok := PickNumber(rng, drawn)
		require.True(t, ok)
		assert.False(t, Contains(drawn, n), "picked %d twice", n)
		assert.True(t, ValidNumber(n))
		drawn = append(drawn, n)
	}

	_, ok := PickNumber(rng, drawn)
	assert.False(t, ok, "pick must fail once all 75 numbers are drawn")
}

func TestValidNumber(t *testing.T) {
	assert.True(t, ValidNumber(1))
	assert.True(t, ValidNumber(75))
	assert.False(t, ValidNumber(0))
	assert.False(t, ValidNumber(76))
	assert.False(t, ValidNumber(-3))
}
