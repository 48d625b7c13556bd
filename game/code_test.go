package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoomCode(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		code := NewRoomCode(rng)
		assert.True(t, ValidRoomCode(code), "generated code %q failed validation", code)
	}
}

func TestNewRoomCodeDeterministicWithSeed(t *testing.T) {
	a := NewRoomCode(rand.New(rand.NewSource(5)))
	b := NewRoomCode(rand.New(rand.NewSource(5)))
	assert.Equal(t, a, b)
}

func TestValidRoomCode(t *testing.T) {
	assert.True(t, ValidRoomCode("ABC123"))
	assert.True(t, ValidRoomCode("000000"))
	assert.True(t, ValidRoomCode("ZZZZZZ"))

	assert.False(t, ValidRoomCode(""))
	assert.False(t, ValidRoomCode("ABC12"))
	assert.False(t, ValidRoomCode("ABC1234"))
	assert.False(t, ValidRoomCode("abc123"), "lowercase must be rejected; callers normalize first")
	assert.False(t, ValidRoomCode("ABC-12"))
	assert.False(t, ValidRoomCode("ABC 12"))
}
