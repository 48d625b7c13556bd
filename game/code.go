package game

import "math/rand"

const (
	// CodeLength is the length of a shareable room code.
	CodeLength = 6

	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewRoomCode generates a 6-character room code from [A-Z0-9]. Uniqueness
// is the caller's problem; collisions are handled by retrying against the
// store's unique index.
func NewRoomCode(rng *rand.Rand) string {
	code := make([]byte, CodeLength)
	for i := range code {
		code[i] = codeAlphabet[rng.Intn(len(codeAlphabet))]
	}
	return string(code)
}

// ValidRoomCode reports whether code is exactly 6 characters from [A-Z0-9].
func ValidRoomCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
