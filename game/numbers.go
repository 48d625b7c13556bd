package game

import "math/rand"

// AvailableNumbers returns the ascending set {1..75} minus the numbers
// already drawn. Out-of-range entries in drawn are ignored.
func AvailableNumbers(drawn []int) []int {
	taken := make(map[int]bool, len(drawn))
	for _, n := range drawn {
		taken[n] = true
	}

	available := make([]int, 0, MaxNumber-len(drawn))
	for n := 1; n <= MaxNumber; n++ {
		if !taken[n] {
			available = append(available, n)
		}
	}
	return available
}

// PickNumber picks a uniformly random undrawn number. ok is false when
// all 75 numbers have been drawn.
func PickNumber(rng *rand.Rand, drawn []int) (n int, ok bool) {
	available := AvailableNumbers(drawn)
	if len(available) == 0 {
		return 0, false
	}
	return available[rng.Intn(len(available))], true
}

// ValidNumber reports whether n is a drawable bingo number.
func ValidNumber(n int) bool {
	return n >= 1 && n <= MaxNumber
}

// Contains reports whether n is in the drawn sequence.
func Contains(drawn []int, n int) bool {
	for _, d := range drawn {
		if d == n {
			return true
		}
	}
	return false
}
