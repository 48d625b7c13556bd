package game

import "math/rand"

const (
	// GridSize is the number of cells on a card.
	GridSize = 25
	// FreeIndex is the center cell (row 2, col 2) in row-major order.
	FreeIndex = 12
	// MaxNumber is the highest drawable bingo number.
	MaxNumber = 75

	columns    = 5
	columnSpan = 15
)

// GenerateCard builds a 5x5 bingo card in row-major order. Each column
// holds 5 distinct numbers from its own range (B 1-15, I 16-30, N 31-45,
// G 46-60, O 61-75) and the center cell is the free space, value 0.
//
// Randomness comes from the caller so tests can pass a seeded source.
func GenerateCard(rng *rand.Rand) []int {
	card := make([]int, GridSize)

	for col := 0; col < columns; col++ {
		low := col*columnSpan + 1
		available := make([]int, columnSpan)
		for i := range available {
			available[i] = low + i
		}

		// Sample 5 values without replacement.
		for row := 0; row < columns; row++ {
			idx := rng.Intn(len(available))
			card[row*columns+col] = available[idx]
			available = append(available[:idx], available[idx+1:]...)
		}
	}

	card[FreeIndex] = 0
	return card
}

// ColumnRange returns the inclusive value range for a column (0-4).
func ColumnRange(col int) (low, high int) {
	low = col*columnSpan + 1
	return low, low + columnSpan - 1
}
