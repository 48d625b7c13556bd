package game

// Pattern identifies the shape of marked cells that won the game.
type Pattern string

const (
	PatternNone     Pattern = ""
	PatternLine     Pattern = "line"
	PatternColumn   Pattern = "column"
	PatternDiagonal Pattern = "diagonal"
	PatternFull     Pattern = "full"
)

// CheckWin reports the winning pattern for a card given the numbers the
// player has marked. The free cell (value 0) always counts as marked.
//
// Priority order matters: a fully marked card is reported as "full" even
// though it also contains winning rows and columns. After full, rows are
// checked before columns, then the two diagonals.
func CheckWin(card []int, marked []int) Pattern {
	set := make(map[int]bool, len(marked))
	for _, n := range marked {
		set[n] = true
	}
	isMarked := func(n int) bool {
		return n == 0 || set[n]
	}

	full := true
	for _, n := range card {
		if !isMarked(n) {
			full = false
			break
		}
	}
	if full {
		return PatternFull
	}

	for row := 0; row < 5; row++ {
		won := true
		for col := 0; col < 5; col++ {
			if !isMarked(card[row*5+col]) {
				won = false
				break
			}
		}
		if won {
			return PatternLine
		}
	}

	for col := 0; col < 5; col++ {
		won := true
		for row := 0; row < 5; row++ {
			if !isMarked(card[row*5+col]) {
				won = false
				break
			}
		}
		if won {
			return PatternColumn
		}
	}

	// Main diagonal, then anti-diagonal.
	won := true
	for i := 0; i < 5; i++ {
		if !isMarked(card[i*5+i]) {
			won = false
			break
		}
	}
	if won {
		return PatternDiagonal
	}

	won = true
	for i := 0; i < 5; i++ {
		if !isMarked(card[i*5+(4-i)]) {
			won = false
			break
		}
	}
	if won {
		return PatternDiagonal
	}

	return PatternNone
}

// Valid reports whether p is one of the four winning patterns.
func (p Pattern) Valid() bool {
	switch p {
	case PatternLine, PatternColumn, PatternDiagonal, PatternFull:
		return true
	}
	return false
}
