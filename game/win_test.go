package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sequentialCard is the 5x5 grid 1..25 in row-major order, no free cell.
func sequentialCard() []int {
	card := make([]int, 25)
	for i := range card {
		card[i] = i + 1
	}
	return card
}

func TestCheckWin(t *testing.T) {
	card := sequentialCard()

	tests := []struct {
		name   string
		marked []int
		want   Pattern
	}{
		{"first row", []int{1, 2, 3, 4, 5}, PatternLine},
		{"last row", []int{21, 22, 23, 24, 25}, PatternLine},
		{"first column", []int{1, 6, 11, 16, 21}, PatternColumn},
		{"main diagonal", []int{1, 7, 13, 19, 25}, PatternDiagonal},
		{"anti diagonal", []int{5, 9, 13, 17, 21}, PatternDiagonal},
		{"full card", sequentialCard(), PatternFull},
		{"four of a row", []int{1, 2, 3, 4}, PatternNone},
		{"scattered", []int{1, 8, 14, 22}, PatternNone},
		{"nothing marked", nil, PatternNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckWin(card, tt.marked))
		})
	}
}

func TestCheckWinFullBeatsLine(t *testing.T) {
	// A fully marked card also contains complete rows; full must win.
	card := sequentialCard()
	assert.Equal(t, PatternFull, CheckWin(card, card))
}

func TestCheckWinFreeCellCountsAsMarked(t *testing.T) {
	card := sequentialCard()
	card[FreeIndex] = 0

	// Middle row without the center: free cell completes the line.
	assert.Equal(t, PatternLine, CheckWin(card, []int{11, 12, 14, 15}))

	// Main diagonal through the free center.
	assert.Equal(t, PatternDiagonal, CheckWin(card, []int{1, 7, 19, 25}))

	// Full card with only the 24 non-zero values marked.
	marked := []int{}
	for _, n := range card {
		if n != 0 {
			marked = append(marked, n)
		}
	}
	assert.Equal(t, PatternFull, CheckWin(card, marked))
}

func TestCheckWinRowsBeforeColumns(t *testing.T) {
	// A marked set completing both a row and a column reports the row.
	card := sequentialCard()
	marked := []int{1, 2, 3, 4, 5, 6, 11, 16, 21}
	assert.Equal(t, PatternLine, CheckWin(card, marked))
}

func TestCheckWinIsPure(t *testing.T) {
	card := sequentialCard()
	marked := []int{1, 2, 3, 4, 5}
	first := CheckWin(card, marked)
	second := CheckWin(card, marked)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, marked, "input must not be mutated")
}

func TestPatternValid(t *testing.T) {
	assert.True(t, PatternLine.Valid())
	assert.True(t, PatternFull.Valid())
	assert.False(t, PatternNone.Valid())
	assert.False(t, Pattern("corners").Valid())
}
