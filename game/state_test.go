package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusWaiting, StatusDrawing, true},
		{StatusDrawing, StatusFinished, true},
		{StatusWaiting, StatusFinished, true},

		{StatusDrawing, StatusWaiting, false},
		{StatusFinished, StatusDrawing, false},
		{StatusFinished, StatusWaiting, false},
		{StatusWaiting, StatusWaiting, false},
		{StatusDrawing, StatusDrawing, false},
		{StatusFinished, StatusFinished, false},

		{Status("paused"), StatusDrawing, false},
		{StatusWaiting, Status("paused"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusWaiting.Valid())
	assert.True(t, StatusDrawing.Valid())
	assert.True(t, StatusFinished.Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("paused").Valid())
}
