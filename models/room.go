package models

import (
	"time"

	"bingo-rooms/game"

	"gorm.io/datatypes"
)

// Room is a single bingo game instance, joined through its shareable code.
type Room struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Code         string         `gorm:"size:6;uniqueIndex;not null" json:"code"`
	Name         string         `gorm:"not null" json:"name"`
	Status       game.Status    `gorm:"size:16;default:waiting;not null" json:"status"`
	OrganizerID  string         `gorm:"size:36;not null" json:"organizer_id"`
	DrawnNumbers datatypes.JSON `json:"drawn_numbers"` // ordered JSON array, draw order
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Drawn decodes the drawn-number sequence, draw order preserved.
func (r *Room) Drawn() ([]int, error) {
	return DecodeInts(r.DrawnNumbers)
}

// SetDrawn encodes the drawn-number sequence back into the JSON column.
func (r *Room) SetDrawn(nums []int) error {
	encoded, err := EncodeInts(nums)
	if err != nil {
		return err
	}
	r.DrawnNumbers = encoded
	return nil
}
