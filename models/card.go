package models

import (
	"time"

	"gorm.io/datatypes"
)

// Card is a player's 5x5 grid, stored row-major as a JSON array of 25
// numbers with the free center cell encoded as 0. Created once at join
// time; only MarkedNumbers mutates afterwards.
type Card struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	PlayerID      string         `gorm:"size:36;uniqueIndex;not null" json:"player_id"`
	Numbers       datatypes.JSON `json:"numbers"`
	MarkedNumbers datatypes.JSON `json:"marked_numbers"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Grid decodes the 25 card numbers, order preserved.
func (c *Card) Grid() ([]int, error) {
	return DecodeInts(c.Numbers)
}

// Marked decodes the marked-number set.
func (c *Card) Marked() ([]int, error) {
	return DecodeInts(c.MarkedNumbers)
}

// SetMarked encodes the marked-number set back into the JSON column.
func (c *Card) SetMarked(nums []int) error {
	encoded, err := EncodeInts(nums)
	if err != nil {
		return err
	}
	c.MarkedNumbers = encoded
	return nil
}
