package models

import (
	"time"

	"bingo-rooms/game"
)

const (
	ConnectionConnected    = "connected"
	ConnectionDisconnected = "disconnected"
)

// Player is one participant in a room. SessionID is a stable per-browser
// identifier, so re-joining with the same session returns this record
// instead of creating a duplicate.
type Player struct {
	ID         string        `gorm:"primaryKey;size:36" json:"id"`
	RoomID     string        `gorm:"size:36;index;not null" json:"room_id"`
	SessionID  string        `gorm:"size:64;not null" json:"session_id"`
	Name       string        `gorm:"not null" json:"name"`
	Status     string        `gorm:"size:16;default:connected;not null" json:"status"`
	HasWon     *time.Time    `json:"has_won"`
	WinPattern *game.Pattern `gorm:"size:16" json:"win_pattern"`
	JoinedAt   time.Time     `gorm:"autoCreateTime" json:"joined_at"`
}
