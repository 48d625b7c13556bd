package services

import (
	"context"
	"errors"
	"time"

	"bingo-rooms/game"
	"bingo-rooms/models"
)

// ErrNotFound is returned by a Store when a lookup misses. The service
// layer maps it to the resource-specific error.
var ErrNotFound = errors.New("record not found")

// Store is the persistence boundary the game service runs on. The
// read-modify-write helpers are the only operations with an atomicity
// requirement: UpdateRoomDrawn must be serialized per room so concurrent
// draws cannot duplicate or drop entries, and UpdateCardMarked must be
// atomic per card. Mutate callbacks returning an error abort without
// writing.
//
// All other mutations are column-scoped on purpose: writing a whole row
// back from a stale read could erase a draw or a recorded win committed
// in between.
type Store interface {
	CreateRoom(ctx context.Context, room *models.Room) error
	RoomByID(ctx context.Context, id string) (*models.Room, error)
	RoomByCode(ctx context.Context, code string) (*models.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID string, status game.Status) (*models.Room, error)
	UpdateRoomDrawn(ctx context.Context, roomID string, mutate func(drawn []int) ([]int, error)) (*models.Room, error)

	// CreatePlayerWithCard persists both records or neither.
	CreatePlayerWithCard(ctx context.Context, player *models.Player, card *models.Card) error
	PlayerByID(ctx context.Context, id string) (*models.Player, error)
	PlayersByRoom(ctx context.Context, roomID string) ([]models.Player, error)
	UpdatePlayerConnection(ctx context.Context, playerID, status string) (*models.Player, error)
	// RecordPlayerWin sets has_won and win_pattern once. A player whose
	// win is already recorded is returned unchanged.
	RecordPlayerWin(ctx context.Context, playerID string, wonAt time.Time, pattern game.Pattern) (*models.Player, error)

	CardByID(ctx context.Context, id string) (*models.Card, error)
	CardByPlayer(ctx context.Context, playerID string) (*models.Card, error)
	UpdateCardMarked(ctx context.Context, cardID string, mutate func(marked []int) ([]int, error)) (*models.Card, error)
}
