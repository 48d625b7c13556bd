package services

import (
	"context"
	"errors"
	"time"

	"bingo-rooms/game"
	"bingo-rooms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists rooms, players and cards through gorm. It works on
// both the postgres and mysql drivers; the draw read-modify-write takes a
// row lock so concurrent draws in the same room serialize.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateRoom(ctx context.Context, room *models.Room) error {
	return s.db.WithContext(ctx).Create(room).Error
}

func (s *GormStore) RoomByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &room, nil
}

func (s *GormStore) RoomByCode(ctx context.Context, code string) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, "code = ?", code).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &room, nil
}

// UpdateRoomStatus writes only the status column. A full-row save here
// could write a stale drawn_numbers read back over a concurrent draw.
func (s *GormStore) UpdateRoomStatus(ctx context.Context, roomID string, status game.Status) (*models.Room, error) {
	if err := s.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ?", roomID).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return s.RoomByID(ctx, roomID)
}

func (s *GormStore) UpdateRoomDrawn(ctx context.Context, roomID string, mutate func(drawn []int) ([]int, error)) (*models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, "id = ?", roomID).Error; err != nil {
			return mapGormError(err)
		}

		drawn, err := room.Drawn()
		if err != nil {
			return err
		}
		updated, err := mutate(drawn)
		if err != nil {
			return err
		}
		if err := room.SetDrawn(updated); err != nil {
			return err
		}
		return tx.Model(&room).Update("drawn_numbers", room.DrawnNumbers).Error
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *GormStore) CreatePlayerWithCard(ctx context.Context, player *models.Player, card *models.Card) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(player).Error; err != nil {
			return err
		}
		return tx.Create(card).Error
	})
}

func (s *GormStore) PlayerByID(ctx context.Context, id string) (*models.Player, error) {
	var player models.Player
	if err := s.db.WithContext(ctx).First(&player, "id = ?", id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &player, nil
}

func (s *GormStore) PlayersByRoom(ctx context.Context, roomID string) ([]models.Player, error) {
	var players []models.Player
	if err := s.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("joined_at").
		Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// UpdatePlayerConnection writes only the status column so the websocket
// detach path can never clobber a win recorded since its read.
func (s *GormStore) UpdatePlayerConnection(ctx context.Context, playerID, status string) (*models.Player, error) {
	if err := s.db.WithContext(ctx).Model(&models.Player{}).
		Where("id = ?", playerID).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return s.PlayerByID(ctx, playerID)
}

// RecordPlayerWin sets has_won and win_pattern, guarded so a win that is
// already on record is never overwritten.
func (s *GormStore) RecordPlayerWin(ctx context.Context, playerID string, wonAt time.Time, pattern game.Pattern) (*models.Player, error) {
	if err := s.db.WithContext(ctx).Model(&models.Player{}).
		Where("id = ? AND has_won IS NULL", playerID).
		Updates(map[string]interface{}{
			"has_won":     wonAt,
			"win_pattern": pattern,
		}).Error; err != nil {
		return nil, err
	}
	return s.PlayerByID(ctx, playerID)
}

func (s *GormStore) CardByID(ctx context.Context, id string) (*models.Card, error) {
	var card models.Card
	if err := s.db.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &card, nil
}

func (s *GormStore) CardByPlayer(ctx context.Context, playerID string) (*models.Card, error) {
	var card models.Card
	if err := s.db.WithContext(ctx).First(&card, "player_id = ?", playerID).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &card, nil
}

func (s *GormStore) UpdateCardMarked(ctx context.Context, cardID string, mutate func(marked []int) ([]int, error)) (*models.Card, error) {
	var card models.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&card, "id = ?", cardID).Error; err != nil {
			return mapGormError(err)
		}

		marked, err := card.Marked()
		if err != nil {
			return err
		}
		updated, err := mutate(marked)
		if err != nil {
			return err
		}
		if err := card.SetMarked(updated); err != nil {
			return err
		}
		return tx.Model(&card).Update("marked_numbers", card.MarkedNumbers).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func mapGormError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
