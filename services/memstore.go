package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"bingo-rooms/game"
	"bingo-rooms/models"
)

// MemoryStore is an in-memory Store used by tests and for running the
// server without a database. A single mutex serializes everything, which
// trivially satisfies the per-room and per-card atomicity requirements.
type MemoryStore struct {
	mu      sync.Mutex
	rooms   map[string]*models.Room
	players map[string]*models.Player
	cards   map[string]*models.Card
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:   map[string]*models.Room{},
		players: map[string]*models.Player{},
		cards:   map[string]*models.Card{},
	}
}

func (m *MemoryStore) CreateRoom(_ context.Context, room *models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *room
	m.rooms[room.ID] = &cp
	return nil
}

func (m *MemoryStore) RoomByID(_ context.Context, id string) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *room
	return &cp, nil
}

func (m *MemoryStore) RoomByCode(_ context.Context, code string) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, room := range m.rooms {
		if room.Code == code {
			cp := *room
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UpdateRoomStatus(_ context.Context, roomID string, status game.Status) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *room
	cp.Status = status
	m.rooms[roomID] = &cp

	out := cp
	return &out, nil
}

func (m *MemoryStore) UpdateRoomDrawn(_ context.Context, roomID string, mutate func(drawn []int) ([]int, error)) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[roomID]
	if !ok {
		return nil, ErrNotFound
	}

	drawn, err := room.Drawn()
	if err != nil {
		return nil, err
	}
	updated, err := mutate(drawn)
	if err != nil {
		return nil, err
	}
	cp := *room
	if err := cp.SetDrawn(updated); err != nil {
		return nil, err
	}
	m.rooms[roomID] = &cp

	out := cp
	return &out, nil
}

func (m *MemoryStore) CreatePlayerWithCard(_ context.Context, player *models.Player, card *models.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	pc := *player
	cc := *card
	m.players[player.ID] = &pc
	m.cards[card.ID] = &cc
	return nil
}

func (m *MemoryStore) PlayerByID(_ context.Context, id string) (*models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	player, ok := m.players[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *player
	return &cp, nil
}

func (m *MemoryStore) PlayersByRoom(_ context.Context, roomID string) ([]models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var players []models.Player
	for _, p := range m.players {
		if p.RoomID == roomID {
			players = append(players, *p)
		}
	}
	// Join order, same as the database query.
	sort.Slice(players, func(i, j int) bool {
		return players[i].JoinedAt.Before(players[j].JoinedAt)
	})
	return players, nil
}

func (m *MemoryStore) UpdatePlayerConnection(_ context.Context, playerID, status string) (*models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	player, ok := m.players[playerID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *player
	cp.Status = status
	m.players[playerID] = &cp

	out := cp
	return &out, nil
}

func (m *MemoryStore) RecordPlayerWin(_ context.Context, playerID string, wonAt time.Time, pattern game.Pattern) (*models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	player, ok := m.players[playerID]
	if !ok {
		return nil, ErrNotFound
	}
	if player.HasWon != nil {
		cp := *player
		return &cp, nil
	}
	cp := *player
	t := wonAt
	p := pattern
	cp.HasWon = &t
	cp.WinPattern = &p
	m.players[playerID] = &cp

	out := cp
	return &out, nil
}

func (m *MemoryStore) CardByID(_ context.Context, id string) (*models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	card, ok := m.cards[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *card
	return &cp, nil
}

func (m *MemoryStore) CardByPlayer(_ context.Context, playerID string) (*models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, card := range m.cards {
		if card.PlayerID == playerID {
			cp := *card
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UpdateCardMarked(_ context.Context, cardID string, mutate func(marked []int) ([]int, error)) (*models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	card, ok := m.cards[cardID]
	if !ok {
		return nil, ErrNotFound
	}

	marked, err := card.Marked()
	if err != nil {
		return nil, err
	}
	updated, err := mutate(marked)
	if err != nil {
		return nil, err
	}
	cp := *card
	if err := cp.SetMarked(updated); err != nil {
		return nil, err
	}
	m.cards[cardID] = &cp

	out := cp
	return &out, nil
}
