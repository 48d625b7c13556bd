package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"bingo-rooms/game"
	"bingo-rooms/models"
	"bingo-rooms/utils/logger"

	"github.com/google/uuid"
)

const codeRetries = 5

// Notifier is told after every successful room mutation so connected
// clients can be pushed the new state. It must not block.
type Notifier interface {
	RoomChanged(roomID string)
}

// RoomService implements the game rules on top of a Store: who may join
// and when, how numbers are drawn and marked, and when a win is recorded.
type RoomService struct {
	store    Store
	notifier Notifier

	// rng feeds card generation, room codes and random draws. math/rand
	// sources are not safe for concurrent use, hence the mutex.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRoomService wires the service to its store. rng may be seeded for
// deterministic tests; pass rand.New(rand.NewSource(time.Now().UnixNano()))
// in production.
func NewRoomService(store Store, rng *rand.Rand) *RoomService {
	return &RoomService{store: store, rng: rng}
}

// SetNotifier attaches the push channel. Optional.
func (s *RoomService) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *RoomService) notify(roomID string) {
	if s.notifier != nil {
		s.notifier.RoomChanged(roomID)
	}
}

// CreateRoom creates a room in the waiting state with a fresh shareable
// code, retrying a few times if the generated code is already taken.
func (s *RoomService) CreateRoom(ctx context.Context, name, organizerID string) (*models.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if organizerID == "" {
		organizerID = uuid.NewString()
	}

	for attempt := 0; attempt < codeRetries; attempt++ {
		s.rngMu.Lock()
		code := game.NewRoomCode(s.rng)
		s.rngMu.Unlock()

		if _, err := s.store.RoomByCode(ctx, code); err == nil {
			logger.Infof("room code %s collided, retrying", code)
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return nil, ErrStorageUnavailable
		}

		room := &models.Room{
			ID:          uuid.NewString(),
			Code:        code,
			Name:        name,
			Status:      game.StatusWaiting,
			OrganizerID: organizerID,
		}
		if err := room.SetDrawn(nil); err != nil {
			return nil, err
		}
		if err := s.store.CreateRoom(ctx, room); err != nil {
			return nil, ErrStorageUnavailable
		}
		logger.Infof("room %s created with code %s", room.ID, room.Code)
		return room, nil
	}
	return nil, ErrStorageUnavailable
}

// RoomByCode looks a room up by its shareable code. Lookup is
// case-insensitive: codes are normalized to uppercase first.
func (s *RoomService) RoomByCode(ctx context.Context, code string) (*models.Room, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !game.ValidRoomCode(code) {
		return nil, ErrInvalidCode
	}
	room, err := s.store.RoomByCode(ctx, code)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	return room, err
}

// RoomByID looks a room up by id.
func (s *RoomService) RoomByID(ctx context.Context, roomID string) (*models.Room, error) {
	room, err := s.store.RoomByID(ctx, roomID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	return room, err
}

// Players lists the players of a room in join order.
func (s *RoomService) Players(ctx context.Context, roomID string) ([]models.Player, error) {
	if _, err := s.RoomByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.store.PlayersByRoom(ctx, roomID)
}

// Join adds a player to a waiting room and deals them a card. Joining
// again with the same sessionID returns the existing player and card
// unchanged, regardless of room status, so a page reload never creates a
// duplicate.
func (s *RoomService) Join(ctx context.Context, roomID, name, sessionID string) (*models.Player, *models.Card, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, ErrEmptyName
	}
	if sessionID == "" {
		return nil, nil, ErrMissingSession
	}

	room, err := s.RoomByID(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}

	players, err := s.store.PlayersByRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	for i := range players {
		if players[i].SessionID == sessionID {
			existing := &players[i]
			card, err := s.CardForPlayer(ctx, existing.ID)
			if err != nil {
				return nil, nil, err
			}
			return existing, card, nil
		}
	}

	if room.Status != game.StatusWaiting {
		return nil, nil, ErrGameStarted
	}

	player := &models.Player{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		SessionID: sessionID,
		Name:      name,
		Status:    models.ConnectionConnected,
		JoinedAt:  time.Now(),
	}

	s.rngMu.Lock()
	numbers := game.GenerateCard(s.rng)
	s.rngMu.Unlock()

	encoded, err := models.EncodeInts(numbers)
	if err != nil {
		return nil, nil, err
	}
	card := &models.Card{
		ID:       uuid.NewString(),
		PlayerID: player.ID,
		Numbers:  encoded,
	}
	if err := card.SetMarked(nil); err != nil {
		return nil, nil, err
	}

	if err := s.store.CreatePlayerWithCard(ctx, player, card); err != nil {
		return nil, nil, ErrStorageUnavailable
	}

	logger.Infof("player %s joined room %s", player.ID, roomID)
	s.notify(roomID)
	return player, card, nil
}

// SetStatus moves a room forward through its lifecycle. Backward or
// repeated transitions are rejected with a conflict.
func (s *RoomService) SetStatus(ctx context.Context, roomID string, status game.Status) (*models.Room, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	room, err := s.RoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !game.CanTransition(room.Status, status) {
		return nil, ErrInvalidTransition
	}

	// Column-scoped write: a full-row save from the room read above
	// could erase numbers drawn in between.
	updated, err := s.store.UpdateRoomStatus(ctx, roomID, status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, ErrStorageUnavailable
	}
	logger.Infof("room %s is now %s", roomID, status)
	s.notify(roomID)
	return updated, nil
}

// DrawNumber records a drawn number. Drawing a number that is already in
// the sequence is a no-op returning the current room. Only legal while
// the room is drawing.
func (s *RoomService) DrawNumber(ctx context.Context, roomID string, n int) (*models.Room, error) {
	if !game.ValidNumber(n) {
		return nil, ErrInvalidNumber
	}
	if err := s.requireDrawing(ctx, roomID); err != nil {
		return nil, err
	}

	room, err := s.store.UpdateRoomDrawn(ctx, roomID, func(drawn []int) ([]int, error) {
		if game.Contains(drawn, n) {
			return drawn, nil
		}
		return append(drawn, n), nil
	})
	if err != nil {
		return nil, s.drawError(err)
	}
	s.notify(roomID)
	return room, nil
}

// DrawRandom draws a uniformly random number from the ones not yet drawn.
// Fails with ErrNumbersExhausted once all 75 are out.
func (s *RoomService) DrawRandom(ctx context.Context, roomID string) (*models.Room, int, error) {
	if err := s.requireDrawing(ctx, roomID); err != nil {
		return nil, 0, err
	}

	var picked int
	room, err := s.store.UpdateRoomDrawn(ctx, roomID, func(drawn []int) ([]int, error) {
		s.rngMu.Lock()
		n, ok := game.PickNumber(s.rng, drawn)
		s.rngMu.Unlock()
		if !ok {
			return nil, ErrNumbersExhausted
		}
		picked = n
		return append(drawn, n), nil
	})
	if err != nil {
		return nil, 0, s.drawError(err)
	}
	logger.Infof("room %s drew %d", roomID, picked)
	s.notify(roomID)
	return room, picked, nil
}

func (s *RoomService) requireDrawing(ctx context.Context, roomID string) error {
	room, err := s.RoomByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room.Status != game.StatusDrawing {
		return ErrRoomNotDrawing
	}
	return nil
}

func (s *RoomService) drawError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return ErrRoomNotFound
	case errors.Is(err, ErrNumbersExhausted):
		return err
	default:
		return ErrStorageUnavailable
	}
}

// MarkNumber flags a number on a card. Set semantics: marking twice is a
// no-op. A number may only be marked after it has been drawn in the
// card's room.
func (s *RoomService) MarkNumber(ctx context.Context, cardID string, n int) (*models.Card, error) {
	if !game.ValidNumber(n) {
		return nil, ErrInvalidNumber
	}

	card, err := s.store.CardByID(ctx, cardID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrCardNotFound
	} else if err != nil {
		return nil, err
	}

	player, err := s.store.PlayerByID(ctx, card.PlayerID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrPlayerNotFound
	} else if err != nil {
		return nil, err
	}

	room, err := s.RoomByID(ctx, player.RoomID)
	if err != nil {
		return nil, err
	}
	drawn, err := room.Drawn()
	if err != nil {
		return nil, err
	}
	if !game.Contains(drawn, n) {
		return nil, ErrNumberNotDrawn
	}

	updated, err := s.store.UpdateCardMarked(ctx, cardID, func(marked []int) ([]int, error) {
		if game.Contains(marked, n) {
			return marked, nil
		}
		return append(marked, n), nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, ErrStorageUnavailable
	}
	return updated, nil
}

// CardForPlayer returns the card dealt to a player at join time.
func (s *RoomService) CardForPlayer(ctx context.Context, playerID string) (*models.Card, error) {
	card, err := s.store.CardByPlayer(ctx, playerID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrCardNotFound
	}
	return card, err
}

// WinStatus is the result of evaluating a player's card.
type WinStatus struct {
	Pattern game.Pattern `json:"pattern"`
	HasWon  bool         `json:"has_won"`
}

// CheckWin re-evaluates a player's card against their marked numbers. It
// never caches: the evaluator runs fresh on every call.
func (s *RoomService) CheckWin(ctx context.Context, playerID string) (*WinStatus, error) {
	player, err := s.store.PlayerByID(ctx, playerID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrPlayerNotFound
	} else if err != nil {
		return nil, err
	}

	card, err := s.CardForPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	numbers, err := card.Grid()
	if err != nil {
		return nil, err
	}
	marked, err := card.Marked()
	if err != nil {
		return nil, err
	}

	return &WinStatus{
		Pattern: game.CheckWin(numbers, marked),
		HasWon:  player.HasWon != nil,
	}, nil
}

// DeclareWin records a player's win. The pattern is recomputed on the
// server rather than accepted from the client; declaring again after a
// recorded win returns the stored player unchanged.
func (s *RoomService) DeclareWin(ctx context.Context, playerID string) (*models.Player, error) {
	player, err := s.store.PlayerByID(ctx, playerID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrPlayerNotFound
	} else if err != nil {
		return nil, err
	}
	if player.HasWon != nil {
		return player, nil
	}

	status, err := s.CheckWin(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if status.Pattern == game.PatternNone {
		return nil, ErrNoWinningPattern
	}

	// The store guards the write so an already-recorded win is returned
	// unchanged instead of being overwritten.
	won, err := s.store.RecordPlayerWin(ctx, playerID, time.Now(), status.Pattern)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, ErrStorageUnavailable
	}

	logger.Infof("player %s won room %s with %s", playerID, won.RoomID, status.Pattern)
	s.notify(won.RoomID)
	return won, nil
}

// SetPlayerConnection flips a player between connected and disconnected.
// Used by the websocket layer on attach and detach. The write touches
// only the status column, so a disconnect racing a win declaration can
// never write the win back to nil.
func (s *RoomService) SetPlayerConnection(ctx context.Context, playerID, status string) error {
	if status != models.ConnectionConnected && status != models.ConnectionDisconnected {
		return ErrInvalidStatus
	}
	player, err := s.store.UpdatePlayerConnection(ctx, playerID, status)
	if errors.Is(err, ErrNotFound) {
		return ErrPlayerNotFound
	} else if err != nil {
		return ErrStorageUnavailable
	}
	s.notify(player.RoomID)
	return nil
}
