package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"bingo-rooms/models"
	"bingo-rooms/utils/logger"
)

const snapshotTimeout = 3 * time.Second

// Hub fans room state out to the websocket clients watching each room.
// Mutations go through the REST API (or client actions relayed to the
// service); the hub only pushes snapshots, so a slow client can never
// block a draw.
type Hub struct {
	svc *RoomService

	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub(svc *RoomService) *Hub {
	h := &Hub{
		svc:   svc,
		rooms: make(map[string]map[*Client]bool),
	}
	svc.SetNotifier(h)
	return h
}

func (h *Hub) addClient(c *Client) {
	h.mu.Lock()
	clients, ok := h.rooms[c.roomID]
	if !ok {
		clients = make(map[*Client]bool)
		h.rooms[c.roomID] = clients
	}
	clients[c] = true
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()

	h.RoomChanged(c.roomID)
}

func (h *Hub) removeClient(c *Client) {
	h.mu.Lock()
	if clients, ok := h.rooms[c.roomID]; ok {
		if clients[c] {
			delete(clients, c)
			c.Close()
		}
		if len(clients) == 0 {
			delete(h.rooms, c.roomID)
		}
	}
	h.mu.Unlock()
}

// roomSnapshot is the push payload: everything a polling client would
// otherwise fetch in three requests.
type roomSnapshot struct {
	Type    string          `json:"type"`
	Room    *models.Room    `json:"room"`
	Drawn   []int           `json:"drawn_numbers"`
	Players []models.Player `json:"players"`
}

// RoomChanged builds a fresh snapshot and sends it to every client in the
// room. Messages to clients with a full send buffer are dropped; the next
// snapshot catches them up.
func (h *Hub) RoomChanged(roomID string) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[roomID]))
	for c := range h.rooms[roomID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	if len(clients) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	room, err := h.svc.RoomByID(ctx, roomID)
	if err != nil {
		logger.Errorf("hub: snapshot room %s: %v", roomID, err)
		return
	}
	drawn, err := room.Drawn()
	if err != nil {
		logger.Errorf("hub: decode drawn for room %s: %v", roomID, err)
		return
	}
	players, err := h.svc.Players(ctx, roomID)
	if err != nil {
		logger.Errorf("hub: snapshot players for room %s: %v", roomID, err)
		return
	}

	b, err := json.Marshal(roomSnapshot{
		Type:    "room_state",
		Room:    room,
		Drawn:   drawn,
		Players: players,
	})
	if err != nil {
		logger.Errorf("hub: marshal snapshot for room %s: %v", roomID, err)
		return
	}

	for _, c := range clients {
		c.trySend(b)
	}
}
