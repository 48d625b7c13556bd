package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"bingo-rooms/utils/logger"

	"github.com/gorilla/websocket"
)

const actionTimeout = 5 * time.Second

// Client is one websocket connection of a player watching a room.
type Client struct {
	playerID string
	cardID   string
	roomID   string
	conn     *websocket.Conn
	hub      *Hub
	presence *Presence
	send     chan []byte

	// mu guards closed and the send channel: the hub may be pushing a
	// snapshot while the read pump tears the client down, and a send on
	// the closed channel would panic.
	mu     sync.Mutex
	closed bool
}

func (c *Client) Close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
	}
}

// trySend queues a message without ever blocking or panicking: closed
// clients and full buffers drop the message, the next snapshot catches
// the client up.
func (c *Client) trySend(msg []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
		logger.Debugf("dropping message to player %s", c.playerID)
	}
}

// clientMessage is what players may send upstream. Marking and declaring
// bingo also exist as REST endpoints; the socket path just saves a
// round-trip for connected players.
type clientMessage struct {
	Action string `json:"action"`
	Number int    `json:"number"`
}

func (c *Client) readPump() {
	defer func() {
		c.hub.removeClient(c)
		c.presence.Disconnected(context.Background(), c.playerID)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("player %s disconnected", c.playerID)
			} else {
				logger.Debugf("player %s read error: %v", c.playerID, err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Debugf("player %s sent invalid message: %v", c.playerID, err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		switch msg.Action {
		case "mark":
			if _, err := c.hub.svc.MarkNumber(ctx, c.cardID, msg.Number); err != nil {
				c.notifyError(err)
			}
		case "bingo":
			if _, err := c.hub.svc.DeclareWin(ctx, c.playerID); err != nil {
				c.notifyError(err)
			}
		case "heartbeat":
			c.presence.Heartbeat(ctx, c.playerID)
		default:
			logger.Debugf("player %s sent unknown action %q", c.playerID, msg.Action)
		}
		cancel()
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debugf("player %s write error: %v", c.playerID, err)
			return
		}
	}
}

func (c *Client) notifyError(err error) {
	payload, _ := json.Marshal(map[string]string{
		"type":  "error",
		"error": err.Error(),
	})
	c.trySend(payload)
}
