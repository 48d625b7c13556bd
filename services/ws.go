package services

import (
	"net/http"

	"bingo-rooms/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades GET /ws/rooms/:id?player=<playerID> into a push
// channel for that room. The player must already have joined via the REST
// API; their card id is resolved here so socket actions can mark it.
func HandleWebSocket(hub *Hub, presence *Presence) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("id")
		playerID := c.Query("player")
		if playerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing player query param"})
			return
		}

		ctx := c.Request.Context()
		player, err := hub.svc.store.PlayerByID(ctx, playerID)
		if err != nil || player.RoomID != roomID {
			c.JSON(http.StatusNotFound, gin.H{"error": "player not found in room"})
			return
		}
		card, err := hub.svc.CardForPlayer(ctx, playerID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Errorf("ws upgrade for player %s: %v", playerID, err)
			return
		}

		client := &Client{
			playerID: playerID,
			cardID:   card.ID,
			roomID:   roomID,
			conn:     conn,
			hub:      hub,
			presence: presence,
			send:     make(chan []byte, 32),
		}

		presence.Connected(ctx, playerID)
		hub.addClient(client)
	}
}
