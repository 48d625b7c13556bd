package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JoinRoom adds a player to a room and deals their card. Re-joining with
// the same session id returns the existing pair.
// POST /api/rooms/:id/join {"name": "...", "session_id": "..."}
func JoinRoom(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, card, err := Service.Join(c.Request.Context(), c.Param("id"), req.Name, req.SessionID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": player, "card": card})
}

// ListPlayers returns the players of a room in join order.
// GET /api/rooms/:id/players
func ListPlayers(c *gin.Context) {
	players, err := Service.Players(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// CheckWin evaluates a player's card without recording anything.
// GET /api/players/:id/win
func CheckWin(c *gin.Context) {
	status, err := Service.CheckWin(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// DeclareWin records a player's win if their card actually has a winning
// pattern. Idempotent once recorded.
// POST /api/players/:id/win
func DeclareWin(c *gin.Context) {
	player, err := Service.DeclareWin(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}
