package controllers

import (
	"net/http"

	"bingo-rooms/game"
	"bingo-rooms/services"

	"github.com/gin-gonic/gin"
)

// Service is the shared orchestrator, set once at startup via Init.
var Service *services.RoomService

// Init wires the controllers to the room service.
func Init(svc *services.RoomService) {
	Service = svc
}

// CreateRoom creates a new bingo room.
// POST /api/rooms {"name": "...", "organizer_id": "..."}
func CreateRoom(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		OrganizerID string `json:"organizer_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := Service.CreateRoom(c.Request.Context(), req.Name, req.OrganizerID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// GetRoom fetches a room by id.
// GET /api/rooms/:id
func GetRoom(c *gin.Context) {
	room, err := Service.RoomByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetRoomByCode fetches a room by its shareable code, case-insensitive.
// GET /api/rooms/code/:code
func GetRoomByCode(c *gin.Context) {
	room, err := Service.RoomByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// UpdateRoomStatus moves a room forward in its lifecycle.
// PATCH /api/rooms/:id/status {"status": "drawing"}
func UpdateRoomStatus(c *gin.Context) {
	var req struct {
		Status game.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := Service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DrawNumber records a drawn number. With no number in the body the
// server draws a random undrawn one.
// POST /api/rooms/:id/draw {"number": 42} or {}
func DrawNumber(c *gin.Context) {
	var req struct {
		Number int `json:"number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	roomID := c.Param("id")

	if req.Number == 0 {
		room, n, err := Service.DrawRandom(ctx, roomID)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": room, "number": n})
		return
	}

	room, err := Service.DrawNumber(ctx, roomID, req.Number)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room, "number": req.Number})
}
