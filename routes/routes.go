package routes

import (
	"bingo-rooms/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ----------------------
	// Room routes
	// ----------------------
	api.POST("/rooms", controllers.CreateRoom)                   // Create room
	api.GET("/rooms/:id", controllers.GetRoom)                   // Get room by id
	api.GET("/rooms/code/:code", controllers.GetRoomByCode)      // Get room by join code
	api.PATCH("/rooms/:id/status", controllers.UpdateRoomStatus) // Advance room lifecycle
	api.POST("/rooms/:id/draw", controllers.DrawNumber)          // Draw a number
	api.POST("/rooms/:id/join", controllers.JoinRoom)            // Join as player
	api.GET("/rooms/:id/players", controllers.ListPlayers)       // List players

	// ----------------------
	// Player routes
	// ----------------------
	api.GET("/players/:id/card", controllers.GetCard)    // Get dealt card
	api.GET("/players/:id/win", controllers.CheckWin)    // Evaluate card
	api.POST("/players/:id/win", controllers.DeclareWin) // Record win

	// ----------------------
	// Card routes
	// ----------------------
	api.POST("/cards/:id/mark", controllers.MarkNumber) // Mark drawn number
}
