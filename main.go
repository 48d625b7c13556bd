package main

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"bingo-rooms/config"
	"bingo-rooms/controllers"
	"bingo-rooms/routes"
	"bingo-rooms/services"
	"bingo-rooms/utils/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupRouter initializes Gin routes and middleware
func setupRouter(cfg config.Config, hub *services.Hub, presence *services.Presence) *gin.Engine {
	r := gin.Default()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket room endpoint
	r.GET("/ws/rooms/:id", services.HandleWebSocket(hub, presence))

	return r
}

func main() {
	defer logger.Sync()

	// Load env variables
	cfg := config.Load()

	// Connect to database and optional redis
	db := config.ConnectDB(cfg)
	rdb := config.ConnectRedis(cfg)

	// Wire store, service, hub and presence
	store := services.NewGormStore(db)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	svc := services.NewRoomService(store, rng)
	hub := services.NewHub(svc)
	presence := services.NewPresence(svc, rdb)
	controllers.Init(svc)

	router := setupRouter(cfg, hub, presence)

	log.Printf("Bingo rooms server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
