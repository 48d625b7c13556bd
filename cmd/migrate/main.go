package main

import (
	"log"

	"bingo-rooms/config"
)

// Standalone migration runner for deployments that migrate separately
// from serving.
func main() {
	cfg := config.Load()

	db := config.ConnectDB(cfg)
	if err := config.Migrate(db); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}
	log.Println("Database migration completed")
}
