package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port           string
	DatabaseURL    string
	DatabaseDriver string // postgres (default) or mysql
	RedisURL       string // optional, enables presence TTL keys
	AllowOrigin    string
}

// Load reads .env (if present) and the process environment. DATABASE_URL
// is the only required variable.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	cfg := Config{
		Port:           getenv("PORT", "4000"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseDriver: getenv("DATABASE_DRIVER", "postgres"),
		RedisURL:       os.Getenv("REDIS_URL"),
		AllowOrigin:    getenv("ALLOW_ORIGIN", "http://localhost:3000"),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("[FATAL] DATABASE_URL is required in .env or environment")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
