// Package config holds runtime configuration loaded from the environment.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// NotifyTimeout is the limit for a single notification delivery
var NotifyTimeout = 10 * time.Second

// HomePageLimit is the number of items per home page section
var HomePageLimit = 5

// NewsPageSize is the number of items requested from the news API
var NewsPageSize = 20

// Config is the application configuration
type Config struct {
	Addr          string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	TelegramToken string
	JWTSecret     string
	MediaDir      string
	MediaBaseURL  string
	NewsAPIKey    string
	NewsFeeds     []string
}

// Load reads the config from .env and the environment
func Load() *Config {
	_ = godotenv.Load()
	cfg := &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "rockrev"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		JWTSecret:     getEnv("JWT_SECRET", "insecure-dev-secret"),
		MediaDir:      getEnv("MEDIA_DIR", "var/media"),
		MediaBaseURL:  getEnv("MEDIA_BASE_URL", "/media"),
		NewsAPIKey:    os.Getenv("NEWS_API_KEY"),
	}
	if feeds := os.Getenv("NEWS_FEEDS"); feeds != "" {
		cfg.NewsFeeds = strings.Split(feeds, ",")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
