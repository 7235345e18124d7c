package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// DefaultChannelID is the channel the dashboard reports on (MrBeast).
const DefaultChannelID = "UCX6OQ3DkcsbYNE6H8uQQuVA"

type Config struct {
	Port        string
	APIKey      string
	ChannelID   string
	RedisURL    string
	CacheTTL    time.Duration
	LogLevel    string
	Environment string
	CORSOrigins string
}

// ErrMissingAPIKey is the fatal startup condition: without the provider
// credential no report can be served.
var ErrMissingAPIKey = errors.New("YOUTUBE_API_KEY environment variable is not set")

func Load() (*Config, error) {
	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		APIKey:      apiKey,
		ChannelID:   getEnv("CHANNEL_ID", DefaultChannelID),
		RedisURL:    os.Getenv("REDIS_URL"),
		CacheTTL:    getEnvSeconds("CACHE_TTL_SECONDS", time.Hour),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
