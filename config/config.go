package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	GinMode     string
	JWTSecret   string
	SessionTTL  time.Duration
	SweepPeriod time.Duration
	// CatalogDSN points the seeder at an external MySQL catalog source.
	// Empty means the built-in seed rows.
	CatalogDSN      string
	RateLimit       int
	RateLimitWindow int
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		JWTSecret:       getEnv("JWT_SECRET", "LaCucharaSessionSecret"),
		SessionTTL:      time.Duration(getEnvInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		SweepPeriod:     time.Duration(getEnvInt("SESSION_SWEEP_SECONDS", 60)) * time.Second,
		CatalogDSN:      os.Getenv("CATALOG_DSN"),
		RateLimit:       getEnvInt("RATE_LIMIT", 50),
		RateLimitWindow: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 1),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
