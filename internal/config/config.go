// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// GeocoderBaseURL is the Nominatim-compatible geocoding endpoint.
	GeocoderBaseURL string

	// WeatherBaseURL is the Open-Meteo-compatible forecast endpoint.
	WeatherBaseURL string

	// WeatherTTL is how long a cached forecast day counts as fresh.
	// Defaults to 3h. Set WEATHER_TTL to a Go duration string to override.
	WeatherTTL time.Duration

	// RedisAddr selects the Redis-backed weather cache store when set
	// (host:port). Empty means the in-memory store.
	RedisAddr string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		GeocoderBaseURL: getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		WeatherBaseURL:  getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
	}

	ttl, err := time.ParseDuration(getEnv("WEATHER_TTL", "3h"))
	if err != nil {
		return Config{}, fmt.Errorf("WEATHER_TTL must be a valid duration: %w", err)
	}
	cfg.WeatherTTL = ttl

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
