package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Client configuration
	APIBaseURL  string
	DataDir     string
	HTTPTimeout time.Duration

	// Mock API server configuration
	Port           string
	JWTSecret      string
	AllowedOrigins []string

	// Development mode
	Development bool
}

func Load() *Config {
	return &Config{
		// Client configuration
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080/api"),
		DataDir:     getEnv("DATA_DIR", defaultDataDir()),
		HTTPTimeout: getDurationEnv("HTTP_TIMEOUT", 15*time.Second),

		// Mock API server configuration
		Port:           getEnv("PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		AllowedOrigins: getSliceEnv("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),

		// Development mode
		Development: getBoolEnv("DEVELOPMENT", true),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront"
	}
	return filepath.Join(home, ".storefront")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
