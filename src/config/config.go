package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default values used when the matching environment variable is unset.
const (
	DefaultPublicURL  = "http://127.0.0.1:8000"
	DefaultMediaRoot  = "media"
	DefaultGeoDataDir = "static/data"
	DefaultServerHost = ":8080"
	FlagCDNURL        = "https://flagcdn.com/h240"
)

// Config holds application configuration
type Config struct {
	DatabaseDSN    string
	PublicURL      string
	MediaRoot      string
	GeoDataDir     string
	FlagCDNURL     string
	CatalogFile    string
	ServerHost     string
	JWTSecret      string
	AllowedOrigins []string
	LogLevel       string
	HTTPTimeout    time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if it exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		DatabaseDSN:    os.Getenv("DB_DSN"),
		PublicURL:      getEnv("PUBLIC_URL", DefaultPublicURL),
		MediaRoot:      getEnv("MEDIA_ROOT", DefaultMediaRoot),
		GeoDataDir:     getEnv("GEO_DATA_DIR", DefaultGeoDataDir),
		FlagCDNURL:     FlagCDNURL,
		CatalogFile:    os.Getenv("CATALOG_FILE"),
		ServerHost:     getEnv("SERVER_HOST", DefaultServerHost),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: splitList(os.Getenv("CORS_ORIGINS")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPTimeout:    timeout,
	}
	return cfg, nil
}

// FlagsDir is where downloaded country flags are stored.
func (c *Config) FlagsDir() string {
	return strings.TrimRight(c.MediaRoot, "/") + "/flags"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
