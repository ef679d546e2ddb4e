// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables,
// with defaults suited to local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Addr    string
	GinMode string

	// DatabaseURL selects the PostgreSQL store; empty falls back to the
	// in-memory store.
	DatabaseURL string

	CORSAllowedOrigins []string
}

// Load reads configuration from the environment, honoring a local .env file
// when present.
func Load() Config {
	_ = godotenv.Load()

	environment := env("ENV", "development")
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = "release"
		if environment == "development" {
			ginMode = "debug"
		}
	}

	cfg := Config{
		AppName:     "hydration",
		Env:         environment,
		Addr:        env("ADDR", ":8080"),
		GinMode:     ginMode,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}
	return cfg
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
