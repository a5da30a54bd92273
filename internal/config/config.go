package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application settings, read from the environment with an
// optional .env file on top.
type Config struct {
	DBPath   string
	LogLevel string
}

// Load reads configuration from a .env file (if one exists) and the
// environment. Missing values fall back to defaults.
func Load() *Config {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:   os.Getenv("PILLBOX_DB_PATH"),
		LogLevel: os.Getenv("PILLBOX_LOG_LEVEL"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "pillbox.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg
}
