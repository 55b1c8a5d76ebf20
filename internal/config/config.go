package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config menampung seluruh setting client yang dibaca dari environment.
type Config struct {
	// APIBaseURL adalah alamat dasar REST API kepegawaian.
	APIBaseURL string
	// SessionFile adalah lokasi penyimpanan token (pengganti localStorage).
	SessionFile string
	// HTTPTimeout 0 berarti tanpa timeout (mengikuti default transport).
	HTTPTimeout time.Duration
}

const defaultBaseURL = "http://localhost:3000"

func Load() Config {
	cfg := Config{
		APIBaseURL:  getEnv("API_BASE_URL", defaultBaseURL),
		SessionFile: os.Getenv("SESSION_FILE"),
	}

	if cfg.SessionFile == "" {
		cfg.SessionFile = defaultSessionFile()
	}

	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.HTTPTimeout = d
		}
	}

	return cfg
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "kepegawaian", "session.json")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
