package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort       = "8080"
	DefaultDogAPIURL  = "https://dog.ceo/api"
	DefaultDogTimeout = 10 * time.Second
	DefaultAppName    = "dog-viewer"
	DefaultViewerTTL  = 30 * time.Minute
	DefaultMaxViewers = 1000
)

type Config struct {
	Addr string

	DogAPIBaseURL string
	DogAPITimeout time.Duration

	ViewerTTL  time.Duration
	MaxViewers int

	AppName   string
	LogLevel  string
	LogFormat string
}

// LoadDotEnv carga variables desde archivos .env si existen.
// Las variables ya definidas en el entorno tienen prioridad.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// FromEnv arma la config desde env:
// - PORT (default 8080)
// - DOG_API_BASE_URL (default https://dog.ceo/api)
// - DOG_API_TIMEOUT, duración Go (default 10s)
// - VIEWER_TTL, duración Go (default 30m) y MAX_VIEWERS (default 1000)
// - APP_NAME (default dog-viewer)
// - LOG_LEVEL=debug|info|warn|error, LOG_FORMAT=text|json (los interpreta logger)
func FromEnv() Config {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Config {
	cfg := Config{
		Addr:          ":" + DefaultPort,
		DogAPIBaseURL: DefaultDogAPIURL,
		DogAPITimeout: DefaultDogTimeout,
		ViewerTTL:     DefaultViewerTTL,
		MaxViewers:    DefaultMaxViewers,
		AppName:       DefaultAppName,
	}

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		cfg.Addr = ":" + v
	}
	if v := strings.TrimSpace(getenv("DOG_API_BASE_URL")); v != "" {
		cfg.DogAPIBaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(getenv("DOG_API_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.DogAPITimeout = d
		}
	}
	if v := strings.TrimSpace(getenv("VIEWER_TTL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ViewerTTL = d
		}
	}
	if v := strings.TrimSpace(getenv("MAX_VIEWERS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxViewers = n
		}
	}
	if v := strings.TrimSpace(getenv("APP_NAME")); v != "" {
		cfg.AppName = v
	}
	cfg.LogLevel = strings.TrimSpace(getenv("LOG_LEVEL"))
	cfg.LogFormat = strings.TrimSpace(getenv("LOG_FORMAT"))
	return cfg
}
