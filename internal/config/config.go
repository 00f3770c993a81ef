package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Preference store kinds accepted in PREFERENCE_STORE.
const (
	StoreMemory   = "memory"
	StoreValkey   = "valkey"
	StorePostgres = "postgres"
)

// DefaultBackendURL is the backend origin the playground was built against.
const DefaultBackendURL = "http://localhost"

// Config holds everything read from the environment (and an optional .env file).
type Config struct {
	Addr           string        // Listen address of the proxy server
	BackendURL     string        // Origin of the backend service
	BackendTimeout time.Duration // Zero means no timeout on backend calls
	AllowedOrigin  string        // CORS origin, "*" allows any

	PlaygroundURL     string        // Proxy origin used by the playground driver
	PlaygroundTimeout time.Duration // HTTP timeout of the playground driver

	PreferenceStore string // memory, valkey or postgres
	ValkeyAddr      string
	ValkeyPassword  string
	DatabaseURL     string
}

// Load reads the .env file if one exists, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[Config] Could not read .env: %v", err)
	}

	return Config{
		Addr:              getEnv("ADDR", ":3000"),
		BackendURL:        strings.TrimRight(getEnv("BACKEND_URL", DefaultBackendURL), "/"),
		BackendTimeout:    getEnvDuration("BACKEND_TIMEOUT", 0),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		PlaygroundURL:     strings.TrimRight(getEnv("PLAYGROUND_URL", "http://localhost:3000"), "/"),
		PlaygroundTimeout: getEnvDuration("PLAYGROUND_TIMEOUT", 15*time.Second),
		PreferenceStore:   strings.ToLower(getEnv("PREFERENCE_STORE", StoreMemory)),
		ValkeyAddr:        getEnv("VALKEY_ADDR", "localhost:6379"),
		ValkeyPassword:    os.Getenv("VALKEY_PASSWORD"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
	}
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	switch c.PreferenceStore {
	case StoreMemory, StoreValkey:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when PREFERENCE_STORE=%s", StorePostgres)
		}
	default:
		return fmt.Errorf("unknown PREFERENCE_STORE %q", c.PreferenceStore)
	}
	if c.BackendURL == "" {
		return fmt.Errorf("BACKEND_URL cannot be empty")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("[Config] Invalid duration for %s=%q, using %s", key, v, def)
	}
	return def
}
