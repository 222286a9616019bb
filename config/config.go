package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment selects a configuration profile.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Testing     Environment = "testing"
)

// ErrUnknownEnvironment is returned by Load for an unrecognized environment
// key. Callers are expected to fail loudly rather than fall back.
var ErrUnknownEnvironment = errors.New("config: unknown environment")

type Config struct {
	Env       Environment
	Port      string
	SecretKey string
	// Pagination sizes
	IndexPerPage int
	AdminPerPage int
	// Datastore
	DatabaseURL string
	// Redis (optional, rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
}

const devDatabaseURL = "postgres://postgres@localhost:5432/jobplus?sslmode=disable"

// Load resolves the configuration profile for env. Values come from the
// process environment (a local .env file is honored when present); only
// development carries a built-in database URL.
func Load(env string) (*Config, error) {
	// Only effective locally, ignored in production when the file is absent.
	_ = godotenv.Load()

	switch Environment(env) {
	case Development, Production, Testing:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnvironment, env)
	}

	cfg := &Config{
		Env:          Environment(env),
		Port:         getEnv("PORT", "8080"),
		SecretKey:    getEnv("SECRET_KEY", "make sure to set a very secret key"),
		IndexPerPage: getEnvInt("INDEX_PER_PAGE", 10),
		AdminPerPage: getEnvInt("ADMIN_PER_PAGE", 10),
		DatabaseURL:  getEnv("DATABASE_URL", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.DatabaseURL == "" {
		if cfg.Env == Development {
			cfg.DatabaseURL = devDatabaseURL
		} else {
			return nil, fmt.Errorf("config: DATABASE_URL is required in %s", cfg.Env)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
