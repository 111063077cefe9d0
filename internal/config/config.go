package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"healthai/internal/validation"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string

	// Server
	ServerAddr string
	BaseURL    string

	// Storage
	DatabaseURL string // empty: lookup stats kept in memory
	RedisURL    string // empty: sessions kept in memory

	// Session
	SessionSecret      string // Used for cookie encryption (min 32 chars)
	SessionIdleTimeout time.Duration

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax int // requests per minute per IP

	// Lookups
	SimulatedLatency   time.Duration // cosmetic delay before API lookups respond
	StatsFlushInterval time.Duration
	ChatMaxTurns       int

	// Catalogue overrides loaded from CONFIG_FILE; nil serves the built-in lists
	Catalog *YAMLConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		ServerAddr:         getEnv("SERVER_ADDR", ":3000"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		SessionSecret:      getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		SessionIdleTimeout: getDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		CORSOrigins:        getEnv("CORS_ORIGINS", ""),
		RateLimitMax:       getInt("RATE_LIMIT_MAX", 100),
		SimulatedLatency:   getDuration("SIMULATED_LATENCY", 0),
		StatsFlushInterval: getDuration("STATS_FLUSH_INTERVAL", 15*time.Second),
		ChatMaxTurns:       getInt("CHAT_MAX_TURNS", 200),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return v
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// AllowedOrigins returns the CORS origins, defaulting to BaseURL.
func (c *Config) AllowedOrigins() []string {
	raw := c.BaseURL
	if c.CORSOrigins != "" {
		raw = c.CORSOrigins
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Validate reports configuration problems that would prevent startup.
func (c *Config) Validate() []string {
	var problems []string
	if ok, msg := validation.ValidateURL(c.BaseURL); !ok {
		problems = append(problems, "BASE_URL: "+msg)
	}
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o == "" {
			continue
		}
		if ok, msg := validation.ValidateURL(o); !ok {
			problems = append(problems, "CORS_ORIGINS "+o+": "+msg)
		}
	}
	if !c.IsDev() && len(c.SessionSecret) < 32 {
		problems = append(problems, "SESSION_SECRET must be at least 32 characters")
	}
	if c.RateLimitMax <= 0 {
		problems = append(problems, "RATE_LIMIT_MAX must be positive")
	}
	if c.SimulatedLatency < 0 {
		problems = append(problems, "SIMULATED_LATENCY must not be negative")
	}
	if c.StatsFlushInterval <= 0 {
		problems = append(problems, "STATS_FLUSH_INTERVAL must be positive")
	}
	return problems
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
