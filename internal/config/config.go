package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// APIPrefix is the path prefix every application route is mounted under.
const APIPrefix = "/api"

// DefaultCORSOrigins is used when CORS_ORIGINS is not present in the environment.
const DefaultCORSOrigins = "http://localhost:3000"

// Config holds all runtime configuration loaded from environment variables.
// It is built once by Load and never mutated afterwards.
type Config struct {
	AppEnv string

	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        zapcore.Level

	// Database. Empty means the probe reports "not set" without dialing.
	DatabaseURL string
	// Maximum probe dials per second; 0 disables the limit.
	DBPingRate int

	// CORS allow-list. Empty means every origin is allowed.
	CORSOrigins []string

	// NextPublicAPIURL is echoed by /hello; nil when the variable is unset.
	NextPublicAPIURL *string
}

// Load reads .env files (when present) and then the process environment.
// Variables already set in the environment win over .env; the
// .env.<APP_ENV> overlay wins over .env.
func Load() (*Config, error) {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	if env == "" {
		env = "local"
	}
	// godotenv.Load never overrides a variable that is already set, so the
	// more specific file goes first.
	_ = godotenv.Load(".env." + env)
	_ = godotenv.Load(".env")

	return FromEnv(env)
}

// FromEnv builds a Config from the current process environment only.
func FromEnv(appEnv string) (*Config, error) {
	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	corsRaw, ok := os.LookupEnv("CORS_ORIGINS")
	if !ok {
		corsRaw = DefaultCORSOrigins
	}

	var apiURL *string
	if v, ok := os.LookupEnv("NEXT_PUBLIC_API_URL"); ok {
		apiURL = &v
	}

	return &Config{
		AppEnv: appEnv,

		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		LogLevel:        level,

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBPingRate:  getInt("DB_PING_RATE", 0),

		CORSOrigins:      SplitCSV(corsRaw),
		NextPublicAPIURL: apiURL,
	}, nil
}

// SplitCSV splits a comma-separated list, trimming whitespace and dropping
// empty entries. It returns nil for an empty input.
func SplitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
