package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	RarityTablePath string
	DrawCooldown    time.Duration
	SessionTTL      time.Duration

	TriviaEndpoint     string
	TriviaCacheSize    int
	TriviaPrefetchSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "casesim"),

		RarityTablePath: getEnv("RARITY_TABLE_PATH", "configs/rarity_tiers.json"),

		TriviaEndpoint: getEnv("TRIVIA_ENDPOINT", "https://zh.wikipedia.org/api/rest_v1/page/random/summary"),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cooldownSecs, err := getEnvInt("DRAW_COOLDOWN_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	if cooldownSecs <= 0 {
		return nil, fmt.Errorf("DRAW_COOLDOWN_SECONDS must be positive, got %d", cooldownSecs)
	}
	cfg.DrawCooldown = time.Duration(cooldownSecs) * time.Second

	sessionHours, err := getEnvInt("SESSION_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}
	if sessionHours <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", sessionHours)
	}
	cfg.SessionTTL = time.Duration(sessionHours) * time.Hour

	cfg.TriviaCacheSize, err = getEnvInt("TRIVIA_CACHE_SIZE", 32)
	if err != nil {
		return nil, err
	}
	cfg.TriviaPrefetchSize, err = getEnvInt("TRIVIA_PREFETCH_SIZE", 8)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
