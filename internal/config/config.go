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
	LogDir      string
	APIKey      string // API key for authentication

	// EngineVersion is the game engine version string the codec targets,
	// e.g. "1.21.4". Empty means unknown: version-gated features stay off.
	EngineVersion string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		Environment:       getEnv("ENVIRONMENT", "dev"),
		LogDir:            getEnv("LOG_DIR", "logs"),
		APIKey:            getEnv("API_KEY", ""),
		EngineVersion:     getEnv("ENGINE_VERSION", ""),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "minecorelib"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 20),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
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

// getEnvAsInt retrieves an integer environment variable or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration retrieves a duration environment variable or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
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
