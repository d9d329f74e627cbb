package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the client needs from the environment.
type Config struct {
	// API
	APIBaseURL  string        `env:"MINDFUL_API_URL" default:"http://localhost:8080/api"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" default:"10s"`

	// Local state
	HomeDir string `env:"MINDFUL_HOME" default:"$HOME/.mindfulreader"`

	// Mock backend (development only)
	MockAPIPort int    `env:"MOCK_API_PORT" default:"8080"`
	JWTSecret   string `env:"JWT_SECRET" default:"mindful-reader-dev-secret-not-for-prod"`
}

// LoadConfig loads configuration from a .env file (if present) and the
// environment.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; system env vars still apply.
	_ = godotenv.Load(".env")

	config := &Config{}

	if err := loadEnvString(&config.APIBaseURL, "MINDFUL_API_URL", "http://localhost:8080/api"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.HTTPTimeout, "HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.HomeDir, "MINDFUL_HOME", defaultHomeDir()); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.MockAPIPort, "MOCK_API_PORT", 8080); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.JWTSecret, "JWT_SECRET", "mindful-reader-dev-secret-not-for-prod"); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate performs validation on the loaded configuration.
func (c *Config) Validate() error {
	if c.MockAPIPort < 1 || c.MockAPIPort > 65535 {
		return fmt.Errorf("MOCK_API_PORT must be between 1 and 65535")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("MINDFUL_API_URL must not be empty")
	}
	return nil
}

func defaultHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mindfulreader"
	}
	return filepath.Join(home, ".mindfulreader")
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}
