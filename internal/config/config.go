package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Store   StoreConfig
	Logging LoggingConfig
}

// StoreConfig holds inventory store related options.
type StoreConfig struct {
	FilePath          string
	LowStockThreshold int
}

// LoggingConfig holds logger related options.
type LoggingConfig struct {
	Debug bool
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	threshold, err := getenvIntWithDefault("STOCKPILE_LOW_STOCK_THRESHOLD", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Store: StoreConfig{
			FilePath:          getenvWithDefault("STOCKPILE_FILE", "inventory.json"),
			LowStockThreshold: threshold,
		},
		Logging: LoggingConfig{
			Debug: os.Getenv("STOCKPILE_DEBUG") == "true",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Store.FilePath == "" {
		return errors.New("STOCKPILE_FILE must not be empty")
	}

	if c.Store.LowStockThreshold < 0 {
		return errors.New("STOCKPILE_LOW_STOCK_THRESHOLD must not be negative")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvIntWithDefault(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", key, value, err)
	}
	return parsed, nil
}
