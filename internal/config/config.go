package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Table rules
	BlackjackBonus   float64
	DealerHitsSoft17 bool

	// Round defaults
	DefaultBet  float64
	ShuffleSeed int64 // 0 seeds from the clock

	LogLevel logging.Level

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() (*Config, error) {
	var err error
	cfg := &Config{
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if cfg.BlackjackBonus, err = getFloat("BLACKJACK_BONUS", blackjack.DefaultBonus); err != nil {
		return nil, err
	}
	if cfg.DealerHitsSoft17, err = getBool("DEALER_HITS_SOFT17", false); err != nil {
		return nil, err
	}
	if cfg.DefaultBet, err = getFloat("DEFAULT_BET", 10); err != nil {
		return nil, err
	}
	if cfg.ShuffleSeed, err = getInt("SHUFFLE_SEED", 0); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = logging.ParseLevel(getEnvWithDefault("LOG_LEVEL", "INFO")); err != nil {
		return nil, types.WrapError(types.ErrInvalidConfig, "LOG_LEVEL is invalid", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configured values make a playable table
func (c *Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return types.WrapError(types.ErrInvalidConfig, "BLACKJACK_BONUS must be positive", err)
	}
	if c.DefaultBet <= 0 {
		return types.NewGameErrorf(types.ErrInvalidConfig, "DEFAULT_BET must be positive, got %v", c.DefaultBet)
	}
	return nil
}

// Rules returns the table rules described by the config
func (c *Config) Rules() blackjack.Rules {
	return blackjack.Rules{
		PlayerBonusOnBlackjack: c.BlackjackBonus,
		DealerHitsOnSoft17:     c.DealerHitsSoft17,
	}
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, types.WrapError(types.ErrInvalidConfig, key+" is not a number", err)
	}
	return value, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, types.WrapError(types.ErrInvalidConfig, key+" is not a boolean", err)
	}
	return value, nil
}

func getInt(key string, defaultValue int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, types.WrapError(types.ErrInvalidConfig, key+" is not an integer", err)
	}
	return value, nil
}
