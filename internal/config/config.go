// Package config reads simulator settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/aristath/quantumfolio/internal/problem"
	"github.com/aristath/quantumfolio/internal/search"
)

// Config holds simulator configuration
type Config struct {
	LogLevel  string
	LogPretty bool

	// Penalty weights the cardinality constraint of the default instance.
	Penalty float64

	// TargetAssets is the soft cardinality target.
	TargetAssets int

	// GammaPoints and BetaPoints set the sweep resolution.
	GammaPoints int
	BetaPoints  int

	// Workers sets search parallelism; 1 runs sequentially.
	Workers int

	// SkipNumericalErrors continues the sweep past samples with non-finite
	// values instead of aborting.
	SkipNumericalErrors bool
}

// Load reads configuration from environment variables, honoring a local
// .env file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogPretty:           getEnvAsBool("LOG_PRETTY", true),
		Penalty:             getEnvAsFloat("QAOA_PENALTY", 10.0),
		TargetAssets:        getEnvAsInt("QAOA_TARGET_ASSETS", problem.DefaultTargetAssets),
		GammaPoints:         getEnvAsInt("QAOA_GAMMA_POINTS", search.DefaultGammaPoints),
		BetaPoints:          getEnvAsInt("QAOA_BETA_POINTS", search.DefaultBetaPoints),
		Workers:             getEnvAsInt("QAOA_WORKERS", 1),
		SkipNumericalErrors: getEnvAsBool("QAOA_SKIP_NUMERICAL_ERRORS", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration before any computation starts
func (c *Config) Validate() error {
	if c.Penalty < 0 {
		return fmt.Errorf("QAOA_PENALTY must be non-negative, got %v", c.Penalty)
	}
	if c.TargetAssets < 0 {
		return fmt.Errorf("QAOA_TARGET_ASSETS must be non-negative, got %d", c.TargetAssets)
	}
	if c.GammaPoints < 1 || c.BetaPoints < 1 {
		return fmt.Errorf("grid resolution must be positive, got %d×%d", c.GammaPoints, c.BetaPoints)
	}
	if c.Workers < 1 {
		return fmt.Errorf("QAOA_WORKERS must be positive, got %d", c.Workers)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
