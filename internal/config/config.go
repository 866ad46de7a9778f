package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultModel is the model used when no override is configured.
const DefaultModel = "claude-sonnet-4-5-20250929"

// Environment keys recognized by Load. No other keys are consulted.
const (
	EnvAPIKey = "ANTHROPIC_API_KEY"
	EnvModel  = "ANTHROPIC_MODEL"
)

// ErrMissingCredential is returned by Load when no API key can be found.
var ErrMissingCredential = errors.New("ANTHROPIC_API_KEY is not set; export it or add it to a .env file")

// Config holds the resolved configuration. It is built once per process by
// Load and never mutated afterwards.
type Config struct {
	APIKey string
	Model  string
}

// Load builds the effective config by merging: defaults <- env <- overrides.
// The overrides map comes from CLI flags (only non-empty values should be set).
// A .env file in the working directory is loaded into the environment first,
// best-effort, so local setups work the same way as exported variables.
func Load(overrides map[string]string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{Model: DefaultModel}
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	if strings.TrimSpace(cfg.APIKey) == "" {
		return Config{}, ErrMissingCredential
	}
	return cfg, nil
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		cfg.Model = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
}
