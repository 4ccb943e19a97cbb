// Package config loads client configuration from the environment, with
// an optional YAML file override for deployments that prefer files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the complete client configuration.
type Config struct {
	// APIBaseURL is the storefront backend, including the /api prefix.
	APIBaseURL string `env:"STOREFRONT_API_URL,default=http://localhost:8000/api" yaml:"api_base_url"`
	// MLBaseURL is the recommendation service, including its /api prefix.
	MLBaseURL string `env:"STOREFRONT_ML_URL,default=http://localhost:8001/api" yaml:"ml_base_url"`
	// CredentialFile overrides where the bearer token is persisted.
	// Empty means the per-user default location.
	CredentialFile string `env:"STOREFRONT_CREDENTIAL_FILE" yaml:"credential_file"`
	// HTTPTimeout bounds every request; there is no per-call retry or
	// backoff on top of it.
	HTTPTimeout time.Duration `env:"STOREFRONT_HTTP_TIMEOUT,default=30s" yaml:"http_timeout"`
	LogLevel    string        `env:"STOREFRONT_LOG_LEVEL,default=info" yaml:"log_level"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	return &cfg, nil
}

// LoadFromPath loads configuration from a YAML file, layered over the
// environment so file values win only where they are set.
func LoadFromPath(path string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads from path when the file exists, and falls back to
// environment-only configuration otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return LoadFromPath(path)
		}
	}
	return Load()
}
