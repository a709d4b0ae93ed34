// Package config loads service configuration from defaults, an optional YAML
// file and the environment, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. ASSIGNSTAT_SERVER_PORT.
const EnvPrefix = "ASSIGNSTAT"

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// AnalysisConfig controls the analysis engine
type AnalysisConfig struct {
	Timezone string `yaml:"timezone" envconfig:"TIMEZONE" validate:"required,timezone"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int             `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration   `yaml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration   `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration   `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" validate:"gt=0"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
	MaxUploadBytes  int64           `yaml:"max_upload_bytes" envconfig:"MAX_UPLOAD_BYTES" validate:"gt=0"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"required_if=Enabled true,gte=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"required_if=Enabled true,gte=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Timezone: "Asia/Kolkata",
		},
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxUploadBytes:  10 << 20,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     10,
				Burst:   20,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFile overlays the keys present in a YAML file.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
