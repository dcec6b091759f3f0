package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultAPIBaseURL = "http://localhost:5000"
	DefaultLogLevel   = "info"
)

// Config holds runtime settings for the directory CLI.
type Config struct {
	APIBaseURL     string        `env:"STUDENTS_API_URL" validate:"required,url"`
	RequestTimeout time.Duration `env:"STUDENTS_API_TIMEOUT" validate:"gte=0"`
	LogFile        string        `env:"STUDENTS_LOG_FILE"`
	LogLevel       string        `env:"STUDENTS_LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
}

// LoadDefaults populates c with defaults. Requests are unbounded unless a
// timeout is configured.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.RequestTimeout = 0
	c.LogFile = ""
	c.LogLevel = DefaultLogLevel
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig applies defaults, then JSON, environment and flags, and
// validates the result.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
