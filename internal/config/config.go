// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	// DemoAPIKey is the placeholder credential that keeps the service in demo mode.
	DemoAPIKey = "demo_key"

	// DefaultBaseURL is the OpenWeatherMap API root.
	DefaultBaseURL = "http://api.openweathermap.org/data/2.5"
)

var validate = validator.New()

// Config holds the application settings.
type Config struct {
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string        `validate:"required,url"`
	Port               string        `validate:"required,numeric"`
	HTTPClientTimeout  time.Duration `validate:"gt=0"`
	StaticDir          string        `validate:"required"`
	CORSOrigin         string        `validate:"required"`
	LogLevel           string        `validate:"required,oneof=trace debug info warn warning error fatal panic"`
}

// DemoMode reports whether no real provider credential is configured.
func (c *Config) DemoMode() bool {
	return c.OpenWeatherAPIKey == "" || c.OpenWeatherAPIKey == DemoAPIKey
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return FromEnv()
}

// FromEnv builds and validates a Config from environment variables only.
func FromEnv() (*Config, error) {
	timeout, err := time.ParseDuration(getenvDefault("HTTP_CLIENT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_CLIENT_TIMEOUT: %w", err)
	}

	cfg := &Config{
		OpenWeatherAPIKey:  getenvDefault("OPENWEATHER_API_KEY", DemoAPIKey),
		OpenWeatherBaseURL: getenvDefault("OPENWEATHER_BASE_URL", DefaultBaseURL),
		Port:               getenvDefault("PORT", "10000"),
		HTTPClientTimeout:  timeout,
		StaticDir:          getenvDefault("STATIC_DIR", "static"),
		CORSOrigin:         getenvDefault("CORS_ORIGIN", "*"),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
