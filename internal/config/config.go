package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/oanahulpoi/social-media-ai/internal/content"
)

// Config holds all application configuration.
type Config struct {
	// OpenAI API
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAITimeout time.Duration

	// Library
	LibraryPath     string
	DefaultLanguage string

	// Extraction
	HTTPTimeout time.Duration

	// Scheduler
	PollInterval time.Duration

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LibraryPath:     getEnv("LIBRARY_PATH", "content_library.json"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", content.DefaultLanguage),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	// Parse durations
	var err error
	cfg.PollInterval, err = time.ParseDuration(getEnv("POLL_INTERVAL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid POLL_INTERVAL: %w", err)
	}

	cfg.HTTPTimeout, err = time.ParseDuration(getEnv("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	cfg.OpenAITimeout, err = time.ParseDuration(getEnv("OPENAI_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OPENAI_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.LibraryPath == "" {
		return fmt.Errorf("LIBRARY_PATH is required")
	}
	if _, err := content.LanguageName(c.DefaultLanguage); err != nil {
		return fmt.Errorf("invalid DEFAULT_LANGUAGE: %w", err)
	}
	return nil
}

// ValidateForProcessing checks configuration needed to process URLs.
func (c *Config) ValidateForProcessing() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for processing")
	}
	return nil
}

// ValidateForServe checks configuration needed for serve mode. Serving
// only dispatches already-generated posts, so no API key is needed.
func (c *Config) ValidateForServe() error {
	return c.Validate()
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
