// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the process configuration for the HTTP server. Values
// come from the environment; godotenv loads a .env file before this runs.
type ServerConfig struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string // empty disables the AI-improve endpoints
	GeminiModel  string
	ChromePath   string // empty uses chromedp's browser lookup
}

// NewServerConfig reads server configuration from environment variables.
// PORT defaults to 8080; DATABASE_URL is required.
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	cfg := &ServerConfig{
		Port:         port,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		ChromePath:   os.Getenv("CHROME_PATH"),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	return nil
}
