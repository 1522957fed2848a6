package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig carries the signing secret and token lifetime for session
// tokens. JWT_SECRET must be set; JWT_EXPIRATION_HOURS defaults to 24.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT settings from the environment.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours := 24
	if s := os.Getenv("JWT_EXPIRATION_HOURS"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		hours = parsed
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", hours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: hours}, nil
}
