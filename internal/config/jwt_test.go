package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-signing-secret-for-tests")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "a-signing-secret-for-tests", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_CustomExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-signing-secret-for-tests")

	cases := []struct {
		env  string
		want int
	}{
		{"1", 1},
		{"12", 12},
		{"48", 48},
		{"168", 168},
	}
	for _, tc := range cases {
		t.Setenv("JWT_EXPIRATION_HOURS", tc.env)
		cfg, err := NewJWTConfig()
		require.NoError(t, err, "hours=%s", tc.env)
		assert.Equal(t, tc.want, cfg.ExpirationHours)
	}
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-signing-secret-for-tests")

	for _, hours := range []string{"invalid", "12.5", "0", "-1"} {
		t.Setenv("JWT_EXPIRATION_HOURS", hours)
		_, err := NewJWTConfig()
		require.Error(t, err, "hours=%s", hours)
		assert.Contains(t, err.Error(), "JWT_EXPIRATION_HOURS")
	}
}
