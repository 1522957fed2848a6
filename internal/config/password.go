package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig controls credential hashing. BCRYPT_COST (10-14, default
// 12) trades login latency against brute-force resistance. PASSWORD_PEPPER,
// when set, is appended to every password before hashing so a leaked hash
// table cannot be attacked without the process secret.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string
}

// NewPasswordConfig reads hashing settings from the environment.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := 12
	if s := os.Getenv("BCRYPT_COST"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
		cost = parsed
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}, nil
}

// HashPassword returns the bcrypt hash of the peppered password.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches the stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}

func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}
