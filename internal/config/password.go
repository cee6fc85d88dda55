package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt cost bounds accepted from the environment. Costs below 10 are too
// weak for stored API credentials; costs above 14 make login noticeably slow.
const (
	minBcryptCost     = 10
	maxBcryptCost     = 14
	defaultBcryptCost = 12
)

// PasswordConfig holds bcrypt hashing parameters for API credentials.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret mixed into every password
}

// NewPasswordConfig reads BCRYPT_COST (default 12) and the optional
// PASSWORD_PEPPER from the environment.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := defaultBcryptCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q: %w", v, err)
		}
		cost = parsed
	}
	if cost < minBcryptCost || cost > maxBcryptCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, minBcryptCost, maxBcryptCost)
	}

	return &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}, nil
}

// peppered appends the configured pepper to the password, if any.
func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword produces a bcrypt hash of the peppered password.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the peppered password matches the stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}
