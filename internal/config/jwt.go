package config

import (
	"fmt"
	"os"
	"time"
)

// JWTConfig holds the signing secret and token lifetime for API tokens.
type JWTConfig struct {
	Secret   string
	Lifetime time.Duration
}

// defaultTokenLifetime applies when JWT_EXPIRATION is unset.
const defaultTokenLifetime = 24 * time.Hour

// NewJWTConfig reads JWT settings from the environment. JWT_SECRET is
// required; JWT_EXPIRATION accepts a Go duration string such as "24h" or
// "90m" and defaults to 24 hours.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	lifetime := defaultTokenLifetime
	if v := os.Getenv("JWT_EXPIRATION"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION %q: %w", v, err)
		}
		if parsed < time.Minute {
			return nil, fmt.Errorf("JWT_EXPIRATION must be at least one minute, got %s", parsed)
		}
		lifetime = parsed
	}

	return &JWTConfig{
		Secret:   secret,
		Lifetime: lifetime,
	}, nil
}
