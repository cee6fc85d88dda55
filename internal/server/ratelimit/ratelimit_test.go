package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		RequestsPerMinute: 60,
		Burst:             3,
		CleanupInterval:   time.Minute,
	}
}

func TestLimiter_AllowsBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("client-a")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 60, info.Limit)
	}
}

func TestLimiter_DeniesAfterBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("client-a")
	}

	allowed, info := l.Allow("client-a")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_SeparateClients(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("client-a")
	}

	allowed, _ := l.Allow("client-b")
	assert.True(t, allowed, "a different client should have its own bucket")
}

func TestLimiter_RemainingDecreases(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	_, first := l.Allow("client-a")
	_, second := l.Allow("client-a")
	assert.Less(t, second.Remaining, first.Remaining)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.RequestsPerMinute)
	assert.Equal(t, 10, cfg.Burst)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("RATE_LIMIT_BURST", "20")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.RequestsPerMinute)
	assert.Equal(t, 20, cfg.Burst)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "zero")

	_, err := LoadConfig()
	assert.Error(t, err)
}
