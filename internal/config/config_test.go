package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"client_id": "client-42",
		"campaign_type": "re_general_location",
		"location": "Downtown Austin",
		"verbose": true,
		"port": 9000
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "client-42", cfg.ClientID)
	assert.Equal(t, "re_general_location", cfg.CampaignType)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{ not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_UnknownCampaignType(t *testing.T) {
	cfg := &Config{CampaignType: "re_typo"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_KnownCampaignTypes(t *testing.T) {
	for _, ct := range []string{"", "re_general_location", "re_unit_type", "re_proximity"} {
		cfg := &Config{CampaignType: ct}
		assert.NoError(t, cfg.Validate(), ct)
	}
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{ClientID: "client-42"}
	defaults := Config{
		ClientID:    "ignored",
		Location:    "Downtown Austin",
		DatabaseURL: "postgres://localhost/adcopy",
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "client-42", merged.ClientID, "explicit value wins")
	assert.Equal(t, "Downtown Austin", merged.Location)
	assert.Equal(t, "postgres://localhost/adcopy", merged.DatabaseURL)
	assert.Equal(t, 8080, merged.Port, "port defaults to 8080")
}

func TestNewJWTConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.Lifetime)
}

func TestNewJWTConfig_CustomLifetime(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION", "90m")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.Lifetime)
}

func TestNewJWTConfig_RejectsTooShortLifetime(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION", "5s")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	hash, err := cfg.HashPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, cfg.VerifyPassword("hunter2", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestPasswordConfig_PepperChangesHash(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PASSWORD_PEPPER", "global-secret")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	hash, err := cfg.HashPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, cfg.VerifyPassword("hunter2", hash))

	// The same password without the pepper must not verify.
	unpeppered := &PasswordConfig{BcryptCost: 10}
	assert.False(t, unpeppered.VerifyPassword("hunter2", hash))
}

func TestPasswordConfig_CostOutOfRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")

	_, err := NewPasswordConfig()
	assert.Error(t, err)
}
