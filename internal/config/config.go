// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Campaign
	ClientID     string `json:"client_id,omitempty"`     // Client identifier for intake + knowledge lookup
	CampaignType string `json:"campaign_type,omitempty"` // re_general_location, re_unit_type, re_proximity
	Location     string `json:"location,omitempty"`      // Campaign location string
	PropertyURL  string `json:"property_url,omitempty"`  // Property website to scrape for fragments

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA sites
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty"` // HTTP server port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.CampaignType {
	case "", "re_general_location", "re_unit_type", "re_proximity":
	default:
		// Unknown campaign types fall back to the general weight table at
		// build time, but a config file typo is worth surfacing early.
		return fmt.Errorf("config error: unknown campaign_type %q", c.CampaignType)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ClientID == "" {
		result.ClientID = defaults.ClientID
	}
	if result.CampaignType == "" {
		result.CampaignType = defaults.CampaignType
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.PropertyURL == "" {
		result.PropertyURL = defaults.PropertyURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = 8080
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
