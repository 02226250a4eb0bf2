// Package config provides configuration loading for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the application configuration. Values can come from a
// JSON file, environment variables, or CLI flags; flags win, then the
// file, then the environment.
type Config struct {
	Port         int    `json:"port,omitempty"`           // HTTP listen port
	APIKey       string `json:"api_key,omitempty"`        // Gemini API key
	Model        string `json:"model,omitempty"`          // Gemini model override
	DataDir      string `json:"data_dir,omitempty"`       // Saved-state directory; empty keeps state in memory
	GithubAPIURL string `json:"github_api_url,omitempty"` // GitHub API base override
	Verbose      bool   `json:"verbose,omitempty"`        // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv builds a Config from environment variables. godotenv is loaded
// by main before this runs.
func FromEnv() Config {
	cfg := Config{
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		Model:        os.Getenv("GEMINI_MODEL"),
		DataDir:      os.Getenv("BOOSTER_DATA_DIR"),
		GithubAPIURL: os.Getenv("GITHUB_API_URL"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.DataDir != "" {
		if info, err := os.Stat(c.DataDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'data_dir' is not a directory: %s", c.DataDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.GithubAPIURL == "" {
		result.GithubAPIURL = defaults.GithubAPIURL
	}

	// Bools cannot distinguish unset from false, so flags always win.

	return result
}
