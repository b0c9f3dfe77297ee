// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default values applied when neither the config file, environment, nor
// flags provide one.
const (
	DefaultDataDir         = "data"
	DefaultDBPath          = "data/talentscout.db"
	DefaultPort            = 8080
	DefaultQuestionTimeout = 20 * time.Second
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	APIKey          string `json:"api_key,omitempty"`          // Gemini API key
	DataDir         string `json:"data_dir,omitempty"`         // Directory for exported candidate files
	DBPath          string `json:"db_path,omitempty"`          // SQLite database path for the server
	Port            int    `json:"port,omitempty"`             // HTTP server port
	QuestionTimeout string `json:"question_timeout,omitempty"` // Question generation timeout, e.g. "20s"
	Verbose         bool   `json:"verbose,omitempty"`          // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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

// FromEnv returns a Config populated from environment variables. It is
// used as the lowest-precedence defaults layer: file values and CLI
// flags override it.
func FromEnv() Config {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	return Config{
		APIKey:  apiKey,
		DataDir: os.Getenv("TALENTSCOUT_DATA_DIR"),
		DBPath:  os.Getenv("TALENTSCOUT_DB_PATH"),
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.QuestionTimeout != "" {
		d, err := time.ParseDuration(c.QuestionTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'question_timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'question_timeout' must be positive")
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DBPath == "" {
		result.DBPath = defaults.DBPath
	}
	if result.QuestionTimeout == "" {
		result.QuestionTimeout = defaults.QuestionTimeout
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ParsedQuestionTimeout returns the question generation timeout, falling
// back to the default when unset. Call Validate first; malformed values
// also fall back here.
func (c *Config) ParsedQuestionTimeout() time.Duration {
	if c.QuestionTimeout == "" {
		return DefaultQuestionTimeout
	}
	d, err := time.ParseDuration(c.QuestionTimeout)
	if err != nil || d <= 0 {
		return DefaultQuestionTimeout
	}
	return d
}
