// SPDX-License-Identifier: MIT

// Package config loads matsweep settings from YAML.
//
// Loading order: Default() first, then the YAML file (if any) overlays the
// fields it names, then command-line flags override both. Validate is run
// once on the merged result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/matsweep/transform"
	"gopkg.in/yaml.v3"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DimensionLimit is the hard upper bound on the matrix side.
	DimensionLimit = 20

	// DefaultPolicy is the transform applied when none is configured.
	DefaultPolicy = transform.NameGlobalTwoTier

	// DefaultPrecision (-1) means "use the policy's own precision".
	DefaultPrecision = -1

	// DefaultLanguage selects the console message catalog.
	DefaultLanguage = "en"

	// DefaultFailureExitCode is the process exit code after an input error.
	DefaultFailureExitCode = 1

	// DefaultLogLevel keeps stderr quiet during normal runs.
	DefaultLogLevel = "warn"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log holds logger settings.
type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Config is the merged runtime configuration.
type Config struct {
	Policy          string `yaml:"policy"`
	MaxDimension    int    `yaml:"max_dimension"`
	Precision       int    `yaml:"precision"`
	Language        string `yaml:"language"`
	Interactive     bool   `yaml:"interactive"`
	FailureExitCode int    `yaml:"failure_exit_code"`
	Log             Log    `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Policy:          DefaultPolicy,
		MaxDimension:    DimensionLimit,
		Precision:       DefaultPrecision,
		Language:        DefaultLanguage,
		Interactive:     true,
		FailureExitCode: DefaultFailureExitCode,
		Log:             Log{Level: DefaultLogLevel},
	}
}

// Load reads a YAML file over Default() and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Kind resolves the configured policy name.
func (c *Config) Kind() (transform.Kind, error) {
	return transform.ParseKind(c.Policy)
}

// Validate checks every field and reports the first violation.
func (c *Config) Validate() error {
	if _, err := c.Kind(); err != nil {
		return fmt.Errorf("%w: policy: %v", ErrInvalidConfig, err)
	}
	if c.MaxDimension < 1 || c.MaxDimension > DimensionLimit {
		return fmt.Errorf("%w: max_dimension must be in [1,%d], got %d",
			ErrInvalidConfig, DimensionLimit, c.MaxDimension)
	}
	if c.Precision < -1 || c.Precision > 10 {
		return fmt.Errorf("%w: precision must be in [-1,10], got %d", ErrInvalidConfig, c.Precision)
	}
	switch strings.ToLower(c.Language) {
	case "en", "ru":
	default:
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidConfig, c.Language)
	}
	if c.FailureExitCode < 0 || c.FailureExitCode > 125 {
		return fmt.Errorf("%w: failure_exit_code must be in [0,125], got %d",
			ErrInvalidConfig, c.FailureExitCode)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unsupported log level %q", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}
