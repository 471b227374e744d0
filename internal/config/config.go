// Package config loads keypad CLI settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/padchain/complexity"
)

// Environment variables that override file settings.
const (
	EnvHistoryDB = "KEYPAD_HISTORY_DB"
	EnvDepth     = "KEYPAD_DEPTH"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds all CLI configuration.
type Config struct {
	// Depth is the number of directional controllers above the door keypad.
	Depth int `yaml:"depth"`
	// Workers bounds goroutines used to price codes; 1 runs sequentially.
	Workers int `yaml:"workers"`

	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// HistoryConfig configures the run ledger.
type HistoryConfig struct {
	Path   string `yaml:"path"`
	Record bool   `yaml:"record"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Depth:   complexity.ShortChain,
		Workers: 1,
		History: HistoryConfig{Path: DefaultHistoryPath()},
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultHistoryPath is ~/.keypad/history.db.
func DefaultHistoryPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".keypad", "history.db")
}

// DefaultPath is ~/.keypad/config.yaml.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".keypad", "config.yaml")
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvHistoryDB); v != "" {
		c.History.Path = v
	}
	if v := os.Getenv(EnvDepth); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvDepth, v, err)
		}
		c.Depth = d
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("%w: depth must be >= 0, got %d", ErrInvalid, c.Depth)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Logging.Level)
	}
	if c.History.Record && c.History.Path == "" {
		return fmt.Errorf("%w: history.record requires history.path", ErrInvalid)
	}
	return nil
}
