// Package config loads and validates the taskscribe configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all taskscribe settings.
type Config struct {
	Roster  RosterConfig  `yaml:"roster"`
	Output  OutputConfig  `yaml:"output"`
	Watch   WatchConfig   `yaml:"watch"`
	STT     STTConfig     `yaml:"stt"`
	Logging LoggingConfig `yaml:"logging"`

	// ReferenceDate pins relative deadline resolution ("tomorrow",
	// "next Friday") to a fixed date, formatted as 2006-01-02.
	// Empty means the current date is used.
	ReferenceDate string `yaml:"reference_date"`
}

type RosterConfig struct {
	Path string `yaml:"path"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

type WatchConfig struct {
	Dir           string  `yaml:"dir"`
	MaxConcurrent int     `yaml:"max_concurrent"`
	DebounceSec   float64 `yaml:"debounce_sec"`
}

type STTConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a configuration file, validates it, and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse parses configuration from raw YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Validate checks values that cannot be repaired by defaulting.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "json", "table", "csv", "yaml":
		// Valid or will be defaulted
	default:
		return fmt.Errorf("output.format: unsupported format: %s", c.Output.Format)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
		// Valid or will be defaulted
	default:
		return fmt.Errorf("logging.level: unsupported level: %s", c.Logging.Level)
	}

	switch c.STT.Provider {
	case "", "gemini", "mock":
		// Valid or will be defaulted
	default:
		return fmt.Errorf("stt.provider: unsupported provider: %s", c.STT.Provider)
	}

	if c.Watch.MaxConcurrent < 0 {
		return fmt.Errorf("watch.max_concurrent must not be negative")
	}
	if c.Watch.DebounceSec < 0 {
		return fmt.Errorf("watch.debounce_sec must not be negative")
	}

	if c.ReferenceDate != "" {
		if _, err := time.Parse("2006-01-02", c.ReferenceDate); err != nil {
			return fmt.Errorf("reference_date: expected 2006-01-02 format: %s", c.ReferenceDate)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Roster.Path == "" {
		c.Roster.Path = "roster.yaml"
	}
	if c.Output.Format == "" {
		c.Output.Format = "json"
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 4
	}
	if c.Watch.DebounceSec == 0 {
		c.Watch.DebounceSec = 0.5
	}
	if c.STT.Provider == "" {
		c.STT.Provider = "gemini"
	}
	if c.STT.APIKey == "" {
		c.STT.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Reference returns the pinned reference date, or now when unset.
func (c *Config) Reference() time.Time {
	if c.ReferenceDate == "" {
		return time.Now()
	}
	t, err := time.Parse("2006-01-02", c.ReferenceDate)
	if err != nil {
		return time.Now()
	}
	return t
}
