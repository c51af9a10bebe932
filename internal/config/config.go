// Package config loads the resolver configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied to fields left empty in the file.
const (
	DefaultDatabase      = "/var/lib/grouper/groups.db"
	DefaultBufferSize    = 1024
	DefaultMaxBufferSize = 1 << 20
)

// Config holds the resolver settings.
type Config struct {
	// Database is the path to the SQLite group database.
	Database string `yaml:"database"`

	// BufferSize is the initial caller-buffer size the CLI uses. Too
	// small just means a retry; it is a starting point, not a limit.
	BufferSize int `yaml:"buffer_size,omitempty"`

	// MaxBufferSize caps the retry growth so a pathological record
	// cannot grow buffers without bound.
	MaxBufferSize int `yaml:"max_buffer_size,omitempty"`

	// LogLevel is one of debug, info, warn, error. Empty means warn.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database:      DefaultDatabase,
		BufferSize:    DefaultBufferSize,
		MaxBufferSize: DefaultMaxBufferSize,
	}
}

// Load reads a YAML config file, filling unset fields from Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Database == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer_size must be positive, got %d", c.BufferSize)
	}
	if c.MaxBufferSize < c.BufferSize {
		return fmt.Errorf("max_buffer_size %d below buffer_size %d", c.MaxBufferSize, c.BufferSize)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}
