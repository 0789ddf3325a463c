package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvAlgorithms = "HASHLIB_ALGORITHMS"
	EnvProviders  = "HASHLIB_PROVIDERS"
	EnvLogLevel   = "HASHLIB_LOG_LEVEL"
	EnvConfig     = "HASHLIB_CONFIG"
)

// Config stores all configuration for the application.
type Config struct {
	// Algorithms to register, in order. The first one is the default for hashsum.
	Algorithms []string `yaml:"algorithms"`

	// Providers is an explicit provider preference order. Empty means
	// catalog priority order.
	Providers []string `yaml:"providers"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Algorithms: []string{"sha256"},
		LogLevel:   "info",
	}
}

// Load reads configuration from an optional YAML file and the environment.
// path overrides HASHLIB_CONFIG when non-empty.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (useful for local development)
	godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvAlgorithms); v != "" {
		cfg.Algorithms = splitList(v)
	}
	if v := os.Getenv(EnvProviders); v != "" {
		cfg.Providers = splitList(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// Validate checks for empty or duplicate entries and an unknown log level.
func (c *Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("no hash algorithms configured")
	}
	if err := checkList("algorithm", c.Algorithms); err != nil {
		return err
	}
	if err := checkList("provider", c.Providers); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LogLevel for use with log/slog.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

func checkList(kind string, entries []string) error {
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry == "" {
			return fmt.Errorf("empty %s name in configuration", kind)
		}
		if seen[entry] {
			return fmt.Errorf("%s %q listed twice", kind, entry)
		}
		seen[entry] = true
	}
	return nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
