// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/amaumene/gotvmovies/internal/constants"
)

const defaultDatabasePath = "./data/gotvmovies.db"

// Config holds all application configuration.
type Config struct {
	FeedURL       string        `json:"FEED_URL"`
	DatabasePath  string        `json:"DATABASE_PATH"`
	CacheSize     int           `json:"CACHE_SIZE"`
	CacheTTL      time.Duration `json:"-"`
	CacheTTLRaw   string        `json:"CACHE_TTL"`
	DisplayLocale string        `json:"DISPLAY_LOCALE"`
}

// Load builds the configuration from defaults, an optional JSON file
// and environment variables, in that order of precedence (environment
// wins). A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		FeedURL:       constants.DefaultFeedURL,
		DatabasePath:  defaultDatabasePath,
		CacheSize:     constants.DefaultCacheSize,
		CacheTTL:      time.Duration(constants.DefaultCacheTTL) * time.Minute,
		DisplayLocale: constants.DisplayLocales[0],
	}

	if err := cfg.loadFromFile(getEnvOrDefault("CONFIG_FILE", "config.json")); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if c.CacheTTLRaw != "" {
		ttl, err := time.ParseDuration(c.CacheTTLRaw)
		if err != nil {
			return fmt.Errorf("invalid CACHE_TTL %q: %w", c.CacheTTLRaw, err)
		}
		c.CacheTTL = ttl
	}
	return nil
}

func (c *Config) loadFromEnv() error {
	if v := os.Getenv("FEED_URL"); v != "" {
		c.FeedURL = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("DISPLAY_LOCALE"); v != "" {
		c.DisplayLocale = v
	}
	if v := os.Getenv("CACHE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_SIZE %q: %w", v, err)
		}
		c.CacheSize = size
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		c.CacheTTL = ttl
	}
	return nil
}

// Validate checks required settings and normalizes out-of-range values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.FeedURL)
	if err != nil {
		return fmt.Errorf("FEED_URL is not a valid URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("FEED_URL must be an absolute http(s) URL, got %q", c.FeedURL)
	}
	if c.CacheSize <= 0 {
		c.CacheSize = constants.DefaultCacheSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = time.Duration(constants.DefaultCacheTTL) * time.Minute
	}
	if c.DisplayLocale == "" {
		c.DisplayLocale = constants.DisplayLocales[0]
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
