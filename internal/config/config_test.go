package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/gotvmovies/internal/constants"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"FEED_URL", "DATABASE_PATH", "DISPLAY_LOCALE", "CACHE_SIZE", "CACHE_TTL"} {
		t.Setenv(key, "")
	}
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.json"))
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultFeedURL, cfg.FeedURL)
	assert.Equal(t, constants.DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, time.Duration(constants.DefaultCacheTTL)*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "en", cfg.DisplayLocale)
}

func TestLoadFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("FEED_URL", "https://feed.example.org/movies.json")
	t.Setenv("CACHE_SIZE", "32")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("DISPLAY_LOCALE", "de")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://feed.example.org/movies.json", cfg.FeedURL)
	assert.Equal(t, 32, cfg.CacheSize)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "de", cfg.DisplayLocale)
}

func TestLoadFromFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"FEED_URL": "http://file.example.org/feed", "CACHE_TTL": "2m"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://file.example.org/feed", cfg.FeedURL)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
}

func TestEnvOverridesFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"FEED_URL": "http://file.example.org/feed"}`), 0644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("FEED_URL", "https://env.example.org/feed")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.org/feed", cfg.FeedURL)
}

func TestValidateRejectsBadFeedURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"relative path", "/movies.json"},
		{"missing host", "https://"},
		{"wrong scheme", "ftp://feed.example.org/movies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv("FEED_URL", tt.url)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateNormalizesOutOfRange(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("CACHE_SIZE", "-1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultCacheSize, cfg.CacheSize)
}

func TestInvalidCacheTTL(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("CACHE_TTL", "ten minutes")

	_, err := Load()
	assert.Error(t, err)
}
