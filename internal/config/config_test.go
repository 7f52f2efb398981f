package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "REDIS_URL", "ENVIRONMENT", "STORAGE", "CACHE_TTL", "CORS_ORIGINS", "EVENTS_ENABLED", "EVENTS_PUBLISHER", "KAFKA_BROKERS", "SESSION_TOPIC"} {
		// Setenv restores the original value on cleanup; godotenv skips keys
		// that exist even when empty, so they are unset for the test.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_DefaultsWithoutDotEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.RedisURL)
	assert.False(t, cfg.Events.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_DotEnvAndOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE=memory\nCACHE_TTL=5m\n"), 0o600))

	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://casm.example.org")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://casm.example.org"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	t.Setenv("STORAGE", "sqlite")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("STORAGE", "")
	t.Setenv("CACHE_TTL", "soon")
	_, err = LoadConfig()
	assert.Error(t, err)

	t.Setenv("CACHE_TTL", "")
	t.Setenv("EVENTS_ENABLED", "maybe")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestEventConfig_CreateEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := EventConfig{Enabled: false, Publisher: "kafka"}
	pub, err := cfg.CreateEventPublisher(logger)
	require.NoError(t, err)
	assert.IsType(t, &events.MockEventPublisher{}, pub)

	cfg = EventConfig{Enabled: true, Publisher: "unknown"}
	pub, err = cfg.CreateEventPublisher(logger)
	require.NoError(t, err)
	assert.IsType(t, &events.MockEventPublisher{}, pub)

	cfg = EventConfig{KafkaBrokers: "a:9092, b:9092"}
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.GetKafkaBrokers())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
