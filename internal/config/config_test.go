package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data/tablero.db", cfg.Database.Path)
	assert.Equal(t, time.Duration(0), cfg.SlotCacheTTL())
	assert.Equal(t, 24*time.Hour, cfg.BackupInterval())
	assert.Equal(t, float64(10), cfg.RateLimitPerSecond())
	assert.Equal(t, 20, cfg.RateLimitBurst())
}

func TestLoad_EnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "localhost:6379")
	path := writeConfig(t, "redis:\n  address: ${TEST_REDIS_ADDR}\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
}

func TestLoad_ExplicitValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
cache:
  slot_ttl_seconds: 45
backup:
  enabled: true
  interval_hours: 6
rate_limit:
  enabled: true
  per_second: 50
  burst: 100
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.SlotCacheTTL())
	assert.True(t, cfg.Backup.Enabled)
	assert.Equal(t, 6*time.Hour, cfg.BackupInterval())
	assert.Equal(t, float64(50), cfg.RateLimitPerSecond())
	assert.Equal(t, 100, cfg.RateLimitBurst())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
