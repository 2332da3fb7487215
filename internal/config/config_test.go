package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, DefaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, 5*1024*1024, cfg.Storage.QuotaBytes)
	assert.Equal(t, "holiday-planner:", cfg.Redis.KeyPrefix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.Log.Format)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("STORAGE_KEY", "plans-v2")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("SERVER_PORT", "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "plans-v2", cfg.Storage.Key)
	assert.Equal(t, "cache", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("STORAGE_QUOTA_BYTES", "lots")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
