package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGatewayConfig_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("REDIS_HOST", "")
	t.Setenv("OPENROUTER_MODEL", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg, err := LoadGatewayConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "run_block_admissions", cfg.AdmissionChannel)
	assert.Equal(t, 100*time.Millisecond, cfg.PublishInitialBackoff)
	assert.Nil(t, cfg.Redis)
	assert.Empty(t, cfg.ModelDefaults().Model)
}

func TestLoadGatewayConfig_FromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "gateway.env")
	require.NoError(t, os.WriteFile(envFile, []byte("OPENROUTER_MODEL=openai/gpt-4o-mini\nREDIS_PORT=6380\n"), 0o600))

	t.Setenv("ENV_FILE", envFile)
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("OPENROUTER_API_KEY", "sk-default")
	// godotenv does not override variables that are already set, so make
	// sure the file values are the only source.
	os.Unsetenv("OPENROUTER_MODEL")
	os.Unsetenv("REDIS_PORT")
	t.Cleanup(func() {
		os.Unsetenv("OPENROUTER_MODEL")
		os.Unsetenv("REDIS_PORT")
	})

	cfg, err := LoadGatewayConfig()
	require.NoError(t, err)

	defaults := cfg.ModelDefaults()
	assert.Equal(t, "openai/gpt-4o-mini", defaults.Model)
	assert.Equal(t, "sk-default", defaults.APIKey)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, "redis.internal", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
}

func TestLoadGatewayConfig_Invalid(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("REDIS_HOST", "")
	t.Setenv("PUBLISH_INITIAL_BACKOFF_MS", "500")
	t.Setenv("PUBLISH_MAX_BACKOFF_MS", "100")

	_, err := LoadGatewayConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PublishMaxBackoff")
}
