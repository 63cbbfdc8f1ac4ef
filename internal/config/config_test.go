package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "https://book.example.com/api"
	cfg.Auth.Token = "tok789"

	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.API.BaseURL, got.API.BaseURL)
	assert.Equal(t, cfg.API.MaxRetries, got.API.MaxRetries)
	assert.Equal(t, cfg.API.BaseDelayMS, got.API.BaseDelayMS)
	assert.InDelta(t, cfg.API.JitterFactor, got.API.JitterFactor, 0.001)
	assert.Equal(t, "tok789", got.Auth.Token)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://localhost:2001/api", cfg.API.BaseURL)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)
	assert.Equal(t, 3, cfg.API.MaxRetries)
	assert.Equal(t, 500, cfg.API.BaseDelayMS)
	assert.InDelta(t, 0.5, cfg.API.JitterFactor, 0.001)
	assert.Empty(t, cfg.Auth.Token)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("KEUTRACK_API_URL", "http://override:9000/api")
	t.Setenv("KEUTRACK_TOKEN", "env-token")

	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, Save(path, Default()))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://override:9000/api", got.API.BaseURL)
	assert.Equal(t, "env-token", got.Auth.Token)
}

func TestClientConfig(t *testing.T) {
	cc := Default().ClientConfig()
	assert.Equal(t, "http://localhost:2001/api", cc.BaseURL)
	assert.Equal(t, 15*time.Second, cc.Timeout)
	assert.Equal(t, 500*time.Millisecond, cc.BaseDelay)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "base_url: http://localhost:2001/api")
	assert.Contains(t, contents, "max_retries: 3")
	assert.Contains(t, contents, "base_delay_ms: 500")
}
