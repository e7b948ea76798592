package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7777", cfg.Server.BaseURL)
	assert.Equal(t, 10, cfg.Socket.ReconnectAttempts)
	assert.Equal(t, time.Second, cfg.Socket.ReconnectDelay())
	assert.Equal(t, 20*time.Second, cfg.Socket.Handshake())
	assert.Equal(t, 5*time.Second, cfg.Auth.CheckTimeout())
	assert.Equal(t, 5*time.Minute, cfg.Auth.CheckThrottle())
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  base_url: https://api.devtinder.dev\nsocket:\n  reconnect_attempts: 3\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.devtinder.dev", cfg.Server.BaseURL)
	assert.Equal(t, 3, cfg.Socket.ReconnectAttempts)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("DEVTINDER_API_URL", "https://override.example")
	t.Setenv("DEVTINDER_WS_URL", "wss://override.example/ws")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://override.example", cfg.Server.BaseURL)
	assert.Equal(t, "wss://override.example/ws", cfg.Socket.URL)
}
