package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultRemoteURL, cfg.RemoteURL)
	assert.Equal(t, defaultAnonKey, cfg.AnonKey)
	assert.Equal(t, "gigmarket.db", cfg.LocalDSN)
}

func TestLoadDerivesRealtimeURL(t *testing.T) {
	t.Setenv("REMOTE_URL", "https://proj.example.co/")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://proj.example.co", cfg.RemoteURL, "trailing slash trimmed")
	assert.Equal(t, "wss://proj.example.co/realtime/v1", cfg.RealtimeURL)
}

func TestLoadExplicitRealtimeURLWins(t *testing.T) {
	t.Setenv("REALTIME_URL", "wss://rt.example.co/stream")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "wss://rt.example.co/stream", cfg.RealtimeURL)
}

func TestProdRejectsDefaultCoordinates(t *testing.T) {
	t.Setenv("APP_ENV", "prod")

	_, err := Load(context.Background())
	assert.Error(t, err, "prod must not run against the shared dev project")

	t.Setenv("REMOTE_URL", "https://real.example.co")
	_, err = Load(context.Background())
	assert.Error(t, err, "anon key still default")

	t.Setenv("REMOTE_ANON_KEY", "real-key")
	_, err = Load(context.Background())
	assert.NoError(t, err)
}
