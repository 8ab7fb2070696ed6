package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	cfg, err := GetConfig()
	require.NoError(t, err)

	require.Equal(t, "3000", cfg.Server.Port)
	require.Equal(t, "http://localhost:8000", cfg.PredictionService.URL)
	require.Equal(t, 30*time.Second, cfg.PredictionService.Timeout)
	require.Equal(t, 30*time.Minute, cfg.Session.TTL)
	require.Equal(t, 4096, cfg.Session.Capacity)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestGetConfigFromEnv(t *testing.T) {
	t.Setenv("PREDICTION_API_URL", "http://ml:9000")
	t.Setenv("PREDICTION_TIMEOUT", "5s")
	t.Setenv("SESSION_CAPACITY", "16")

	cfg, err := GetConfig()
	require.NoError(t, err)

	require.Equal(t, "http://ml:9000", cfg.PredictionService.URL)
	require.Equal(t, 5*time.Second, cfg.PredictionService.Timeout)
	require.Equal(t, 16, cfg.Session.Capacity)
}

func TestGetConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")

	_, err := GetConfig()
	require.Error(t, err)
}
