package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "interntrack.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "@hourly", cfg.Alerts.Schedule)
	require.Equal(t, "stdio", cfg.Transport.Mode)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INTERNTRACK_SERVER_PORT", "9090")
	t.Setenv("INTERNTRACK_DB_PATH", "/tmp/test.db")
	t.Setenv("INTERNTRACK_ALERT_SCHEDULE", "@every 5m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/test.db", cfg.DB.Path)
	require.Equal(t, "@every 5m", cfg.Alerts.Schedule)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("INTERNTRACK_SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("server:\n  port: 7070\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("INTERNTRACK_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Log.Level)

	// Defaults survive for keys the file omits
	require.Equal(t, "interntrack.db", cfg.DB.Path)
}
