package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapler/fleet-records/internal/config"
)

// TestLoad_defaults verifies that the server starts with no configuration at
// all — every value has a working default.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("MAX_BODY_BYTES", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "fleet-records.db", cfg.DataPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, int64(10<<20), cfg.MaxBodyBytes)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_PATH", "/var/lib/fleet/records.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("MAX_BODY_BYTES", "1048576")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "/var/lib/fleet/records.db", cfg.DataPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, int64(1048576), cfg.MaxBodyBytes)
}

// TestLoad_badBodyLimit verifies that a non-numeric or non-positive body
// limit is a configuration error naming the variable.
func TestLoad_badBodyLimit(t *testing.T) {
	for _, v := range []string{"lots", "-1", "0"} {
		t.Setenv("MAX_BODY_BYTES", v)

		_, err := config.Load()

		require.Error(t, err, v)
		require.ErrorContains(t, err, "MAX_BODY_BYTES")
	}
}
