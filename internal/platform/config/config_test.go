package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.PACTestMode)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, time.Hour, cfg.SATSyncInterval)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, "6-M", cfg.SATSyncRateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.APIKeys)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "Memory")
	t.Setenv("API_KEYS", "scheduler:k1, cli:k2")
	t.Setenv("SAT_SYNC_INTERVAL", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("PAC_TEST_MODE", "false")
	t.Setenv("PAC_URL", "https://pac.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, map[string]string{"k1": "scheduler", "k2": "cli"}, cfg.APIKeys)
	assert.Equal(t, 15*time.Minute, cfg.SATSyncInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.PACTestMode)
	assert.Equal(t, "https://pac.example", cfg.PACURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"STORAGE_BACKEND": "mongo"}},
		{"bad duration", map[string]string{"STORAGE_BACKEND": "memory", "SAT_SYNC_INTERVAL": "soon"}},
		{"bad api key", map[string]string{"STORAGE_BACKEND": "memory", "API_KEYS": "nokey"}},
		{"bad sat sync rate", map[string]string{"STORAGE_BACKEND": "memory", "SAT_SYNC_RATE_LIMIT": "often"}},
		{"live pac without url", map[string]string{"STORAGE_BACKEND": "memory", "PAC_TEST_MODE": "false"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
