package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assignstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Asia/Kolkata", cfg.Analysis.Timezone)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Server.RateLimit.Enabled)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  read_timeout: 5s
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "keys absent from the file keep their default")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("ASSIGNSTAT_SERVER_PORT", "7070")
	t.Setenv("ASSIGNSTAT_ANALYSIS_TIMEZONE", "UTC")
	t.Setenv("ASSIGNSTAT_SERVER_RATE_LIMIT_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "UTC", cfg.Analysis.Timezone)
	assert.False(t, cfg.Server.RateLimit.Enabled)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad port", "server:\n  port: 70000\n"},
		{"bad level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
		{"bad timezone", "analysis:\n  timezone: Mars/Olympus\n"},
		{"zero upload limit", "server:\n  max_upload_bytes: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
