package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"API_KEY", "GEMINI_API_KEY",
		"ULCERWISE_ADVISORY_API_KEY", "ULCERWISE_ADVISORY_MODEL",
		"ULCERWISE_ADVISORY_TIMEOUT_MS", "ULCERWISE_TIMEZONE",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "gemini-3-flash-preview", cfg.Advisory.Model)
	assert.Equal(t, 10000, cfg.Advisory.TimeoutMs)
	assert.Empty(t, cfg.Advisory.APIKey)
	assert.Equal(t, "0 9 * * *", cfg.Reminders.Schedule)
	assert.True(t, cfg.Reminders.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)

	ac := cfg.AdvisoryClientConfig()
	assert.False(t, ac.Configured())
	assert.Equal(t, 10*time.Second, ac.Timeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
advisory:
  api_key: from-file
  model: gemini-file
  timeout_ms: 2500
timezone: Africa/Accra
`)
	t.Setenv("ULCERWISE_ADVISORY_MODEL", "gemini-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Advisory.APIKey)
	assert.Equal(t, "gemini-env", cfg.Advisory.Model)
	assert.Equal(t, 2500, cfg.Advisory.TimeoutMs)
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Africa/Accra", loc.String())
}

func TestLoad_BareCredentialFallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "bare")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "bare", cfg.Advisory.APIKey)

	t.Setenv("GEMINI_API_KEY", "gemini")
	cfg, err = Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Advisory.APIKey)

	t.Setenv("ULCERWISE_ADVISORY_API_KEY", "prefixed")
	cfg, err = Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.Advisory.APIKey)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "advisory: [unclosed\n")

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_UnknownTimezone(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "timezone: Mars/Olympus\n")

	_, err := Load(path)

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	bad := *cfg
	bad.Advisory.TimeoutMs = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)

	bad = *cfg
	bad.Advisory.BreakerFailures = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)

	bad = *cfg
	bad.Advisory.Endpoint = " "
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)
}
