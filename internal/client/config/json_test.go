package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysPresentFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "http://json.example/api",
		"session_ttl": "12h",
		"success_close_delay": "500ms"
	}`)
	withArgs(t, "-c", path)

	cfg := LoadConfig()

	require.Equal(t, "http://json.example/api", cfg.APIBaseURL)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
	require.Equal(t, 500*time.Millisecond, cfg.SuccessCloseDelay)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout, "absent fields keep defaults")
}

func TestParseJson_NoConfigFlagIsNoop(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "https://reqres.in/api", cfg.APIBaseURL)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

	require.Panics(t, func() { LoadConfig() })
}

func TestParseJson_MalformedFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{broken`)
	withArgs(t, "-c", path)

	require.Panics(t, func() { LoadConfig() })
}
