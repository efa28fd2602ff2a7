package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"userdir"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	require.Equal(t, "https://reqres.in/api", cfg.APIBaseURL)
	require.NotEmpty(t, cfg.SessionFile)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, time.Second, cfg.SuccessCloseDelay)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	withArgs(t)
	t.Setenv("USERDIR_API_URL", "http://localhost:8080/api")
	t.Setenv("USERDIR_SESSION_TTL", "1h")

	cfg := LoadConfig()

	require.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	require.Equal(t, time.Hour, cfg.SessionTTL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout, "untouched fields keep defaults")
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	withArgs(t, "-a", "http://flags.example/api", "-t", "30")
	t.Setenv("USERDIR_API_URL", "http://env.example/api")

	cfg := LoadConfig()

	require.Equal(t, "http://flags.example/api", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_SessionFileFlag(t *testing.T) {
	withArgs(t, "-f", "/tmp/alt-session.json")

	cfg := LoadConfig()

	require.Equal(t, "/tmp/alt-session.json", cfg.SessionFile)
}
