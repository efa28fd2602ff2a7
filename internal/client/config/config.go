// Package config holds runtime settings for the userdir CLI.
//
// Sources are layered, later ones winning: built-in defaults, a JSON file
// (path from -c/-config), environment variables, command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the userdir CLI.
//
// Fields:
//   - APIBaseURL: base URL of the directory REST API.
//   - SessionFile: path of the file holding the session credential.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionTTL: credential lifetime when the token carries no expiry.
//   - SuccessCloseDelay: how long the edit-success confirmation stays up
//     before the edit session auto-closes.
type Config struct {
	APIBaseURL        string
	SessionFile       string
	RequestTimeout    time.Duration
	SessionTTL        time.Duration
	SuccessCloseDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://reqres.in/api"
	c.SessionFile = defaultSessionFile()
	c.RequestTimeout = 10 * time.Second
	c.SessionTTL = 24 * time.Hour
	c.SuccessCloseDelay = time.Second
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".userdir", "session.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
