package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO for the environment overlay.
type envConfig struct {
	APIBaseURL        string        `env:"USERDIR_API_URL"`
	SessionFile       string        `env:"USERDIR_SESSION_FILE"`
	RequestTimeout    time.Duration `env:"USERDIR_REQUEST_TIMEOUT"`
	SessionTTL        time.Duration `env:"USERDIR_SESSION_TTL"`
	SuccessCloseDelay time.Duration `env:"USERDIR_SUCCESS_CLOSE_DELAY"`
}

// parseEnv overlays Config with values from USERDIR_* environment
// variables. Unset variables leave the current values alone.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.SessionFile != "" {
		cfg.SessionFile = ec.SessionFile
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.SessionTTL != 0 {
		cfg.SessionTTL = ec.SessionTTL
	}
	if ec.SuccessCloseDelay != 0 {
		cfg.SuccessCloseDelay = ec.SuccessCloseDelay
	}
}
