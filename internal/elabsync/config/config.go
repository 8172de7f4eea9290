// Package config holds the endpoint settings for a run. The values are
// loaded from the environment once in cmd and handed down explicitly;
// core packages never read the process environment themselves.
package config

import (
	"github.com/kelseyhightower/envconfig"

	apperrors "github.com/elabtools/elabsync/internal/elabsync/errors"
)

// EnvPrefix is prepended to every environment variable name, so the
// full names are ELAB_API_KEY, ELAB_API_HOST_URL and so on.
const EnvPrefix = "elab"

// Config carries the API endpoint settings for a run.
type Config struct {
	APIKey    string `envconfig:"API_KEY"`
	HostURL   string `envconfig:"API_HOST_URL"`
	VerifyTLS bool   `envconfig:"VERIFY_TLS" default:"true"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`
}

// FromEnv loads and validates the configuration from ELAB_* variables.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the required endpoint settings are present.
func (c *Config) Validate() error {
	if c.HostURL == "" {
		return apperrors.ErrEmptyURL
	}
	if c.APIKey == "" {
		return apperrors.ErrMissingAPIKey
	}
	return nil
}
