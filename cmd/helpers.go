package cmd

import (
	"github.com/joho/godotenv"

	"github.com/elabtools/elabsync/internal/elabsync/config"
	"github.com/elabtools/elabsync/internal/elabsync/elabapi"
)

// initClient loads the endpoint configuration from the environment and
// builds an API client. A .env file next to the working directory is
// honored, matching how the import hosts are usually provisioned.
func initClient(insecure bool) (*elabapi.Client, error) {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	var opts []elabapi.Option
	if insecure || !cfg.VerifyTLS {
		opts = append(opts, elabapi.WithInsecureTLS())
	}
	if cfg.Debug {
		opts = append(opts, elabapi.WithDebug())
	}

	return elabapi.Init(cfg.HostURL, cfg.APIKey, opts...)
}
