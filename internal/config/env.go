package config

import (
	"github.com/caarlos0/env/v11"
)

// loadFromEnv overrides configuration with environment variables.
// Only variables that are present replace the file or default values.
func loadFromEnv(config *Config) error {
	return env.ParseWithOptions(config, env.Options{
		Prefix: EnvPrefix,
	})
}

// EnvPrefix is prepended to every env tag, e.g. ENVISYS_SERVER_PORT
const EnvPrefix = "ENVISYS_"
