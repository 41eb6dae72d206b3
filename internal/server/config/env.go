package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays STAFFDESK_* variables. Unset variables leave the field
// untouched; a malformed value panics like the other loaders.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
