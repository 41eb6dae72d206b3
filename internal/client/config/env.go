package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays STAFFDESK_* variables; a malformed value panics.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
