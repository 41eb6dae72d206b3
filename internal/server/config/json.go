package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/staffdesk/internal/flagx"
	"github.com/dmitrijs2005/staffdesk/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Durations accept
// both "24h" strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC       string         `json:"endpoint_addr_grpc"`
	DatabaseDSN            string         `json:"database_dsn"`
	SecretKey              string         `json:"secret_key"`
	APIKeyValidityDuration timex.Duration `json:"api_key_validity_duration"`
}

// parseJson loads the file named by -c/-config, if any, and copies every
// non-empty value into config. Read or decode errors panic.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if !c.APIKeyValidityDuration.IsZero() {
		config.APIKeyValidityDuration = c.APIKeyValidityDuration.Duration
	}
}
