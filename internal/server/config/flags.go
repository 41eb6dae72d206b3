package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   api key HMAC secret
//	-t int      api key validity, hours (0 = no expiry)
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	validity := fs.Int("t", int(config.APIKeyValidityDuration.Hours()), "api_key_validity_duration (in hours)")

	flagx.ParseOwned(fs)

	config.APIKeyValidityDuration = time.Duration(*validity) * time.Hour
}
