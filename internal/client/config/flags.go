package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags registered here are read from os.Args; see the package
// documentation for the list.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "console api key")
	fs.StringVar(&cfg.Origin, "o", cfg.Origin, "console origin")
	fs.StringVar(&cfg.RPDisplayName, "n", cfg.RPDisplayName, "relying party display name")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "local database file")
	fs.StringVar(&cfg.DeviceCredentialID, "r", cfg.DeviceCredentialID, "credential id held by this device")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	stageDelay := fs.Int("d", int(cfg.StageDelay.Milliseconds()), "stage delay (in milliseconds)")
	failedWindow := fs.Int("w", int(cfg.FailedWindow.Milliseconds()), "failed window (in milliseconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	flagx.ParseOwned(fs)

	cfg.StageDelay = time.Duration(*stageDelay) * time.Millisecond
	cfg.FailedWindow = time.Duration(*failedWindow) * time.Millisecond
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
