package config

import "time"

// Config holds runtime settings for the staffdesk console.
//
// Fields:
//   - ServerEndpointAddr: host:port of the credential store gRPC endpoint.
//   - APIKey: key issued by the admin tool, sent with every store call.
//   - Origin: console origin; its host is the relying party id.
//   - RPDisplayName: relying party name shown by authenticators.
//   - DatabasePath: SQLite file holding local preferences.
//   - StageDelay: pause between visible password-path stages.
//   - FailedWindow: how long a failed biometric attempt stays visible.
//   - RequestTimeout: per-call deadline for store requests.
//   - OnlineCheckInterval: how often the console probes store reachability.
//   - DeviceCredentialID: base64url id of the credential this device holds;
//     empty means the device has no authenticator.
//   - LogLevel: slog level name.
type Config struct {
	ServerEndpointAddr  string        `env:"STAFFDESK_SERVER_ADDR"`
	APIKey              string        `env:"STAFFDESK_API_KEY"`
	Origin              string        `env:"STAFFDESK_ORIGIN"`
	RPDisplayName       string        `env:"STAFFDESK_RP_NAME"`
	DatabasePath        string        `env:"STAFFDESK_DATABASE_PATH"`
	StageDelay          time.Duration `env:"STAFFDESK_STAGE_DELAY"`
	FailedWindow        time.Duration `env:"STAFFDESK_FAILED_WINDOW"`
	RequestTimeout      time.Duration `env:"STAFFDESK_REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"STAFFDESK_ONLINE_CHECK_INTERVAL"`
	DeviceCredentialID  string        `env:"STAFFDESK_DEVICE_CREDENTIAL_ID"`
	LogLevel            string        `env:"STAFFDESK_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.Origin = "https://console.staffdesk.local"
	c.RPDisplayName = "Staffdesk"
	c.DatabasePath = "staffdesk.db"
	c.StageDelay = 1200 * time.Millisecond
	c.FailedWindow = 2 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
