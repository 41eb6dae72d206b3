// Package config loads runtime configuration for the staffdesk console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. STAFFDESK_* environment variables (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the credential store
//	-k string   console api key
//	-o string   origin the relying party id is derived from
//	-n string   relying party display name
//	-f string   path of the local preferences database
//	-d int      stage delay (milliseconds)
//	-w int      failed window (milliseconds)
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-r string   credential id held by this device's authenticator
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations accept strings like "1200ms" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "api_key": "eyJhbGciOi...",
//	  "origin": "https://console.staffdesk.local",
//	  "stage_delay": "1200ms",
//	  "failed_window": "2s"
//	}
package config
