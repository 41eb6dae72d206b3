package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/staffdesk/internal/flagx"
	"github.com/dmitrijs2005/staffdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	APIKey              string         `json:"api_key"`
	Origin              string         `json:"origin"`
	RPDisplayName       string         `json:"rp_display_name"`
	DatabasePath        string         `json:"database_path"`
	StageDelay          timex.Duration `json:"stage_delay"`
	FailedWindow        timex.Duration `json:"failed_window"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DeviceCredentialID  string         `json:"device_credential_id"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays cfg with the non-empty values of the file named by
// -c/-config. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setString(&cfg.APIKey, jc.APIKey)
	setString(&cfg.Origin, jc.Origin)
	setString(&cfg.RPDisplayName, jc.RPDisplayName)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.DeviceCredentialID, jc.DeviceCredentialID)
	setString(&cfg.LogLevel, jc.LogLevel)

	if !jc.StageDelay.IsZero() {
		cfg.StageDelay = jc.StageDelay.Duration
	}
	if !jc.FailedWindow.IsZero() {
		cfg.FailedWindow = jc.FailedWindow.Duration
	}
	if !jc.RequestTimeout.IsZero() {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if !jc.OnlineCheckInterval.IsZero() {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
