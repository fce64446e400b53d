package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/geofeed/internal/flagx"
	"github.com/dmitrijs2005/geofeed/internal/timex"
)

// JsonConfig is a DTO used only for JSON unmarshalling. Fields left out of
// the file keep their zero value and do not override earlier sources.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	StateDSN       string         `json:"state_dsn"`
	LogLevel       string         `json:"log_level"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	CacheCapacity  int            `json:"cache_capacity"`

	GoogleClientID    string `json:"google_client_id"`
	GoogleRedirectURL string `json:"google_redirect_url"`
}

// parseJson overlays cfg with the file named by -c or -config. Without
// either flag it does nothing. Read and decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.StateDSN != "" {
		cfg.StateDSN = jc.StateDSN
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CacheCapacity != 0 {
		cfg.CacheCapacity = jc.CacheCapacity
	}
	if jc.GoogleClientID != "" {
		cfg.GoogleClientID = jc.GoogleClientID
	}
	if jc.GoogleRedirectURL != "" {
		cfg.GoogleRedirectURL = jc.GoogleRedirectURL
	}
}
