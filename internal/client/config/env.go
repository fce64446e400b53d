package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAPIURL         = "GEOFEED_API_URL"
	EnvStateDSN       = "GEOFEED_STATE_DSN"
	EnvRequestTimeout = "GEOFEED_REQUEST_TIMEOUT"
	EnvCacheCapacity  = "GEOFEED_CACHE_CAPACITY"
	EnvLogLevel       = "GEOFEED_LOG_LEVEL"

	EnvGoogleClientID    = "GEOFEED_GOOGLE_CLIENT_ID"
	EnvGoogleRedirectURL = "GEOFEED_GOOGLE_REDIRECT_URL"
)

// dotenvPath is the optional file merged into the process environment.
// Variables already present in the environment are not overwritten.
var dotenvPath = ".env"

// parseEnv overlays cfg with GEOFEED_* environment variables. Empty values
// are ignored. The timeout accepts time.ParseDuration syntax.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("load %s: %w", dotenvPath, err))
	}

	if v, ok := lookup(EnvAPIURL); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup(EnvStateDSN); ok {
		cfg.StateDSN = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvGoogleClientID); ok {
		cfg.GoogleClientID = v
	}
	if v, ok := lookup(EnvGoogleRedirectURL); ok {
		cfg.GoogleRedirectURL = v
	}
	if v, ok := lookup(EnvRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvRequestTimeout, err))
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvCacheCapacity); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvCacheCapacity, err))
		}
		cfg.CacheCapacity = n
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
