package config

import "time"

// Config holds runtime settings for the geofeed client.
type Config struct {
	APIBaseURL     string
	StateDSN       string
	LogLevel       string
	RequestTimeout time.Duration
	CacheCapacity  int

	// Google sign-in. Without a client ID the consent URL is not printed and
	// login-google only accepts a code obtained elsewhere.
	GoogleClientID    string
	GoogleRedirectURL string
}

// LoadDefaults populates c with the values used when nothing else is set.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.StateDSN = "geofeed.db"
	c.LogLevel = "info"
	c.RequestTimeout = 10 * time.Second
	c.CacheCapacity = 100
}

// LoadConfig builds a Config from defaults, then the environment (including
// an optional .env file), then a JSON file, then command-line flags. Later
// sources take precedence. Malformed values panic.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
