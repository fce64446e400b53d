// Package config loads runtime configuration for the geofeed client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after merging an optional .env file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Environment
//
//	GEOFEED_API_URL          API base URL
//	GEOFEED_STATE_DSN        client state DSN
//	GEOFEED_REQUEST_TIMEOUT  request timeout, e.g. "15s"
//	GEOFEED_CACHE_CAPACITY   max cached queries
//	GEOFEED_LOG_LEVEL        debug, info, warn or error
//
// Supported flags
//
//	-a string   API base URL
//	-d string   client state DSN
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "10s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "state_dsn": "redis://localhost:6379/0",
//	  "request_timeout": "10s",
//	  "cache_capacity": 100,
//	  "log_level": "debug"
//	}
package config
