package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/geofeed/internal/flagx"
)

// parseFlags populates cfg from command-line flags:
//
//	-a string   API base URL
//	-d string   client state DSN (sqlite path or redis:// URL)
//	-t int      request timeout in seconds
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// components do not cause parse errors.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.StateDSN, "d", cfg.StateDSN, "client state DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -t overrides, so sub-second values from earlier
	// sources survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
