package config

import (
	"flag"
	"os"
	"time"

	"github.com/gestorverde/gestorverde/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   base URL of the backend API (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-p int      page size for list requests (default from Config)
//	-d string   path to the token database file (default from Config)
//
// Only these flags are considered; other arguments are filtered out with
// flagx.FilterArgs so the config parser never trips over flags owned
// elsewhere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-t", "-p", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "s", cfg.APIBaseURL, "base URL of the backend API")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "list page size")
	fs.StringVar(&cfg.TokenDBPath, "d", cfg.TokenDBPath, "path to the token database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
