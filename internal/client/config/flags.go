package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/studentdir/internal/flagx"
)

// parseFlags overlays cfg with -a, -t and -l. Other arguments are filtered
// out first so flags owned by other components do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-l"})

	fs := flag.NewFlagSet("studentdir", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the students API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds (0 = none)")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
