package config

import (
	"flag"
	"os"
	"time"

	"campuscli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the campus backend
//	-d string   path to the local sqlite database
//	-i int      watch poll interval in seconds
//	-r int      session resolve timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the campus backend")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	pollInterval := fs.Int("i", int(cfg.PollInterval.Seconds()), "watch poll interval (in seconds)")
	resolveTimeout := fs.Int("r", int(cfg.ResolveTimeout.Seconds()), "session resolve timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PollInterval = time.Duration(*pollInterval) * time.Second
	cfg.ResolveTimeout = time.Duration(*resolveTimeout) * time.Second
}
