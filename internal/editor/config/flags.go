package config

import (
	"flag"
	"os"
	"time"

	"github.com/framepeach/framepeach/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   auth service base URL (e.g., "http://127.0.0.1:3000")
//	-p string   SQLite file path for local persistence
//	-i int      autosave interval, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-p", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "e", config.ServerEndpointAddr, "auth service base URL")
	fs.StringVar(&config.ProjectDBPath, "p", config.ProjectDBPath, "project database path")

	autosaveInterval := fs.Int("i", int(config.AutosaveInterval.Seconds()), "autosave_interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AutosaveInterval = time.Duration(*autosaveInterval) * time.Second
}
