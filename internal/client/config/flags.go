package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
)

// parseFlags populates Config from command-line flags:
//
//	-a string   backend base url
//	-t int      request timeout (in seconds)
//	-s string   state database path
//	-l string   log level
//	-ui string  repl or tui
//	-e string   environment profile
//
// os.Args is filtered through flagx.FilterArgs first so flags owned by other
// parsers do not fail this one. Invalid input panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s", "-l", "-ui", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	env := fs.String("e", "", "environment profile")
	apiURL := fs.String("a", "", "backend base url")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StatePath, "s", cfg.StatePath, "state database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "user interface: repl or tui")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// the profile goes first so an explicit -a still wins over it
	if *env != "" {
		applyProfile(cfg, *env)
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}
	if *timeout <= 0 {
		panic(fmt.Sprintf("request timeout must be positive, got %d", *timeout))
	}
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second

	if cfg.UI != UIREPL && cfg.UI != UITUI {
		panic(fmt.Sprintf("unknown ui %q", cfg.UI))
	}
}
