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
//	-a string               listen address (e.g. ":3001")
//	-secret string          session signing key
//	-ttl int                session lifetime, minutes
//	-admin-email string     seeded admin email
//	-admin-password string  seeded admin password
//	-l string               log level
//
// Invalid input panics.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-secret", "-ttl", "-admin-email", "-admin-password", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "secret", config.SecretKey, "secret key")
	ttl := fs.Int("ttl", int(config.SessionTTL.Minutes()), "session lifetime (in minutes)")
	fs.StringVar(&config.AdminEmail, "admin-email", config.AdminEmail, "seeded admin email")
	fs.StringVar(&config.AdminPassword, "admin-password", config.AdminPassword, "seeded admin password")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *ttl <= 0 {
		panic(fmt.Sprintf("session lifetime must be positive, got %d", *ttl))
	}
	config.SessionTTL = time.Duration(*ttl) * time.Minute
}
