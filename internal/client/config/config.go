package config

import (
	"path/filepath"
	"time"
)

const (
	UIREPL = "repl"
	UITUI  = "tui"
)

// Config holds runtime settings of the console.
type Config struct {
	// Environment names the profile selected with APP_ENV or -e.
	Environment string

	APIURL         string
	PortalURL      string
	RequestTimeout time.Duration

	// StatePath is the SQLite file keeping the session cookies.
	StatePath string

	LogBackend string
	LogLevel   string

	// UI is UIREPL or UITUI.
	UI string
}

// LoadDefaults populates c with the local development profile.
func (c *Config) LoadDefaults() {
	c.Environment = EnvLocal
	c.APIURL = "http://localhost:3001"
	c.PortalURL = "http://localhost:3000"
	c.RequestTimeout = 12 * time.Second
	c.StatePath = filepath.Join(".userconsole", "state.db")
	c.LogBackend = "slog"
	c.LogLevel = "info"
	c.UI = UIREPL
}

// LoadConfig applies defaults, then the environment, an optional JSON file
// and command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
