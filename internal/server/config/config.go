// Package config handles configuration of the stub directory server:
// defaults, an optional JSON overlay and command-line flags.
package config

import "time"

// Config holds runtime settings of the stub server.
//
// SecretKey signs the HS256 session cookie; the defaults are for local
// development only. AdminEmail/AdminPassword seed the first admin account.
type Config struct {
	ListenAddr    string
	SecretKey     string
	SessionTTL    time.Duration
	AdminEmail    string
	AdminPassword string
	LogBackend    string
	LogLevel      string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":3001"
	c.SecretKey = "secretKey"
	c.SessionTTL = 24 * time.Hour
	c.AdminEmail = "admin@example.com"
	c.AdminPassword = "admin1234"
	c.LogBackend = "zap"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
