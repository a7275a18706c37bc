package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
	"github.com/dmitrijs2005/userconsole/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// accept both "24h" strings and integer nanoseconds.
type JsonConfig struct {
	ListenAddr    string         `json:"listen_addr"`
	SecretKey     string         `json:"secret_key"`
	SessionTTL    timex.Duration `json:"session_ttl"`
	AdminEmail    string         `json:"admin_email"`
	AdminPassword string         `json:"admin_password"`
	LogBackend    string         `json:"log_backend"`
	LogLevel      string         `json:"log_level"`
}

// parseJson overlays the file named with -c/-config onto config. Keys
// missing from the file keep their current value. An unreadable or
// invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.ListenAddr, c.ListenAddr)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.AdminEmail, c.AdminEmail)
	setString(&config.AdminPassword, c.AdminPassword)
	setString(&config.LogBackend, c.LogBackend)
	setString(&config.LogLevel, c.LogLevel)
	if c.SessionTTL.Duration > 0 {
		config.SessionTTL = c.SessionTTL.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
