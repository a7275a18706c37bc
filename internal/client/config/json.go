package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
	"github.com/dmitrijs2005/userconsole/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// use timex.Duration, so "12s" and integer nanoseconds both work.
type JsonConfig struct {
	APIURL         string         `json:"api_url"`
	PortalURL      string         `json:"portal_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StatePath      string         `json:"state_path"`
	LogBackend     string         `json:"log_backend"`
	LogLevel       string         `json:"log_level"`
	UI             string         `json:"ui"`
}

// parseJson overlays Config with the file named by -c or -config. Only the
// keys present in the file are applied. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.APIURL, jc.APIURL)
	setIf(&cfg.PortalURL, jc.PortalURL)
	setIf(&cfg.StatePath, jc.StatePath)
	setIf(&cfg.LogBackend, jc.LogBackend)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.UI, jc.UI)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
