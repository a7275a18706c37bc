package config

import (
	"os"

	"github.com/joho/godotenv"
)

const EnvLocal = "local"

type profile struct {
	apiURL    string
	portalURL string
}

var profiles = map[string]profile{
	EnvLocal: {apiURL: "http://localhost:3001", portalURL: "http://localhost:3000"},
}

// parseEnv overlays Config with environment variables, after loading an
// optional .env file from the working directory. Variables already set in
// the process environment are not overridden by .env.
//
//	APP_ENV            profile name (local)
//	CONSOLE_API_URL    backend base url
//	CONSOLE_LOG_LEVEL  debug|info|warn|error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if env := os.Getenv("APP_ENV"); env != "" {
		applyProfile(cfg, env)
	}
	if v := os.Getenv("CONSOLE_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("CONSOLE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// applyProfile switches to a named profile. Unknown names only change
// Environment.
func applyProfile(cfg *Config, env string) {
	cfg.Environment = env
	if p, ok := profiles[env]; ok {
		cfg.APIURL = p.apiURL
		cfg.PortalURL = p.portalURL
	}
}
