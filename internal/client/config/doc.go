// Package config loads runtime configuration for the console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults), the local profile.
//  2. Environment (see parseEnv): an optional .env file, then APP_ENV,
//     CONSOLE_API_URL and CONSOLE_LOG_LEVEL.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:3001",
//	  "request_timeout": "12s",
//	  "state_path": ".userconsole/state.db",
//	  "log_backend": "zerolog",
//	  "log_level": "debug",
//	  "ui": "tui"
//	}
package config
