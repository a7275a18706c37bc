package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-secret", "s3cr3t", "-ttl", "30",
			"-admin-email", "root@x.com", "-admin-password", "pw", "-l", "debug",
		}, expected: &Config{
			ListenAddr:    "127.0.0.1:9090",
			SecretKey:     "s3cr3t",
			SessionTTL:    30 * time.Minute,
			AdminEmail:    "root@x.com",
			AdminPassword: "pw",
			LogLevel:      "debug",
		}},
		{name: "foreign flags are ignored", args: []string{"cmd", "-ui", "tui", "-a", ":1"},
			expected: &Config{ListenAddr: ":1", SessionTTL: time.Hour}},
		{name: "non-positive ttl", args: []string{"cmd", "-ttl", "0"}, expectPanic: true},
		{name: "bad ttl", args: []string{"cmd", "-ttl", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{SessionTTL: time.Hour}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
