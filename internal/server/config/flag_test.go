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
			"-a", "127.0.0.1:9090", "-h", ":8081", "-d", "db", "-s", "secret",
			"-u", "http://pay.local", "-t", "30", "-r", "redis://r:6379/0",
		}, expectPanic: false,
			expected: &Config{
				GRPCAddr:        "127.0.0.1:9090",
				HTTPAddr:        ":8081",
				DatabaseDSN:     "db",
				TokenSecret:     "secret",
				CheckoutBaseURL: "http://pay.local",
				CheckoutTTL:     30 * time.Minute,
				RedisURL:        "redis://r:6379/0",
			}},
		{name: "bad ttl", args: []string{"cmd", "-t", "x"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
