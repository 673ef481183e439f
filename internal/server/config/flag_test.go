package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name: "all flags set",
			args: []string{"cmd", "-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "60"},
			expected: Config{
				EndpointAddr:          "127.0.0.1:9090",
				DatabaseDSN:           "db",
				SecretKey:             "secret",
				TokenValidityDuration: time.Hour,
			},
		},
		{
			name: "unrelated flags are ignored",
			args: []string{"cmd", "-a", ":1234", "-z", "whatever"},
			expected: Config{
				EndpointAddr:          ":1234",
				TokenValidityDuration: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, *config)
		})
	}
}
