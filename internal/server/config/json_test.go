package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_LoadsFromFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr":           "www.example:9000",
		"database_dsn":            "postgres://example/tasks",
		"secret_key":              "my_secret_key",
		"token_validity_duration": "12h",
	})
	os.Args = []string{"testbin", "-config", path}

	cfg := &Config{}
	parseJson(cfg)

	assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
	assert.Equal(t, "postgres://example/tasks", cfg.DatabaseDSN)
	assert.Equal(t, "my_secret_key", cfg.SecretKey)
	assert.Equal(t, 12*time.Hour, cfg.TokenValidityDuration)
}

func Test_parseJson_NoFlagLeavesConfigUntouched(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := &Config{
		EndpointAddr:          "defaults:1234",
		DatabaseDSN:           "dsn",
		SecretKey:             "key",
		TokenValidityDuration: 2 * time.Hour,
	}
	parseJson(cfg)

	assert.Equal(t, "defaults:1234", cfg.EndpointAddr)
	assert.Equal(t, "dsn", cfg.DatabaseDSN)
	assert.Equal(t, "key", cfg.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
}

func Test_parseJson_PartialFileKeepsOtherFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{"secret_key": "overridden"})
	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "overridden", cfg.SecretKey)
	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
}

func Test_parseJson_MissingFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-config", "/does/not/exist.json"}

	require.Panics(t, func() { parseJson(&Config{}) })
}
