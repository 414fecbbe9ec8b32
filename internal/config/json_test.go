package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllSections(t *testing.T) {
	path := writeJSONFile(t, `{
		"app": {
			"token_sign_key": "k",
			"token_issuer": "iss",
			"token_duration": "90m",
			"admin_users": {"alice": "s:h"},
			"login_rate": 0.5,
			"login_burst": 2,
			"version": "0.9.0"
		},
		"storage": {"db": {"dsn": "postgres://localhost/admin"}},
		"server": {"http_address": ":8080", "grpc_address": ":9090", "request_timeout": "4s"},
		"adapter": {"grpc_address": "gw:9090", "request_timeout": 2000000000, "login_attempts": 2, "add_user_mode": "sync"},
		"workers": {"poll_interval": "25ms", "queue_size": 32}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, map[string]string{"alice": "s:h"}, cfg.App.AdminUsers)
	assert.InDelta(t, 0.5, cfg.App.LoginRate, 1e-9)
	assert.Equal(t, 2, cfg.App.LoginBurst)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "postgres://localhost/admin", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 4*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "gw:9090", cfg.Adapter.GRPCAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Adapter.LoginAttempts)
	assert.Equal(t, 25*time.Millisecond, cfg.Workers.PollInterval)
	assert.Equal(t, 32, cfg.Workers.QueueSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeJSONFile(t, `{"app": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(1500 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(b))
}
