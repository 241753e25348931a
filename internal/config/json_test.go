package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	t.Run("full config file", func(t *testing.T) {
		path := writeTempJSON(t, `{
			"app": {
				"token_sign_key": "secret",
				"token_issuer": "appforge-identity",
				"max_api_keys": 5,
				"version": "v1.0.0"
			},
			"storage": {
				"db": {"dsn": "postgres://localhost:5432/console"},
				"redis": {"address": "localhost:6379", "db": 1}
			},
			"server": {
				"http_address": "localhost:8080",
				"request_timeout": "30s"
			},
			"consumer": {
				"api_prefix": "https://consumer.internal/v1",
				"api_token": "consumer-secret",
				"request_timeout": "10s"
			}
		}`)

		cfg, err := parseJSON(path)
		require.NoError(t, err)

		assert.Equal(t, "secret", cfg.App.TokenSignKey)
		assert.Equal(t, 5, cfg.App.MaxAPIKeys)
		assert.Equal(t, "postgres://localhost:5432/console", cfg.Storage.DB.DSN)
		assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
		assert.Equal(t, 1, cfg.Storage.Redis.DB)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "https://consumer.internal/v1", cfg.Consumer.APIPrefix)
		assert.Equal(t, 10*time.Second, cfg.Consumer.RequestTimeout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeTempJSON(t, `{"app":`)

		_, err := parseJSON(path)
		assert.Error(t, err)
	})
}

func TestDurationUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", raw: `"1h"`, want: time.Hour},
		{name: "seconds string", raw: `"45s"`, want: 45 * time.Second},
		{name: "numeric nanoseconds", raw: `1000000000`, want: time.Second},
		{name: "invalid string", raw: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
