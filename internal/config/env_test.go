package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("APP_TOKEN_ISSUER", "appforge-identity")
	t.Setenv("APP_MAX_API_KEYS", "7")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/console")
	t.Setenv("STORAGE_REDIS_ADDRESS", "localhost:6379")
	t.Setenv("SERVER_ADDRESS", "localhost:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("CONSUMER_API_PREFIX", "https://consumer.internal/v1")
	t.Setenv("CONSUMER_API_TOKEN", "consumer-secret")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "appforge-identity", cfg.App.TokenIssuer)
	assert.Equal(t, 7, cfg.App.MaxAPIKeys)
	assert.Equal(t, "postgres://localhost:5432/console", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://consumer.internal/v1", cfg.Consumer.APIPrefix)
	assert.Equal(t, "consumer-secret", cfg.Consumer.Token)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("APP_MAX_API_KEYS", "lots")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
