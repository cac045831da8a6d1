package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "DATABASE_DSN", "CORS_ALLOWED_ORIGINS", "LOGS_DIRECTORY",
		"REQUEST_TIMEOUT", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, defaultDSN, cfg.DatabaseDSN)
	assert.Equal(t, "./logs", cfg.LogsDirectory)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_DSN", "host=db user=senvo dbname=senvo port=5432")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "host=db user=senvo dbname=senvo port=5432", cfg.DatabaseDSN)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 50, cfg.DBMaxOpenConns)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
