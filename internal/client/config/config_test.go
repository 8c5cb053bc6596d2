package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	assert.Equal(t, "worklane.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("WORKLANE_API_URL", "https://api.worklane.io/api")
	t.Setenv("WORKLANE_DB", "/tmp/worklane.db")
	t.Setenv("WORKLANE_LOG_LEVEL", "debug")
	t.Setenv("WORKLANE_HTTP_TIMEOUT", "5s")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://api.worklane.io/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/worklane.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}
