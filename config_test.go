package httpext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.UserAgent)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTPEXT_TIMEOUT", "5s")
	t.Setenv("HTTPEXT_DEBUG", "true")
	t.Setenv("HTTPEXT_USER_AGENT", "svc/2.1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "svc/2.1", cfg.UserAgent)

	c := New(cfg.Options()...)
	assert.Equal(t, 5*time.Second, c.http.Timeout)
	assert.Equal(t, "svc/2.1", c.userAgent)
	_, ok := c.http.Transport.(*debugTransport)
	assert.True(t, ok, "debug transport should be installed")
}
