package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "SHUTDOWN_TIMEOUT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"SERVICE_NAME", "APP_ENV", "APP_VERSION", "LOG_LEVEL", "LOG_FORMAT",
		"PROJECTS_API_URL", "CONSOLE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5050", cfg.Server.Port)
	assert.Equal(t, ":5050", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Zero(t, cfg.Server.RateLimitRPS)
	assert.Equal(t, 20, cfg.Server.RateLimitBurst)
	assert.Equal(t, "web-projects", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "http://localhost:5050", cfg.Console.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Console.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("CONSOLE_TIMEOUT", "3s")
	t.Setenv("PROJECTS_API_URL", "http://api.internal:8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 2.5, cfg.Server.RateLimitRPS)
	assert.Equal(t, 4, cfg.Server.RateLimitBurst)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 3*time.Second, cfg.Console.Timeout)
	assert.Equal(t, "http://api.internal:8080", cfg.Console.APIURL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "lots")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Server.RateLimitBurst)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "5050"},
			Log:     LogConfig{Level: "info", Format: "json"},
			Console: ConsoleConfig{APIURL: "http://localhost:5050"},
		}
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.Server.Port = ""
	assert.Error(t, c.Validate())

	c = valid()
	c.Log.Format = "xml"
	assert.Error(t, c.Validate())

	c = valid()
	c.Server.RateLimitRPS = -1
	assert.Error(t, c.Validate())

	c = valid()
	c.Console.APIURL = ""
	assert.Error(t, c.Validate())
}
