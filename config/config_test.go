package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "LOG_LEVEL", "DB_DSN", "REDIS_ADDR", "REDIS_DB",
		"CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"COMMITLINT_CONFIG", "COMMITLINT_STRICT_SCOPE", "SHUTDOWN_TIMEOUT", "SERVICE_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "pool-maintenance-app", cfg.App.ServiceName)
	assert.Empty(t, cfg.Database.DSN)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
	assert.False(t, cfg.Commitlint.StrictScope)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("COMMITLINT_STRICT_SCOPE", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, 2.5, cfg.HTTP.RateLimitRPS)
	assert.True(t, cfg.Commitlint.StrictScope)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REDIS_DB", "three")
	t.Setenv("COMMITLINT_STRICT_SCOPE", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Redis.DB)
	assert.False(t, cfg.Commitlint.StrictScope)
	assert.Len(t, cfg.Warnings, 2)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080"},
			App:    AppConfig{Environment: "development", LogLevel: "info"},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }},
		{name: "unknown env", mutate: func(c *Config) { c.App.Environment = "qa" }},
		{name: "unknown log level", mutate: func(c *Config) { c.App.LogLevel = "trace" }},
		{name: "negative rps", mutate: func(c *Config) { c.HTTP.RateLimitRPS = -1 }},
		{name: "negative burst", mutate: func(c *Config) { c.HTTP.RateLimitBurst = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
