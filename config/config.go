package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	HTTP       HTTPConfig
	App        AppConfig
	Commitlint CommitlintConfig

	// Warnings collects env values that failed to parse and fell back to a
	// default. They are logged once the logger exists.
	Warnings []string
	// DotEnvLoaded reports whether a .env file was read.
	DotEnvLoaded bool
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// DatabaseConfig is optional: an empty DSN disables the Postgres readiness check.
type DatabaseConfig struct {
	DSN string
}

// RedisConfig is optional: an empty Addr disables the Redis readiness check.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type HTTPConfig struct {
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

type AppConfig struct {
	ServiceName string
	Environment string
	LogLevel    string
}

type CommitlintConfig struct {
	// ConfigPath points at a .commitlintrc file; empty means the built-in policy.
	ConfigPath  string
	StrictScope bool
}

var (
	validEnvironments = map[string]bool{"development": true, "staging": true, "production": true, "test": true}
	validLogLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

func Load() (*Config, error) {
	cfg := &Config{}

	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err == nil {
		cfg.DotEnvLoaded = true
	}

	cfg.Server = ServerConfig{
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: cfg.getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	cfg.Database = DatabaseConfig{
		DSN: getEnv("DB_DSN", ""),
	}
	cfg.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       cfg.getEnvAsInt("REDIS_DB", 0),
	}
	cfg.HTTP = HTTPConfig{
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitRPS:       cfg.getEnvAsFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:     cfg.getEnvAsInt("RATE_LIMIT_BURST", 40),
	}
	cfg.App = AppConfig{
		ServiceName: getEnv("SERVICE_NAME", "pool-maintenance-app"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}
	cfg.Commitlint = CommitlintConfig{
		ConfigPath:  getEnv("COMMITLINT_CONFIG", ""),
		StrictScope: cfg.getEnvAsBool("COMMITLINT_STRICT_SCOPE", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if !validEnvironments[c.App.Environment] {
		return fmt.Errorf("APP_ENV %q is not one of development, staging, production, test", c.App.Environment)
	}

	if !validLogLevels[c.App.LogLevel] {
		return fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.App.LogLevel)
	}

	if c.HTTP.RateLimitRPS < 0 || c.HTTP.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func (c *Config) getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		c.warnf("invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func (c *Config) getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		c.warnf("invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func (c *Config) getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		c.warnf("invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func (c *Config) getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		c.warnf("invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
