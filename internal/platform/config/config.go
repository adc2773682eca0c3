// Package config provides configuration loading and validation for the task
// manager server and CLI.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Log         LogConfig         `koanf:"log"`
	Client      ClientConfig      `koanf:"client"`
	Telemetry   TelemetryConfig   `koanf:"telemetry"`
	Persistence PersistenceConfig `koanf:"persistence"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the HTTP client used by the remote task
// repository.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero rate disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Persistence drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverMySQL  = "mysql"
	DriverRemote = "remote"
)

// PersistenceConfig selects where task snapshots are stored. A positive
// CacheTTL keeps the last loaded or saved sequence for that long, serving
// loads from it and skipping saves that would not change it.
type PersistenceConfig struct {
	Driver      string        `koanf:"driver"`
	SaveTimeout time.Duration `koanf:"save_timeout"`
	CacheTTL    time.Duration `koanf:"cache_ttl"`

	File  FileConfig  `koanf:"file"`
	MySQL MySQLConfig `koanf:"mysql"`
}

// FileConfig holds the JSON file repository settings.
type FileConfig struct {
	Path string `koanf:"path"`
}

// MySQLConfig holds the MySQL repository settings.
type MySQLConfig struct {
	DSN             string        `koanf:"dsn"`
	Table           string        `koanf:"table"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}
