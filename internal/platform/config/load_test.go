package config_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/go-task-manager/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_PersistenceSection(t *testing.T) {
	t.Chdir("../../..")

	local, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}
	if local.Persistence.Driver != config.DriverFile {
		t.Errorf("Persistence.Driver = %q, want %q", local.Persistence.Driver, config.DriverFile)
	}
	if local.Persistence.File.Path != "data/tasks.local.json" {
		t.Errorf("Persistence.File.Path = %q, want data/tasks.local.json", local.Persistence.File.Path)
	}
	if local.Persistence.SaveTimeout != 5*time.Second {
		t.Errorf("Persistence.SaveTimeout = %v, want 5s (from base)", local.Persistence.SaveTimeout)
	}

	prod, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}
	if prod.Persistence.Driver != config.DriverMySQL {
		t.Errorf("Persistence.Driver = %q, want %q", prod.Persistence.Driver, config.DriverMySQL)
	}
	if prod.Persistence.CacheTTL != 5*time.Minute {
		t.Errorf("Persistence.CacheTTL = %v, want 5m", prod.Persistence.CacheTTL)
	}
	if prod.Persistence.MySQL.Table != "tasks" {
		t.Errorf("Persistence.MySQL.Table = %q, want \"tasks\" (from base)", prod.Persistence.MySQL.Table)
	}
}

func TestLoad_EnvOverridePersistenceDriver(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_PERSISTENCE_DRIVER", "memory")
	t.Setenv("APP_PERSISTENCE_SAVE_TIMEOUT", "750ms")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Persistence.Driver != config.DriverMemory {
		t.Errorf("Persistence.Driver = %q, want %q (env override)", cfg.Persistence.Driver, config.DriverMemory)
	}
	if cfg.Persistence.SaveTimeout != 750*time.Millisecond {
		t.Errorf("Persistence.SaveTimeout = %v, want 750ms (env override)", cfg.Persistence.SaveTimeout)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

func TestValidate_Persistence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*config.PersistenceConfig)
		wantErr bool
	}{
		{"file with path", func(*config.PersistenceConfig) {}, false},
		{"memory", func(p *config.PersistenceConfig) { p.Driver = config.DriverMemory }, false},
		{"remote", func(p *config.PersistenceConfig) { p.Driver = config.DriverRemote }, false},
		{"unknown driver", func(p *config.PersistenceConfig) { p.Driver = "sqlite" }, true},
		{"file without path", func(p *config.PersistenceConfig) { p.File.Path = "" }, true},
		{"mysql without dsn", func(p *config.PersistenceConfig) { p.Driver = config.DriverMySQL }, true},
		{"mysql with dsn", func(p *config.PersistenceConfig) {
			p.Driver = config.DriverMySQL
			p.MySQL.DSN = "u:p@tcp(localhost:3306)/tasks"
		}, false},
		{"zero save timeout", func(p *config.PersistenceConfig) { p.SaveTimeout = 0 }, true},
		{"negative cache ttl", func(p *config.PersistenceConfig) { p.CacheTTL = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validBaseConfig()
			tt.modify(&cfg.Persistence)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RateLimitBurst(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5, BurstSize: 0}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for rate limit without burst")
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Persistence: config.PersistenceConfig{
			Driver:      config.DriverFile,
			SaveTimeout: 5 * time.Second,
			File:        config.FileConfig{Path: "data/tasks.json"},
			MySQL:       config.MySQLConfig{Table: "tasks"},
		},
	}
}
