package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_VERSION", "HTTP_ADDR", "READ_HEADER_TIMEOUT", "SHUTDOWN_TIMEOUT", "MAX_BODY_BYTES",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"STATS_SCHEDULE", "TRACE_EXPORTER", "SWAGGER_ENABLED",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
	assert.Zero(t, cfg.RateLimit.RPS)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, "@every 30s", cfg.Stats.Schedule)
	assert.Equal(t, "none", cfg.Tracing.Exporter)
	assert.True(t, cfg.Swagger.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("APP_VERSION", "2.1.0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("RATE_LIMIT_RPS", "12.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("STATS_SCHEDULE", "*/5 * * * *")
	t.Setenv("TRACE_EXPORTER", "stdout")
	t.Setenv("SWAGGER_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "2.1.0", cfg.App.Version)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 12.5, cfg.RateLimit.RPS)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, "*/5 * * * *", cfg.Stats.Schedule)
	assert.Equal(t, "stdout", cfg.Tracing.Exporter)
	assert.False(t, cfg.Swagger.Enabled)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
app:
  version: "3.0.0"
server:
  addr: "127.0.0.1:8081"
  shutdown_timeout: 15s
log:
  level: warn
  file: /tmp/todo-api.log
rate_limit:
  rps: 100
  burst: 50
stats:
  schedule: "@hourly"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "3.0.0", cfg.App.Version)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/todo-api.log", cfg.Log.File)
	assert.Equal(t, 100.0, cfg.RateLimit.RPS)
	assert.Equal(t, 50, cfg.RateLimit.Burst)
	assert.Equal(t, "@hourly", cfg.Stats.Schedule)

	// untouched keys keep their defaults
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Swagger.Enabled)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "server:\n  addr: \":7000\"\n")
	t.Setenv("HTTP_ADDR", ":7001")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7001", cfg.Server.Addr)
}

func TestLoad_FileErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = Load(writeFile(t, "server: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = Load(writeFile(t, "server:\n  shutdown_timeout: soon\n"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATS_SCHEDULE", "every now and then")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stats schedule")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*ServerConfig) {}},
		{name: "empty addr", mutate: func(c *ServerConfig) { c.Server.Addr = " " }, wantErr: "addr is required"},
		{name: "zero header timeout", mutate: func(c *ServerConfig) { c.Server.ReadHeaderTimeout = 0 }, wantErr: "read header timeout"},
		{name: "shutdown too short", mutate: func(c *ServerConfig) { c.Server.ShutdownTimeout = time.Millisecond }, wantErr: "shutdown timeout"},
		{name: "non-positive body limit", mutate: func(c *ServerConfig) { c.Server.MaxBodyBytes = 0 }, wantErr: "max body bytes"},
		{name: "bad log level", mutate: func(c *ServerConfig) { c.Log.Level = "verbose" }, wantErr: "log level"},
		{name: "bad log format", mutate: func(c *ServerConfig) { c.Log.Format = "xml" }, wantErr: "log format"},
		{name: "negative rps", mutate: func(c *ServerConfig) { c.RateLimit.RPS = -1 }, wantErr: "rps cannot be negative"},
		{name: "zero burst with limiter on", mutate: func(c *ServerConfig) { c.RateLimit.RPS = 1; c.RateLimit.Burst = 0 }, wantErr: "burst"},
		{name: "zero burst with limiter off", mutate: func(c *ServerConfig) { c.RateLimit.Burst = 0 }},
		{name: "bad schedule", mutate: func(c *ServerConfig) { c.Stats.Schedule = "" }, wantErr: "stats schedule"},
		{name: "bad exporter", mutate: func(c *ServerConfig) { c.Tracing.Exporter = "jaeger" }, wantErr: "trace exporter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	cfg.Tracing.Exporter = "zipkin"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
	assert.Contains(t, err.Error(), "trace exporter")
}
