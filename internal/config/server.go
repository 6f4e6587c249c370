// Package config loads the service configuration from defaults, an optional
// YAML file and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	envconfig "todo-api/pkg/config"

	"gopkg.in/yaml.v3"
)

// ServerConfig is the complete runtime configuration of the API process.
type ServerConfig struct {
	App struct {
		Version string `yaml:"version"`
	} `yaml:"app"`

	Server struct {
		Addr              string        `yaml:"addr"`
		ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
		ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
		MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	} `yaml:"log"`

	RateLimit struct {
		RPS   float64 `yaml:"rps"`
		Burst int     `yaml:"burst"`
	} `yaml:"rate_limit"`

	Stats struct {
		Schedule string `yaml:"schedule"`
	} `yaml:"stats"`

	Tracing struct {
		Exporter string `yaml:"exporter"`
	} `yaml:"tracing"`

	Swagger struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"swagger"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *ServerConfig {
	cfg := &ServerConfig{}
	cfg.App.Version = "1.0.0"
	cfg.Server.Addr = ":8080"
	cfg.Server.ReadHeaderTimeout = 10 * time.Second
	cfg.Server.ShutdownTimeout = 5 * time.Second
	cfg.Server.MaxBodyBytes = 1 << 20
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	cfg.RateLimit.RPS = 0
	cfg.RateLimit.Burst = 20
	cfg.Stats.Schedule = "@every 30s"
	cfg.Tracing.Exporter = "none"
	cfg.Swagger.Enabled = true
	return cfg
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment overrides. The result is validated.
func Load(path string) (*ServerConfig, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// loadFile overlays the YAML document at path onto cfg.
// The path parameter is expected to come from a trusted source (environment or CLI).
func (c *ServerConfig) loadFile(path string) error {
	// #nosec G304 -- path is provided by trusted source, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// applyEnv overrides fields whose environment variable is set.
func (c *ServerConfig) applyEnv() {
	c.App.Version = envconfig.GetEnvString("APP_VERSION", c.App.Version)
	c.Server.Addr = envconfig.GetEnvString("HTTP_ADDR", c.Server.Addr)
	c.Server.ReadHeaderTimeout = envconfig.GetEnvDuration("READ_HEADER_TIMEOUT", c.Server.ReadHeaderTimeout)
	c.Server.ShutdownTimeout = envconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Server.MaxBodyBytes = envconfig.GetEnvInt64("MAX_BODY_BYTES", c.Server.MaxBodyBytes)
	c.Log.Level = envconfig.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = envconfig.GetEnvString("LOG_FORMAT", c.Log.Format)
	c.Log.File = envconfig.GetEnvString("LOG_FILE", c.Log.File)
	c.RateLimit.RPS = envconfig.GetEnvFloat("RATE_LIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = envconfig.GetEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)
	c.Stats.Schedule = envconfig.GetEnvString("STATS_SCHEDULE", c.Stats.Schedule)
	c.Tracing.Exporter = envconfig.GetEnvString("TRACE_EXPORTER", c.Tracing.Exporter)
	c.Swagger.Enabled = envconfig.GetEnvBool("SWAGGER_ENABLED", c.Swagger.Enabled)
}

// Validate checks every field and reports all problems at once.
func (c *ServerConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server addr is required"))
	}
	if err := envconfig.ValidatePositiveDuration(c.Server.ReadHeaderTimeout); err != nil {
		errs = append(errs, fmt.Errorf("read header timeout: %w", err))
	}
	if err := envconfig.ValidateDurationRange(c.Server.ShutdownTimeout, time.Second, 5*time.Minute); err != nil {
		errs = append(errs, fmt.Errorf("shutdown timeout: %w", err))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("max body bytes must be positive, got %d", c.Server.MaxBodyBytes))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log level must be one of debug, info, warn, error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log format must be json or text, got %q", c.Log.Format))
	}

	if c.RateLimit.RPS < 0 {
		errs = append(errs, fmt.Errorf("rate limit rps cannot be negative, got %v", c.RateLimit.RPS))
	}
	if c.RateLimit.RPS > 0 {
		if err := envconfig.ValidateIntRange(c.RateLimit.Burst, 1, 100000); err != nil {
			errs = append(errs, fmt.Errorf("rate limit burst: %w", err))
		}
	}

	if err := envconfig.ValidateCronSchedule(c.Stats.Schedule); err != nil {
		errs = append(errs, fmt.Errorf("stats schedule: %w", err))
	}

	switch strings.ToLower(c.Tracing.Exporter) {
	case "none", "stdout":
	default:
		errs = append(errs, fmt.Errorf("trace exporter must be none or stdout, got %q", c.Tracing.Exporter))
	}

	return errors.Join(errs...)
}
