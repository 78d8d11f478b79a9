package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceName string

	HTTPPort           int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	MaxRequestBodySize int

	CommissionRate float64

	LogLevel  string
	LogFormat string

	MetricsNamespace string
}

type configFile struct {
	Service struct {
		Name               string `yaml:"name"`
		HTTPPort           int    `yaml:"http_port"`
		ReadTimeoutSecs    int    `yaml:"read_timeout_seconds"`
		WriteTimeoutSecs   int    `yaml:"write_timeout_seconds"`
		MaxRequestBodySize int    `yaml:"max_request_body_bytes"`
	} `yaml:"service"`
	Commission struct {
		Rate *float64 `yaml:"rate"`
	} `yaml:"commission"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Metrics struct {
		Namespace string `yaml:"namespace"`
	} `yaml:"metrics"`
}

func Default() Config {
	return Config{
		ServiceName:        "commission-engine",
		HTTPPort:           8080,
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
		MaxRequestBodySize: 64 << 20,
		CommissionRate:     0.05,
		LogLevel:           "info",
		LogFormat:          "json",
		MetricsNamespace:   "commission_engine",
	}
}

// Load layers defaults, the YAML file at path and environment variables, in
// that order. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		applyFile(&cfg, f)
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg.ServiceName = envOrDefault("SERVICE_NAME", cfg.ServiceName)
	cfg.HTTPPort = envInt("PORT", cfg.HTTPPort)
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.ReadTimeout = time.Duration(envInt("READ_TIMEOUT_SECONDS", int(cfg.ReadTimeout.Seconds()))) * time.Second
	cfg.WriteTimeout = time.Duration(envInt("WRITE_TIMEOUT_SECONDS", int(cfg.WriteTimeout.Seconds()))) * time.Second
	cfg.MaxRequestBodySize = envInt("MAX_REQUEST_BODY_BYTES", cfg.MaxRequestBodySize)
	cfg.CommissionRate = envFloat("COMMISSION_RATE", cfg.CommissionRate)
	cfg.LogLevel = strings.ToLower(envOrDefault("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(envOrDefault("LOG_FORMAT", cfg.LogFormat))
	cfg.MetricsNamespace = envOrDefault("METRICS_NAMESPACE", cfg.MetricsNamespace)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, f configFile) {
	if f.Service.Name != "" {
		cfg.ServiceName = f.Service.Name
	}
	if f.Service.HTTPPort > 0 {
		cfg.HTTPPort = f.Service.HTTPPort
	}
	if f.Service.ReadTimeoutSecs > 0 {
		cfg.ReadTimeout = time.Duration(f.Service.ReadTimeoutSecs) * time.Second
	}
	if f.Service.WriteTimeoutSecs > 0 {
		cfg.WriteTimeout = time.Duration(f.Service.WriteTimeoutSecs) * time.Second
	}
	if f.Service.MaxRequestBodySize > 0 {
		cfg.MaxRequestBodySize = f.Service.MaxRequestBodySize
	}
	if f.Commission.Rate != nil {
		cfg.CommissionRate = *f.Commission.Rate
	}
	if f.Log.Level != "" {
		cfg.LogLevel = f.Log.Level
	}
	if f.Log.Format != "" {
		cfg.LogFormat = f.Log.Format
	}
	if f.Metrics.Namespace != "" {
		cfg.MetricsNamespace = f.Metrics.Namespace
	}
}

func (c Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTPPort)
	}
	if c.CommissionRate < 0 || c.CommissionRate > 1 {
		return fmt.Errorf("commission rate %v outside [0, 1]", c.CommissionRate)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
