package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Port            string
	MetricsPath     string
	CollectInterval time.Duration
	LogLevel        string
	MegaCliPath     string
}

// fileConfig is the YAML shape of an optional config file. Durations are
// strings so "30s" style values work.
type fileConfig struct {
	Port            string `yaml:"port"`
	MetricsPath     string `yaml:"metrics_path"`
	CollectInterval string `yaml:"collect_interval"`
	LogLevel        string `yaml:"log_level"`
	MegaCliPath     string `yaml:"megacli_path"`
}

// New creates a configuration from defaults, an optional YAML file
// (CONFIG_FILE) and environment variables, in increasing precedence.
func New() (*Config, error) {
	cfg := &Config{
		Port:            "9100",
		MetricsPath:     "/metrics",
		CollectInterval: 30 * time.Second,
		LogLevel:        "info",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.MetricsPath = getEnv("METRICS_PATH", cfg.MetricsPath)
	cfg.CollectInterval = getEnvDuration("COLLECT_INTERVAL", cfg.CollectInterval)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.MegaCliPath = getEnv("MEGACLI_PATH", cfg.MegaCliPath)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config file")
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrap(err, "parsing config file")
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.MetricsPath != "" {
		c.MetricsPath = fc.MetricsPath
	}
	if fc.CollectInterval != "" {
		d, err := time.ParseDuration(fc.CollectInterval)
		if err != nil {
			return errors.Wrap(err, "parsing collect_interval")
		}
		c.CollectInterval = d
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.MegaCliPath != "" {
		c.MegaCliPath = fc.MegaCliPath
	}
	return nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
