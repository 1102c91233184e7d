// Package config loads UlcerWise settings from defaults, an optional YAML
// file and ULCERWISE_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/reminder"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. ULCERWISE_ADVISORY_MODEL.
const EnvPrefix = "ULCERWISE"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for UlcerWise.
type Config struct {
	Advisory  AdvisoryConfig  `mapstructure:"advisory"`
	Log       LogConfig       `mapstructure:"log"`
	Reminders RemindersConfig `mapstructure:"reminders"`
	Timezone  string          `mapstructure:"timezone"`
}

// AdvisoryConfig holds the text-generation service settings.
type AdvisoryConfig struct {
	APIKey            string `mapstructure:"api_key"`
	Endpoint          string `mapstructure:"endpoint"`
	Model             string `mapstructure:"model"`
	TimeoutMs         int    `mapstructure:"timeout_ms"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute"`
	BreakerFailures   int    `mapstructure:"breaker_failures"`
	BreakerCooldownMs int    `mapstructure:"breaker_cooldown_ms"`
	LogCalls          bool   `mapstructure:"log_calls"`
}

// LogConfig holds logger settings. An empty File means no log file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// RemindersConfig holds the daily reminder schedule.
type RemindersConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// DefaultDir is where the config file and logs live by default.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ulcerwise"
	}
	return filepath.Join(home, ".ulcerwise")
}

// DefaultPath is the config file read when none is given.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load reads configuration. A missing file is not an error; a malformed
// one is.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath == "" {
		configPath = DefaultPath()
	}
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if strings.TrimSpace(cfg.Advisory.APIKey) == "" {
		cfg.Advisory.APIKey = firstEnv("GEMINI_API_KEY", "API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := advisory.DefaultConfig()
	v.SetDefault("advisory.api_key", "")
	v.SetDefault("advisory.endpoint", d.Endpoint)
	v.SetDefault("advisory.model", d.Model)
	v.SetDefault("advisory.timeout_ms", int(d.Timeout/time.Millisecond))
	v.SetDefault("advisory.requests_per_minute", d.RequestsPerMinute)
	v.SetDefault("advisory.breaker_failures", int(d.BreakerFailures))
	v.SetDefault("advisory.breaker_cooldown_ms", int(d.BreakerCooldown/time.Millisecond))
	v.SetDefault("advisory.log_calls", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("reminders.enabled", true)
	v.SetDefault("reminders.schedule", reminder.DefaultSchedule)

	v.SetDefault("timezone", "Local")
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks value ranges and the time zone name.
func (c *Config) Validate() error {
	if c.Advisory.TimeoutMs <= 0 {
		return fmt.Errorf("%w: advisory.timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.Advisory.RequestsPerMinute < 0 {
		return fmt.Errorf("%w: advisory.requests_per_minute must not be negative", ErrInvalidConfig)
	}
	if c.Advisory.BreakerFailures < 1 {
		return fmt.Errorf("%w: advisory.breaker_failures must be at least 1", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Advisory.Endpoint) == "" {
		return fmt.Errorf("%w: advisory.endpoint is required", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

// AdvisoryClientConfig converts to the advisory package's Config.
func (c *Config) AdvisoryClientConfig() advisory.Config {
	ac := advisory.DefaultConfig()
	ac.APIKey = strings.TrimSpace(c.Advisory.APIKey)
	ac.Endpoint = c.Advisory.Endpoint
	ac.Model = c.Advisory.Model
	ac.Timeout = time.Duration(c.Advisory.TimeoutMs) * time.Millisecond
	ac.RequestsPerMinute = c.Advisory.RequestsPerMinute
	ac.BreakerFailures = uint32(c.Advisory.BreakerFailures)
	ac.BreakerCooldown = time.Duration(c.Advisory.BreakerCooldownMs) * time.Millisecond
	ac.LogCalls = c.Advisory.LogCalls
	return ac
}
