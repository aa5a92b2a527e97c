package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// BackupConfig controls periodic database snapshots.
type BackupConfig struct {
	Enabled       bool   `yaml:"enabled"`
	IntervalHours int    `yaml:"interval_hours"`
	Path          string `yaml:"path"`
	RetentionDays int    `yaml:"retention_days"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Backup BackupConfig `yaml:"backup"`

	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Cache struct {
		SlotTTLSeconds int `yaml:"slot_ttl_seconds"`
	} `yaml:"cache"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`

	RateLimit struct {
		Enabled   bool    `yaml:"enabled"`
		PerSecond float64 `yaml:"per_second"`
		Burst     int     `yaml:"burst"`
	} `yaml:"rate_limit"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/tablero.db"
	}

	if err = os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SlotCacheTTL returns how long slot listings stay cached.
func (c *Config) SlotCacheTTL() time.Duration {
	if c.Cache.SlotTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Cache.SlotTTLSeconds) * time.Second
}

// BackupInterval returns how often snapshots run.
func (c *Config) BackupInterval() time.Duration {
	if c.Backup.IntervalHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Backup.IntervalHours) * time.Hour
}

// RateLimitPerSecond returns the token refill rate for the API limiter.
func (c *Config) RateLimitPerSecond() float64 {
	if c.RateLimit.PerSecond <= 0 {
		return 10
	}
	return c.RateLimit.PerSecond
}

// RateLimitBurst returns the limiter's bucket size.
func (c *Config) RateLimitBurst() int {
	if c.RateLimit.Burst <= 0 {
		return 20
	}
	return c.RateLimit.Burst
}
