// Package config handles application configuration via environment variables
// and an optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configurable values for the client.
type Config struct {
	Env            string        `mapstructure:"ENV"`
	APIBaseURL     string        `mapstructure:"WELLNESS_API_URL"`
	StateDir       string        `mapstructure:"WELLNESS_STATE_DIR"`
	HTTPTimeout    time.Duration `mapstructure:"HTTP_TIMEOUT"`
	BannerDuration time.Duration `mapstructure:"SUCCESS_BANNER_DURATION"`
}

// Load reads the environment (and .env when present) into a Config.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("WELLNESS_API_URL", "http://localhost:8000/api/v1")
	v.SetDefault("WELLNESS_STATE_DIR", defaultStateDir())
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("SUCCESS_BANNER_DURATION", "3s")

	v.BindEnv("ENV")
	v.BindEnv("WELLNESS_API_URL")
	v.BindEnv("WELLNESS_STATE_DIR")
	v.BindEnv("HTTP_TIMEOUT")
	v.BindEnv("SUCCESS_BANNER_DURATION")

	// Missing .env is fine; env vars alone are enough.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("WELLNESS_API_URL must not be empty")
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	return cfg, nil
}

// IsDev reports whether the client runs in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".wellness"
	}
	return filepath.Join(base, "wellness-portal")
}
