// Package config loads the service configuration from an optional YAML file
// plus INVENTORY_-prefixed environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/shelfwatch/inventory-screen/internal/view"
)

// Operator is a screen user allowed to log in. Passwords are stored as
// bcrypt hashes, never in the clear.
type Operator struct {
	Username     string `mapstructure:"username"`
	DisplayName  string `mapstructure:"display_name"`
	PasswordHash string `mapstructure:"password_hash"`
}

type Config struct {
	ListenAddr string         `mapstructure:"listen_addr"`
	Upstream   UpstreamConfig `mapstructure:"upstream"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Redis      RedisConfig    `mapstructure:"redis"`
	RateLimit  RateLimit      `mapstructure:"rate_limit"`
	Screen     ScreenConfig   `mapstructure:"screen"`
}

type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	Operators []Operator    `mapstructure:"operators"`
}

type RedisConfig struct {
	// Addr empty disables the login-abuse tracker.
	Addr string `mapstructure:"addr"`
}

type RateLimit struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type ScreenConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
}

// Load reads the file at path (ignored when missing) and applies defaults
// and environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("upstream.timeout", 10*time.Second)
	v.SetDefault("auth.token_ttl", 15*time.Minute)
	v.SetDefault("rate_limit.rps", 5.0)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("screen.default_page_size", view.PageSizes[0])

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if len(c.Auth.Operators) == 0 {
		return fmt.Errorf("at least one operator must be configured")
	}
	for _, op := range c.Auth.Operators {
		if op.Username == "" || op.PasswordHash == "" {
			return fmt.Errorf("operator entries need username and password_hash")
		}
	}
	if !view.ValidPageSize(c.Screen.DefaultPageSize) {
		return fmt.Errorf("screen.default_page_size must be one of %v", view.PageSizes)
	}
	return nil
}
