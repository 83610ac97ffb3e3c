// Package config loads application configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DART   DARTConfig   `mapstructure:"dart"`
	Yahoo  YahooConfig  `mapstructure:"yahoo"`
	DB     DBConfig     `mapstructure:"db"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Auth   AuthConfig   `mapstructure:"auth"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DARTConfig holds configuration for the DART open API client.
type DARTConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// YahooConfig holds configuration for the Yahoo Finance chart API client.
type YahooConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DBConfig holds database configuration. Driver is "sqlite" or "postgres".
type DBConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
}

// AuthConfig holds JWT authentication configuration.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// envBindings maps config keys to the environment variables that override
// them. The names match what the deployment environment already provides.
var envBindings = map[string]string{
	"server.addr":     "SERVER_ADDR",
	"dart.api_key":    "DART_API_KEY",
	"dart.base_url":   "DART_BASE_URL",
	"yahoo.base_url":  "YAHOO_BASE_URL",
	"db.driver":       "DB_DRIVER",
	"db.dsn":          "DB_DSN",
	"redis.host":      "REDIS_HOST",
	"redis.port":      "REDIS_PORT",
	"redis.password":  "REDIS_PASSWORD",
	"auth.jwt_secret": "JWT_SECRET",
}

// Load reads configuration from config.yaml in the given directory (if it
// exists) and applies environment variable overrides. An empty configDir
// means the current directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = "."
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// The config file is optional: env vars and defaults are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.yaml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("dart.base_url", "https://opendart.fss.or.kr")
	v.SetDefault("dart.timeout", 10*time.Second)
	v.SetDefault("yahoo.base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("yahoo.timeout", 10*time.Second)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "./dashboard.db")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("auth.token_ttl", time.Hour)
}

// Validate checks for configuration values that would otherwise only fail at
// request time.
func (c *Config) Validate() error {
	if c.DB.Driver != "sqlite" && c.DB.Driver != "postgres" {
		return fmt.Errorf("invalid db driver: %s (must be 'sqlite' or 'postgres')", c.DB.Driver)
	}
	if c.DART.Timeout <= 0 {
		return fmt.Errorf("dart.timeout must be positive")
	}
	if c.Yahoo.Timeout <= 0 {
		return fmt.Errorf("yahoo.timeout must be positive")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	return nil
}
