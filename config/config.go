package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the service configuration. It is loaded once at process
// start and held immutable afterwards. TokenSecret must never be logged.
type Config struct {
	ListenAddr  string
	TokenSecret string
	TokenTTL    time.Duration
	BcryptCost  int
	RedisURL    string
	LogLevel    string
}

// Load reads configuration from an optional gatehouse.{json,yaml,...}
// file in the working directory and from GATEHOUSE_* environment
// variables, with environment taking precedence.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":9000")
	v.SetDefault("token_ttl", 7*24*time.Hour)
	v.SetDefault("bcrypt_cost", 11)
	v.SetDefault("redis_url", "redis://localhost:6379/0")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("GATEHOUSE")
	v.AutomaticEnv()

	v.SetConfigName("gatehouse")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		ListenAddr:  v.GetString("listen_addr"),
		TokenSecret: v.GetString("token_secret"),
		TokenTTL:    v.GetDuration("token_ttl"),
		BcryptCost:  v.GetInt("bcrypt_cost"),
		RedisURL:    v.GetString("redis_url"),
		LogLevel:    v.GetString("log_level"),
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("GATEHOUSE_TOKEN_SECRET is not set")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token_ttl must be positive")
	}

	return cfg, nil
}
