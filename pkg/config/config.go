package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Live timing provider
	LiveTimingBaseURL       string        `mapstructure:"LIVETIMING_BASE_URL"`
	LiveTimingRateLimit     int           `mapstructure:"LIVETIMING_RATE_LIMIT"`
	LiveTimingTimeout       time.Duration `mapstructure:"LIVETIMING_TIMEOUT"`
	CircuitBreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`

	// Background refresh
	EnableSessionRefresh   bool   `mapstructure:"ENABLE_SESSION_REFRESH"`
	SessionRefreshInterval string `mapstructure:"SESSION_REFRESH_INTERVAL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("LIVETIMING_BASE_URL", "https://api.openf1.org/v1")
	viper.SetDefault("LIVETIMING_RATE_LIMIT", 10) // requests per second
	viper.SetDefault("LIVETIMING_TIMEOUT", "10s")
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5) // trip after 5 consecutive failures
	viper.SetDefault("ENABLE_SESSION_REFRESH", false)
	viper.SetDefault("SESSION_REFRESH_INTERVAL", "5m")

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
