package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds the store catalog API configuration
type CatalogConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	StoreAlias string        `mapstructure:"store_alias"`
	Token      string        `mapstructure:"token"`
	SecretKey  string        `mapstructure:"secret_key"`
	PageLimit  int           `mapstructure:"page_limit"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP   int     `mapstructure:"per_ip"`  // questionnaire submissions per minute per client IP
	Burst   int     `mapstructure:"burst"`   // submissions a client may make back to back
	Catalog float64 `mapstructure:"catalog"` // outbound catalog requests per second
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// MetricsConfig holds Prometheus exposition configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load loads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches the
// default locations.
func LoadFile(path string) (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/hairdiag/")
	}

	// Environment variable settings: HAIRDIAG_CATALOG_TOKEN -> catalog.token
	v.SetEnvPrefix("HAIRDIAG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. Every key needs a default so
// AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{})

	// Catalog defaults
	v.SetDefault("catalog.base_url", "https://api.dooki.com.br/v2")
	v.SetDefault("catalog.store_alias", "")
	v.SetDefault("catalog.token", "")
	v.SetDefault("catalog.secret_key", "")
	v.SetDefault("catalog.page_limit", 200)
	v.SetDefault("catalog.timeout", "30s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 30)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("ratelimit.catalog", 1.0)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("metrics.enabled", true)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.StoreAlias == "" {
		return fmt.Errorf("catalog store alias is required (set HAIRDIAG_CATALOG_STORE_ALIAS)")
	}

	if config.Catalog.Token == "" || config.Catalog.SecretKey == "" {
		return fmt.Errorf("catalog token and secret key are required (set HAIRDIAG_CATALOG_TOKEN and HAIRDIAG_CATALOG_SECRET_KEY)")
	}

	if config.Catalog.PageLimit <= 0 || config.Catalog.PageLimit > 200 {
		return fmt.Errorf("catalog page limit must be between 1 and 200, got: %d", config.Catalog.PageLimit)
	}

	if config.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog timeout must be positive, got: %s", config.Catalog.Timeout)
	}

	if config.Log.Format != "console" && config.Log.Format != "json" {
		return fmt.Errorf("log format must be 'console' or 'json', got: %s", config.Log.Format)
	}

	return nil
}
