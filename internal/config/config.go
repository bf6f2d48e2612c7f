// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port           string `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	SeedExtraUsers int    `mapstructure:"SEED_EXTRA_USERS"`
	DebugAPI       bool   `mapstructure:"DEBUG_API"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; defaults and env cover everything.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "8642")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("ALLOWED_ORIGINS", "")
	viper.SetDefault("SEED_EXTRA_USERS", 0)
	viper.SetDefault("DEBUG_API", true)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and that
// the app is not being pointed at an environment it must never run in.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}

	if c.Env == "production" || c.Env == "prod" {
		return errors.New("this application is intentionally vulnerable and refuses to run with APP_ENV=production")
	}

	if c.AllowedOrigins == "" {
		// Cross-origin form posts are part of the CSRF demonstration.
		log.Println("ALLOWED_ORIGINS is empty; cross-origin requests are not restricted")
	}

	return nil
}
