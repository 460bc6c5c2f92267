package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port            string `mapstructure:"PORT"`
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	StreamAPIKey    string `mapstructure:"STREAM_API_KEY"`
	StreamAPISecret string `mapstructure:"STREAM_API_SECRET"`
	CORSOrigin      string `mapstructure:"CORS_ORIGIN"`
}

// Load reads the configuration from a .env file and environment variables.
func Load() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:5173")

	viper.AutomaticEnv()

	// A missing .env file is fine; environment variables take over.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return &cfg, nil
}
