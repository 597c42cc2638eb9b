package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName                string
	AppEnv                 string
	AppPort                string
	DatabaseDSN            string
	DBMaxOpenConns         int
	RedisURL               string
	JWTSecret              string
	TokenTTL               time.Duration
	StatsCacheTTL          time.Duration
	BootstrapAdminEmail    string
	BootstrapAdminPassword string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PLACEMENT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Placement API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "5000")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("token.ttl", "12h")
	v.SetDefault("stats.cache_ttl", "5m")

	tokenTTL, err := time.ParseDuration(v.GetString("token.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid token ttl: %w", err)
	}

	statsTTL, err := time.ParseDuration(v.GetString("stats.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid stats cache ttl: %w", err)
	}

	cfg := Config{
		AppName:                v.GetString("app.name"),
		AppEnv:                 v.GetString("app.env"),
		AppPort:                v.GetString("app.port"),
		DatabaseDSN:            v.GetString("database.dsn"),
		DBMaxOpenConns:         v.GetInt("db.max_open_conns"),
		RedisURL:               v.GetString("redis.url"),
		JWTSecret:              v.GetString("jwt.secret"),
		TokenTTL:               tokenTTL,
		StatsCacheTTL:          statsTTL,
		BootstrapAdminEmail:    v.GetString("bootstrap_admin.email"),
		BootstrapAdminPassword: v.GetString("bootstrap_admin.password"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.DBMaxOpenConns <= 0 {
		cfg.DBMaxOpenConns = 10
	}

	return cfg, nil
}
