// Package config provides configuration management for the MMA EV tool.
package config

import "fmt"

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Feed    FeedConfig    `mapstructure:"feed" validate:"required"`
	Betting BettingConfig `mapstructure:"betting" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
	Health  HealthConfig  `mapstructure:"health"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// StorageConfig selects and configures the ledger snapshot backend
type StorageConfig struct {
	Backend     string         `mapstructure:"backend" validate:"required,oneof=file postgres"`
	SnapshotKey string         `mapstructure:"snapshot_key"`
	DataDir     string         `mapstructure:"data_dir"`
	Database    DatabaseConfig `mapstructure:"database"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// FeedConfig represents the odds/opportunity feed configuration
type FeedConfig struct {
	BaseURL                string  `mapstructure:"base_url" validate:"required,url"`
	StreamURL              string  `mapstructure:"stream_url"`
	CacheTTLSeconds        int     `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	RefreshSchedule        string  `mapstructure:"refresh_schedule"`
	TimeoutSeconds         int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries             int     `mapstructure:"max_retries" validate:"gte=0"`
	RequestsPerSecond      float64 `mapstructure:"requests_per_second" validate:"required,gt=0"`
	StreamEnabled          bool    `mapstructure:"stream_enabled"`
}

// BettingConfig carries bankroll framing used for display
type BettingConfig struct {
	Bankroll     float64 `mapstructure:"bankroll" validate:"required,gt=0"`
	StandardUnit float64 `mapstructure:"standard_unit" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// HealthConfig represents the health check server configuration
type HealthConfig struct {
	Port string `mapstructure:"port"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	db := c.Storage.Database
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
		db.SSLMode,
	)
}
