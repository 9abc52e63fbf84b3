// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
// A .env file in the working directory, when present, is loaded first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=8080, APP_LOG_LEVEL=debug
type Config struct {
	// Server configuration for the REST API
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Logging configuration
	Log LogConfig

	// Web configuration for the frontend proxy server
	Web WebConfig

	// Storage configuration for media uploads
	Storage StorageConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	// CORSOrigins is a comma-separated allow-list; empty allows any origin.
	CORSOrigins []string `envconfig:"CORS_ORIGINS"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	// URL is a full connection string; when set it wins over the discrete fields.
	URL string `envconfig:"DATABASE_URL"`

	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"shootfed"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// MaxOpenConns is the maximum number of open connections (default: 25)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`

	// MaxIdleConns is the minimum number of connections kept open (default: 5)
	MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 5m)
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// WebConfig holds settings for the frontend server that proxies to the API.
type WebConfig struct {
	Port int    `envconfig:"WEB_PORT" default:"3000"`
	Host string `envconfig:"WEB_HOST" default:"0.0.0.0"`

	// BackendURL is the API base the proxy forwards to.
	BackendURL string `envconfig:"BACKEND_URL" default:"http://localhost:8080/api/v1"`

	// ProxyTimeout bounds each forwarded request (default: 10s)
	ProxyTimeout time.Duration `envconfig:"PROXY_TIMEOUT" default:"10s"`
}

// StorageConfig holds S3-compatible object storage settings for media uploads.
type StorageConfig struct {
	Bucket string `envconfig:"S3_BUCKET" default:"shootfed-media"`
	Region string `envconfig:"S3_REGION" default:"ap-south-1"`

	// Endpoint overrides the AWS endpoint, e.g. for MinIO or LocalStack.
	Endpoint string `envconfig:"S3_ENDPOINT"`

	// Static credentials, mainly for MinIO or LocalStack. When empty the
	// default AWS credential chain is used.
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`

	// PublicBaseURL prefixes object keys to build the URL stored on media items.
	// Empty means https://<bucket>.s3.<region>.amazonaws.com.
	PublicBaseURL string `envconfig:"S3_PUBLIC_BASE_URL"`

	// MaxUploadBytes caps a single upload (default: 25 MiB)
	MaxUploadBytes int64 `envconfig:"S3_MAX_UPLOAD_BYTES" default:"26214400"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Addr returns the web server address in host:port format.
func (c *WebConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables.
// It returns an error if required variables are missing or invalid.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config

	// Each section is processed on its own so env vars stay flat:
	// APP_PORT rather than APP_SERVER_PORT.
	sections := []struct {
		name string
		spec any
	}{
		{"server", &cfg.Server},
		{"database", &cfg.Database},
		{"log", &cfg.Log},
		{"web", &cfg.Web},
		{"storage", &cfg.Storage},
	}
	for _, s := range sections {
		if err := envconfig.Process("APP", s.spec); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}

	return &cfg, nil
}
