package server

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds listener and request-handling settings for the HTTP server.
type Config struct {
	// Host to bind the listener to.
	Host string `yaml:"host" env:"SERVER_HOST"`

	// Port to bind the listener to.
	Port int `yaml:"port" env:"SERVER_PORT"`

	// MaxUploadBytes caps the in-memory size of multipart request bodies.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_MB"`

	// UploadConcurrency bounds how many files of a multipart batch are
	// embedded at the same time.
	UploadConcurrency int `yaml:"upload_concurrency" env:"SERVER_UPLOAD_CONCURRENCY"`

	// ReadHeaderTimeout protects against slow-header clients.
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`

	// ShutdownTimeout is how long in-flight requests get to finish on stop.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT_SECONDS"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Host:              "0.0.0.0",
		Port:              8000,
		MaxUploadBytes:    32 << 20,
		UploadConcurrency: 4,
		ReadHeaderTimeout: 10 * time.Second,
		ShutdownTimeout:   15 * time.Second,
	}
}

// NewConfig builds a Config from environment variables on top of defaults.
func NewConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Port = n
		}
	}
	if v := os.Getenv("SERVER_MAX_UPLOAD_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxUploadBytes = int64(n) << 20
		}
	}
	if v := os.Getenv("SERVER_UPLOAD_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.UploadConcurrency = n
		}
	}
	if v := os.Getenv("SERVER_SHUTDOWN_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ShutdownTimeout = time.Duration(n) * time.Second
		}
	}

	return cfg
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
