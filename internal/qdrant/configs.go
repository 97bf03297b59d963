package qdrant

import (
	"os"
	"strconv"
	"time"
)

// Config holds connection and behavior settings for the Qdrant client.
//
// It is intentionally minimal and easy to override from environment
// variables or programmatically.
type Config struct {
	// Hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" env:"QDRANT_ENDPOINT"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" env:"QDRANT_PORT"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" env:"QDRANT_API_KEY"`

	// Collection is the collection this service stores image records in.
	Collection string `yaml:"collection" env:"QDRANT_COLLECTION"`

	// VectorSize is the embedding dimension used when the collection has to
	// be created. Must match the embedding model's output dimension.
	VectorSize uint64 `yaml:"vector_size" env:"QDRANT_VECTOR_SIZE"`

	// Maximum request duration before timing out.
	Timeout time.Duration `yaml:"timeout" env:"QDRANT_TIMEOUT"`

	// Whether to perform version compatibility checks between client and server.
	CheckCompatibility bool `yaml:"check_compatibility" env:"QDRANT_CHECK_COMPATIBILITY"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:           "localhost",
		Port:               6334,
		Collection:         "imagesearch",
		VectorSize:         1152,
		Timeout:            5 * time.Second,
		CheckCompatibility: false,
	}
}

// NewConfig builds a Config from environment variables on top of defaults.
func NewConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("QDRANT_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("QDRANT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Port = n
		}
	}
	if v := os.Getenv("QDRANT_API_KEY"); v != "" {
		cfg.ApiKey = v
	}
	if v := os.Getenv("QDRANT_COLLECTION"); v != "" {
		cfg.Collection = v
	}
	if v := os.Getenv("QDRANT_VECTOR_SIZE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 {
			cfg.VectorSize = n
		}
	}
	if v := os.Getenv("QDRANT_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}

	return cfg
}
