package metrics

import "os"

// Config holds the settings for the Prometheus metrics server.
type Config struct {
	// Address is the listen address of the /metrics HTTP server, e.g. ":9090".
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is attached as a constant `service` label to every metric.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`

	// EnableDefaultCollectors controls registration of the Go, process and
	// build-info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_DEFAULT_COLLECTORS"`
}

// NewConfig reads the metrics configuration from environment variables.
func NewConfig() Config {
	addr := os.Getenv("METRICS_ADDRESS")
	if addr == "" {
		addr = ":9090"
	}

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "image-search"
	}

	return Config{
		Address:                 addr,
		ServiceName:             service,
		EnableDefaultCollectors: os.Getenv("METRICS_DEFAULT_COLLECTORS") != "false",
	}
}
