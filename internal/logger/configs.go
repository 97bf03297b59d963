package logger

import "os"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls the log level and the service name attached
// to every log entry.
type Config struct {
	// Level is one of debug, info, warning, error. Unknown values mean info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is added as an initial field on every entry.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`
}

// NewConfig reads the logger configuration from environment variables.
func NewConfig() Config {
	level := os.Getenv("ZAP_LOGGER_LEVEL")
	if level == "" {
		level = Info
	}

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "image-search"
	}

	return Config{
		Level:       level,
		ServiceName: service,
	}
}
