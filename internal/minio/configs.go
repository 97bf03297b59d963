package minio

import (
	"os"
	"strconv"
	"time"
)

const defaultPresignedExpiry = 7 * 24 * time.Hour

// Config contains MinIO server connection details and bucket settings.
type Config struct {
	Endpoint        string        // MinIO server endpoint, e.g. "localhost:9000"
	AccessKeyID     string        // MinIO access key
	SecretAccessKey string        // MinIO secret key
	UseSSL          bool          // Use SSL (true for "https", false for "http")
	BucketName      string        // Default bucket name
	Region          string        // Region for the bucket (e.g. "us-east-1")
	PresignedExpiry time.Duration // Expiration for presigned GET URLs
}

// NewConfig reads the MinIO configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		Endpoint:        os.Getenv("MINIO_ENDPOINT"),
		AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("MINIO_SECRET_KEY"),
		UseSSL:          os.Getenv("MINIO_SECURE") == "true",
		BucketName:      os.Getenv("MINIO_BUCKET_NAME"),
		Region:          os.Getenv("MINIO_REGION"),
		PresignedExpiry: defaultPresignedExpiry,
	}

	if cfg.BucketName == "" {
		cfg.BucketName = "images"
	}
	if v := os.Getenv("MINIO_PRESIGNED_EXPIRY_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PresignedExpiry = time.Duration(n) * time.Second
		}
	}

	return cfg
}
