package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/plshi/imagesearch/internal/logger"
)

// Minio wraps the standard MinIO client with the small surface this service
// needs: bucket bootstrap, object put/get/delete and presigned GET URLs.
type Minio struct {
	// Client is the standard MinIO client for high-level operations
	Client *minio.Client

	// cfg holds the configuration for this MinIO client instance
	cfg Config

	// logger is used for logging operations and errors
	logger *logger.Logger
}

// NewClient creates and validates a new MinIO client.
//
// Connectivity is verified with a short ListBuckets probe so a misconfigured
// endpoint fails at startup instead of on the first upload.
func NewClient(cfg Config, log *logger.Logger) (*Minio, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio: missing MINIO_ENDPOINT")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		log.Error("failed to connect to minio", err, map[string]interface{}{
			"endpoint": cfg.Endpoint,
			"secure":   cfg.UseSSL,
			"bucket":   cfg.BucketName,
		})
		return nil, fmt.Errorf("minio: failed to create client: %w", err)
	}

	m := &Minio{
		Client: client,
		cfg:    cfg,
		logger: log,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.ListBuckets(ctx); err != nil {
		return nil, fmt.Errorf("minio: connection check failed: %w", err)
	}

	log.Info("minio client connected", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"bucket":   cfg.BucketName,
	})

	return m, nil
}

// EnsureBucket creates the configured bucket if it does not exist yet.
// Safe to call multiple times.
func (m *Minio) EnsureBucket(ctx context.Context) error {
	return m.ensureBucket(ctx, m.cfg.BucketName)
}

func (m *Minio) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := m.Client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("minio: bucket check failed: %w", err)
	}
	if exists {
		return nil
	}

	if err := m.Client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.cfg.Region}); err != nil {
		return fmt.Errorf("minio: failed to create bucket %q: %w", bucket, err)
	}

	m.logger.Info("created bucket", nil, map[string]interface{}{"bucket": bucket})
	return nil
}
