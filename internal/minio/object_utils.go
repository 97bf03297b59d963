package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// Put uploads an object to the configured bucket and returns the public
// URL the object can be fetched from.
//
// The URL is built from the configured endpoint and scheme; deployments
// fronted by a CDN or reverse proxy can rewrite it downstream.
func (m *Minio) Put(ctx context.Context, objectKey string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.Client.PutObject(ctx, m.cfg.BucketName, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("minio: put %q failed: %w", objectKey, err)
	}

	m.logger.Info("object uploaded", nil, map[string]interface{}{
		"bucket": m.cfg.BucketName,
		"object": objectKey,
		"size":   len(data),
	})

	return m.ObjectURL(objectKey), nil
}

// ObjectURL returns the direct (non-presigned) URL for an object.
func (m *Minio) ObjectURL(objectKey string) string {
	scheme := "http"
	if m.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.cfg.Endpoint, m.cfg.BucketName, objectKey)
}

// Get retrieves an object from the bucket and returns its contents.
func (m *Minio) Get(ctx context.Context, objectKey string) ([]byte, error) {
	reader, err := m.Client.GetObject(ctx, m.cfg.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to get object: %w", err)
	}
	defer func(reader io.ReadCloser) {
		if err := reader.Close(); err != nil {
			m.logger.Error("failed to close object reader", err, map[string]interface{}{})
		}
	}(reader)

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("minio: failed to read object data: %w", err)
	}
	return data, nil
}

// Delete removes an object from the configured bucket.
func (m *Minio) Delete(ctx context.Context, objectKey string) error {
	if err := m.Client.RemoveObject(ctx, m.cfg.BucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio: delete %q failed: %w", objectKey, err)
	}
	return nil
}
