package minio

import (
	"context"
	"fmt"
	"time"
)

// PresignedGet generates a time-limited URL for downloading an object.
// When expiry is zero, the configured default (7 days) is used.
func (m *Minio) PresignedGet(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = m.cfg.PresignedExpiry
	}

	u, err := m.Client.PresignedGetObject(ctx, m.cfg.BucketName, objectKey, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("minio: presigned get for %q failed: %w", objectKey, err)
	}

	m.logger.Debug("generated presigned url", nil, map[string]interface{}{
		"bucket": m.cfg.BucketName,
		"object": objectKey,
		"expiry": expiry.String(),
	})

	return u.String(), nil
}
