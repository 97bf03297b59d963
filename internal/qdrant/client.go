package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/plshi/imagesearch/internal/logger"
)

// Client wraps the official Qdrant Go client and implements
// vectordb.Service for image records.
//
// Responsibilities:
//   - Establish and validate connectivity with Qdrant.
//   - Manage collections (create if missing, administrative drop).
//   - Insert embeddings and run score-thresholded similarity search.
//   - Offer a safe API suitable for Fx dependency injection.
type Client struct {
	api *qdrant.Client
	cfg *Config
	log *logger.Logger
}

// default chunk size for batch inserts
const defaultBatchSize = 200

// NewClient constructs a Client and validates connectivity via a health check.
//
// The Qdrant Go SDK creates lightweight gRPC connections, so this performs an
// immediate health check to fail fast if the service is unreachable.
func NewClient(cfg *Config, log *logger.Logger) (*Client, error) {
	log.Info("connecting to qdrant", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"port":     cfg.Port,
	})

	port := cfg.Port
	if port == 0 {
		port = 6334
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   port,
		APIKey:                 cfg.ApiKey,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to initialize client: %w", err)
	}

	c := &Client{
		api: api,
		cfg: cfg,
		log: log,
	}

	if err := c.healthCheck(); err != nil {
		return nil, fmt.Errorf("qdrant: health check failed: %w", err)
	}

	log.Info("qdrant client connected", nil, nil)
	return c, nil
}

// healthCheck verifies the availability of the Qdrant service.
// Lightweight and fast, it is used during startup and readiness probes.
func (c *Client) healthCheck() error {
	if c.api == nil {
		return fmt.Errorf("client not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return err
	}

	c.log.Debug("qdrant health check passed", nil, map[string]interface{}{
		"title":   resp.GetTitle(),
		"version": resp.GetVersion(),
	})
	return nil
}

// Healthy reports whether the Qdrant service currently responds.
func (c *Client) Healthy(ctx context.Context) bool {
	if c.api == nil {
		return false
	}
	_, err := c.api.HealthCheck(ctx)
	return err == nil
}

// Collection returns the collection name this client operates on.
func (c *Client) Collection() string {
	return c.cfg.Collection
}

// Close gracefully shuts down the Qdrant client connection.
func (c *Client) Close() error {
	if c.api == nil {
		return nil
	}
	return c.api.Close()
}
