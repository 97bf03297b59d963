package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/plshi/imagesearch/internal/vectordb"
)

// FXModule wires the Qdrant-backed vector store into Fx.
//
// It provides:
//   - *Config            (NewConfig)
//   - *Client            (NewClient)
//   - vectordb.Service   (the same client, as the agnostic interface)
//
// and registers lifecycle hooks that bootstrap the configured collection on
// startup and close the gRPC connection on shutdown.
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewConfig,
		NewClient,
		func(c *Client) vectordb.Service { return c },
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// RegisterQdrantLifecycle ensures the configured collection exists on startup
// and releases the client on shutdown.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *Client, cfg *Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.EnsureCollection(ctx, cfg.Collection, cfg.VectorSize)
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
