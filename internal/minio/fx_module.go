package minio

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the MinIO object store into Fx.
//
// It provides the Config and the *Minio client, and registers a startup hook
// that creates the configured bucket if it is missing.
var FXModule = fx.Module("minio",
	fx.Provide(
		NewConfig,
		NewClient,
	),
	fx.Invoke(RegisterLifecycle),
)

// RegisterLifecycle bootstraps the bucket on application startup.
func RegisterLifecycle(lc fx.Lifecycle, m *Minio) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return m.EnsureBucket(ctx)
		},
	})
}
