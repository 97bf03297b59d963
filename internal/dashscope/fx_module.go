package dashscope

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the DashScope client into Fx.
//
// It provides:
//   - *Config (NewConfig)
//   - *Client (NewClient)
//
// and registers a lifecycle hook to clean up HTTP resources on shutdown.
var FXModule = fx.Module("dashscope",
	fx.Provide(
		NewConfig,
		NewClient,
	),
	fx.Invoke(RegisterDashscopeLifecycle),
)

// RegisterDashscopeLifecycle ensures the client's HTTP resources are released
// on application shutdown.
func RegisterDashscopeLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
