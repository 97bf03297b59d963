package server

import (
	"context"

	"go.uber.org/fx"

	"github.com/plshi/imagesearch/internal/logger"
	"github.com/plshi/imagesearch/internal/minio"
	"github.com/plshi/imagesearch/internal/service"
)

// FXModule wires the HTTP server into Fx.
//
// It provides:
//   - *Config   (NewConfig)
//   - *Handlers (NewHandlers, with the service and object store narrowed to
//     the handler-facing interfaces)
//   - *Server   (NewServer)
//
// and registers a lifecycle hook that starts the listener on startup and
// drains it on shutdown.
var FXModule = fx.Module("server",
	fx.Provide(
		NewConfig,
		NewHandlers,
		NewServer,
		func(s *service.ImageService) ImageOps { return s },
		func(m *minio.Minio) ObjectStore { return m },
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the HTTP listener on startup and shuts it
// down gracefully on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, srv *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("http server failed", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
