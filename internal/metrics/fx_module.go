package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/plshi/imagesearch/internal/logger"
)

// FXModule defines the Fx module for the metrics package.
// This module integrates the Prometheus metrics server into an Fx-based application
// by providing the Metrics factory and registering its lifecycle hooks.
//
// Dependencies required by this module:
// - A metrics.Config instance must be available in the dependency injection container
// - A logger.Logger instance for startup/shutdown logs
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewConfig,
		NewMetrics,
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle manages the startup and shutdown lifecycle
// of the Prometheus metrics HTTP server.
//
// The lifecycle hook:
//   - OnStart: Launches the Prometheus HTTP server in a background goroutine.
//   - OnStop: Gracefully shuts down the metrics server.
//
// This ensures that metrics are available for scraping during the application's lifetime
// and that the server shuts down cleanly when the application stops.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting Prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("error starting Prometheus metrics server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down Prometheus metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
