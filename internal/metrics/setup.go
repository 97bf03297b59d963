package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
//
// This structure provides the components needed to register metrics collectors
// and serve them via the /metrics HTTP endpoint for Prometheus scraping.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	// Core built-in metrics
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	embeddingsTotal *prometheus.CounterVec
	searchesTotal   prometheus.Counter
	insertsTotal    prometheus.Counter
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers default system collectors,
// wraps all metrics with a constant `service` label, and creates an HTTP server
// exposing the /metrics endpoint.
//
// The setup includes:
//   - A dedicated Prometheus registry for the service
//   - Automatic registration of Go, process, and build info collectors
//   - A global "service" label applied to all metrics for easier aggregation
//   - An HTTP server exposing the metrics endpoint
//
// Access metrics at: http://<address>/metrics
func NewMetrics(cfg Config) *Metrics {
	// Create a new isolated Prometheus registry for this service.
	// This avoids metric collisions when multiple services run in the same process.
	registry := prometheus.NewRegistry()

	// Wrap the registry with a constant label for consistent observability.
	// All metrics emitted by this service will automatically include the label:
	//   service="<cfg.ServiceName>"
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.requestsTotal = createCounterVec("requests_total", "Total number of processed requests", []string{"status"})
	m.requestDuration = createHistogramVec("request_duration_seconds", "Duration of HTTP requests in seconds", []string{"endpoint"}, prometheus.DefBuckets)
	m.embeddingsTotal = createCounterVec("embeddings_total", "Total number of embedding calls by outcome", []string{"outcome"})
	m.searchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vector_searches_total",
		Help: "Total number of vector similarity searches",
	})
	m.insertsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vector_inserts_total",
		Help: "Total number of vector inserts",
	})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.embeddingsTotal,
		m.searchesTotal,
		m.insertsTotal,
	)

	// Register standard collectors if enabled.
	// These provide essential runtime metrics for Go processes:
	//   - GoCollector: Memory usage, goroutines, GC stats
	//   - ProcessCollector: CPU, file descriptors, memory stats
	//   - BuildInfoCollector: Binary version/build info
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	// Create an HTTP handler that serves metrics from the registry.
	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}
