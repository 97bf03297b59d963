package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/plshi/imagesearch/internal/logger"
	"github.com/plshi/imagesearch/internal/metrics"
)

// Server wraps the HTTP listener and its router.
type Server struct {
	cfg  *Config
	http *http.Server
	log  *logger.Logger
}

// NewServer builds the router and the listener. Nothing is bound until
// Start is called.
func NewServer(cfg *Config, h *Handlers, m *metrics.Metrics, log *logger.Logger) *Server {
	return &Server{
		cfg: cfg,
		log: log,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           NewRouter(h, m),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
	}
}

// NewRouter assembles all routes and middleware.
func NewRouter(h *Handlers, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)
	r.Use(metricsMiddleware(m))

	r.Get("/health", h.Health)
	r.Post("/vectorize", h.Vectorize)

	r.Route("/image_search", func(r chi.Router) {
		r.Route("/upload", func(r chi.Router) {
			r.Post("/upload_image", h.UploadImage)
			r.Post("/api_upload_image", h.APIUploadImage)
		})
		r.Route("/search", func(r chi.Router) {
			r.Post("/search", h.SearchImage)
			r.Post("/api_search_image", h.APISearchImage)
		})
		r.Route("/compare", func(r chi.Router) {
			r.Post("/compare", h.CompareImages)
			r.Post("/compare_by_local_url", h.CompareImagesByLocalURL)
		})
		r.Route("/minio", func(r chi.Router) {
			r.Post("/api_upload_to_minio", h.APIUploadToMinio)
		})
	})

	r.Delete("/admin/collections/{name}", h.DropCollection)

	return r
}

// Start binds the listener and serves until Shutdown.
// Blocks; run it from a goroutine.
func (s *Server) Start() error {
	s.log.Info("http server listening", nil, map[string]interface{}{"addr": s.cfg.Addr()})
	err := s.http.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}
