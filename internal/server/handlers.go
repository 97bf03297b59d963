package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/plshi/imagesearch/internal/logger"
	"github.com/plshi/imagesearch/internal/service"
	"github.com/plshi/imagesearch/internal/vectordb"
)

// ImageOps is the slice of the image service the handlers need.
// Implemented by *service.ImageService.
type ImageOps interface {
	Vectorize(ctx context.Context, data []byte, contentType string) ([]float32, error)
	Insert(ctx context.Context, up service.ImageUpload) (*service.InsertResult, error)
	Search(ctx context.Context, q service.ImageQuery) ([]service.SearchHit, error)
	Compare(ctx context.Context, in service.CompareInput) (*service.CompareResult, error)
}

// ObjectStore uploads raw file bytes and returns their public URL.
// Implemented by *minio.Minio.
type ObjectStore interface {
	Put(ctx context.Context, objectKey string, data []byte, contentType string) (string, error)
}

// Handlers bundles the HTTP endpoints with their dependencies.
type Handlers struct {
	images  ImageOps
	objects ObjectStore
	vectors vectordb.Service
	cfg     *Config
	log     *logger.Logger
}

// NewHandlers constructs the endpoint set.
func NewHandlers(cfg *Config, images ImageOps, objects ObjectStore, vectors vectordb.Service, log *logger.Logger) *Handlers {
	return &Handlers{
		images:  images,
		objects: objects,
		vectors: vectors,
		cfg:     cfg,
		log:     log,
	}
}

// Health reports liveness plus reachability of the vector store.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if _, err := h.vectors.ListCollections(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":       "degraded",
			"vector_store": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Vectorize embeds a single uploaded image and returns the raw vector.
// The response shape is deliberately bare, not the standard envelope,
// for compatibility with existing callers. Bad input is a 400; a failing
// embedding backend is a 502 so callers can tell the two apart.
func (h *Handlers) Vectorize(w http.ResponseWriter, r *http.Request) {
	data, header, err := h.formFile(r, "file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": err.Error(), "success": false})
		return
	}

	vector, err := h.images.Vectorize(r.Context(), data, contentTypeOf(header))
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, service.ErrInvalidImage) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]any{"detail": err.Error(), "success": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"embedding": vector,
		"dim":       len(vector),
		"success":   true,
	})
}
