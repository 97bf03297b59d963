package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/plshi/imagesearch/internal/imaging"
	"github.com/plshi/imagesearch/internal/logger"
	"github.com/plshi/imagesearch/internal/metrics"
	"github.com/plshi/imagesearch/internal/vectordb"
)

// ErrInvalidImage marks input that does not decode as a supported image.
// Callers use it to separate client errors from upstream failures.
var ErrInvalidImage = errors.New("image file could not be parsed")

// ImageService orchestrates the vectorize → store / vectorize → search /
// compare flows. All heavy lifting is delegated to the injected clients;
// this layer only validates input, shapes records and normalizes results.
type ImageService struct {
	embedder Embedder
	chat     ChatModel
	store    vectordb.Service
	objects  ObjectStore
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// NewImageService constructs the orchestration service.
// objects may be nil; inserts then skip archiving the original file.
func NewImageService(
	embedder Embedder,
	chat ChatModel,
	store vectordb.Service,
	objects ObjectStore,
	log *logger.Logger,
	m *metrics.Metrics,
) *ImageService {
	return &ImageService{
		embedder: embedder,
		chat:     chat,
		store:    store,
		objects:  objects,
		log:      log,
		metrics:  m,
	}
}

// Vectorize validates the image bytes and obtains their embedding.
func (s *ImageService) Vectorize(ctx context.Context, data []byte, contentType string) ([]float32, error) {
	if !imaging.ValidateImage(data) {
		return nil, ErrInvalidImage
	}

	dataURL := imaging.DataURL(data, contentType)

	vector, err := s.embedder.EmbedImage(ctx, dataURL)
	if err != nil {
		s.metrics.IncrementEmbeddings("error")
		return nil, fmt.Errorf("embedding call failed: %w", err)
	}
	s.metrics.IncrementEmbeddings("success")

	s.log.Debug("image vectorized", nil, map[string]interface{}{"dim": len(vector)})
	return vector, nil
}
